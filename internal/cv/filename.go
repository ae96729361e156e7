package cv

import (
	"fmt"

	"github.com/jonathan/harvard-cv/internal/types"
)

// Filename returns "{last}_{first}_CV_Harvard.{ext}".
// Empty name fields are not guarded and produce empty segments.
func Filename(profile types.Profile, ext string) string {
	return fmt.Sprintf("%s_%s_CV_Harvard.%s", profile.LastName, profile.FirstName, ext)
}
