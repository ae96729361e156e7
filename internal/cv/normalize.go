package cv

import (
	"slices"
	"strings"

	"github.com/jonathan/harvard-cv/internal/types"
)

// Record is a render-ready CV: education and experience sorted newest first,
// everything else in insertion order.
type Record struct {
	Profile        types.Profile
	Education      []types.Education
	Experience     []types.Experience
	Certifications []types.Certification
	Projects       []types.Project
	Skills         *types.Skills
}

// Normalize builds a Record from raw without mutating it.
func Normalize(raw *types.CVRecord) *Record {
	return &Record{
		Profile:        raw.Profile,
		Education:      sortByStartDesc(raw.Education, func(e types.Education) string { return e.StartDate }),
		Experience:     sortByStartDesc(raw.Experience, func(e types.Experience) string { return e.StartDate }),
		Certifications: slices.Clone(raw.Certifications),
		Projects:       slices.Clone(raw.Projects),
		Skills:         raw.Skills,
	}
}

// sortByStartDesc clones entries and stable-sorts them by start date, newest
// first. Comparison is lexicographic, so zero-padded YYYY-MM orders correctly
// and an empty date sorts after every non-empty one.
func sortByStartDesc[T any](entries []T, startDate func(T) string) []T {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return strings.Compare(startDate(b), startDate(a))
	})
	return sorted
}
