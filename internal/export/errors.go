package export

import "fmt"

// UnsupportedFormatError is returned for a format name or kind the exporter
// cannot produce.
type UnsupportedFormatError struct {
	Format string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported format %q: %s", e.Format, e.Reason)
	}
	return fmt.Sprintf("unsupported format %q", e.Format)
}
