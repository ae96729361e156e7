// Package cv normalizes CV records and holds the formatting rules shared by every renderer.
package cv

// DateSeparator is the en-dash placed between the two ends of a date range.
const DateSeparator = " – "

// PresentLabel terminates a range whose end date is absent.
const PresentLabel = "Present"

// FormatRange turns a (start, end) pair into display text.
// An empty start yields "" so callers can omit the date entirely.
func FormatRange(start, end string) string {
	if start == "" {
		return ""
	}
	if end == "" {
		return start + DateSeparator + PresentLabel
	}
	return start + DateSeparator + end
}
