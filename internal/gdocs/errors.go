package gdocs

import "fmt"

// DocumentCreateError is returned when the remote document cannot be created.
type DocumentCreateError struct {
	Title string
	Cause error
}

func (e *DocumentCreateError) Error() string {
	return fmt.Sprintf("document create failed: %q: %v", e.Title, e.Cause)
}

func (e *DocumentCreateError) Unwrap() error {
	return e.Cause
}

// BatchApplyError is returned when the operation batch is rejected. The empty
// document created before the batch is left in place.
type BatchApplyError struct {
	DocumentID string
	Operations int
	Cause      error
}

func (e *BatchApplyError) Error() string {
	return fmt.Sprintf("batch apply failed: document %s (%d operations): %v", e.DocumentID, e.Operations, e.Cause)
}

func (e *BatchApplyError) Unwrap() error {
	return e.Cause
}

// ReplayError reports an operation that does not fit the buffer it is applied to
type ReplayError struct {
	Position int
	Message  string
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay error: operation %d: %s", e.Position, e.Message)
}
