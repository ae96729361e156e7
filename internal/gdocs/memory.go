package gdocs

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// MemoryDocument is a document held by MemoryAPI
type MemoryDocument struct {
	Title   string
	Content *Replayed
	Batches int
}

// MemoryAPI is an in-process DocumentAPI. Batches are validated by replaying
// them onto the stored document, which makes it useful for dry runs.
type MemoryAPI struct {
	mu   sync.Mutex
	docs map[string]*MemoryDocument

	// CreateErr and BatchErr, when set, are returned by the matching call.
	CreateErr error
	BatchErr  error
}

// NewMemoryAPI returns an empty MemoryAPI.
func NewMemoryAPI() *MemoryAPI {
	return &MemoryAPI{docs: make(map[string]*MemoryDocument)}
}

// Create stores an empty document under a random identifier.
func (m *MemoryAPI) Create(ctx context.Context, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.CreateErr != nil {
		return "", m.CreateErr
	}

	id := uuid.NewString()
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[id] = &MemoryDocument{Title: title, Content: &Replayed{}}
	return id, nil
}

// BatchApply replays ops onto a fresh buffer. Only the first batch of a
// document is accepted since the renderer submits exactly one.
func (m *MemoryAPI) BatchApply(ctx context.Context, documentID string, ops []Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.BatchErr != nil {
		return m.BatchErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[documentID]
	if !ok {
		return fmt.Errorf("document %s not found", documentID)
	}
	if doc.Batches > 0 {
		return fmt.Errorf("document %s already has content", documentID)
	}

	replayed, err := Replay(ops)
	if err != nil {
		return err
	}
	doc.Content = replayed
	doc.Batches++
	return nil
}

// Document returns the stored document, or nil.
func (m *MemoryAPI) Document(documentID string) *MemoryDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[documentID]
}
