package gdocs

import (
	"context"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/logger"
	"go.uber.org/zap"
)

const editURLPrefix = "https://docs.google.com/document/d/"

// DocumentAPI is the remote document capability the renderer drives.
type DocumentAPI interface {
	// Create makes an empty document and returns its identifier.
	Create(ctx context.Context, title string) (string, error)
	// BatchApply applies ops atomically: all of them or none.
	BatchApply(ctx context.Context, documentID string, ops []Operation) error
}

// Result locates the rendered remote document.
type Result struct {
	DocumentID  string `json:"document_id"`
	DocumentURL string `json:"document_url"`
}

// Stage names a step of a remote render.
type Stage string

// Render stages in order.
const (
	StageCreateDocument  Stage = "create_document"
	StageBuildOperations Stage = "build_operations"
	StageSubmitBatch     Stage = "submit_batch"
	StageDone            Stage = "done"
)

// Renderer creates a document and fills it with one operation batch.
// It performs no retries; callers bound the two network calls through ctx.
type Renderer struct {
	api       DocumentAPI
	lineWidth int
	log       *zap.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLineWidth sets the column width used for date alignment and rules.
func WithLineWidth(width int) Option {
	return func(r *Renderer) {
		r.lineWidth = width
	}
}

// WithLogger attaches a logger for stage transitions.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) {
		r.log = logger.OrNop(l)
	}
}

// NewRenderer creates a Renderer bound to api.
func NewRenderer(api DocumentAPI, opts ...Option) *Renderer {
	r := &Renderer{api: api, lineWidth: DefaultLineWidth, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Title returns the document title for a profile.
func Title(rec *cv.Record) string {
	return "CV - " + rec.Profile.FullName()
}

// EditURL returns the browser edit link for a document.
func EditURL(documentID string) string {
	return editURLPrefix + documentID + "/edit"
}

// Render runs create, build and submit for rec.
func (r *Renderer) Render(ctx context.Context, rec *cv.Record) (*Result, error) {
	title := Title(rec)

	r.log.Debug("remote render stage", zap.String("stage", string(StageCreateDocument)))
	documentID, err := r.api.Create(ctx, title)
	if err != nil {
		return nil, &DocumentCreateError{Title: title, Cause: err}
	}
	log := r.log.With(zap.String("document_id", documentID))

	log.Debug("remote render stage", zap.String("stage", string(StageBuildOperations)))
	ops := BuildOperations(rec, r.lineWidth)

	log.Debug("remote render stage", zap.String("stage", string(StageSubmitBatch)), zap.Int("operations", len(ops)))
	if err := r.api.BatchApply(ctx, documentID, ops); err != nil {
		log.Warn("batch rejected, leaving empty document in place", zap.Error(err))
		return nil, &BatchApplyError{DocumentID: documentID, Operations: len(ops), Cause: err}
	}

	log.Info("remote document rendered", zap.String("stage", string(StageDone)), zap.Int("operations", len(ops)))
	return &Result{DocumentID: documentID, DocumentURL: EditURL(documentID)}, nil
}
