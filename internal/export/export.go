// Package export orchestrates a CV render: validate the input, normalize it
// once, and hand the result to the renderer for each requested format.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/gdocs"
	"github.com/jonathan/harvard-cv/internal/logger"
	"github.com/jonathan/harvard-cv/internal/rendering"
	"github.com/jonathan/harvard-cv/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Artifact is one rendered file.
type Artifact struct {
	Format      Format `json:"format"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// ProgressEvent reports that a render step finished
type ProgressEvent struct {
	Step    string `json:"step"`
	Format  Format `json:"format,omitempty"`
	Message string `json:"message"`
}

// ProgressCallback is called when export progress occurs. It may be called
// from several goroutines during ExportAll.
type ProgressCallback func(event ProgressEvent)

// Progress steps.
const (
	StepValidated  = "validated"
	StepNormalized = "normalized"
	StepRendered   = "rendered"
	StepPublished  = "published"
)

// Exporter renders validated CV records into artifacts.
type Exporter struct {
	html       *rendering.HTMLRenderer
	rasterizer rendering.Rasterizer
	log        *zap.Logger
	onProgress ProgressCallback
}

// Option configures an Exporter
type Option func(*Exporter)

// WithHTMLRenderer replaces the default embedded-template HTML renderer.
func WithHTMLRenderer(r *rendering.HTMLRenderer) Option {
	return func(e *Exporter) {
		e.html = r
	}
}

// WithRasterizer sets the HTML-to-PDF converter.
func WithRasterizer(r rendering.Rasterizer) Option {
	return func(e *Exporter) {
		e.rasterizer = r
	}
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Exporter) {
		e.log = logger.OrNop(l)
	}
}

// WithProgress registers a progress callback.
func WithProgress(cb ProgressCallback) Option {
	return func(e *Exporter) {
		e.onProgress = cb
	}
}

// NewExporter creates an Exporter. Without options it renders HTML from the
// embedded template and PDF through a headless Chrome.
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{log: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	if e.html == nil {
		e.html = rendering.NewHTMLRenderer()
	}
	if e.rasterizer == nil {
		e.rasterizer = &rendering.ChromeRasterizer{Logger: e.log}
	}
	return e
}

func (e *Exporter) emit(step string, format Format, message string) {
	if e.onProgress != nil {
		e.onProgress(ProgressEvent{Step: step, Format: format, Message: message})
	}
}

// Prepare validates raw and returns its normalized form.
func (e *Exporter) Prepare(raw *types.CVRecord) (*cv.Record, error) {
	if raw == nil {
		return nil, fmt.Errorf("cv record is nil")
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	e.emit(StepValidated, "", "CV record passed validation")

	rec := cv.Normalize(raw)
	e.emit(StepNormalized, "", fmt.Sprintf("%d sections to render", len(rec.Sections())))
	return rec, nil
}

// Export validates, normalizes and renders raw in one local format.
func (e *Exporter) Export(ctx context.Context, raw *types.CVRecord, format Format) (*Artifact, error) {
	rec, err := e.Prepare(raw)
	if err != nil {
		return nil, err
	}
	return e.render(ctx, rec, format)
}

// ExportAll renders raw in every format of formats concurrently. The record is
// normalized once and shared read-only. The first failure cancels the
// remaining renders and no artifacts are returned.
func (e *Exporter) ExportAll(ctx context.Context, raw *types.CVRecord, formats []Format) ([]*Artifact, error) {
	for _, f := range formats {
		if !f.IsLocal() {
			return nil, &UnsupportedFormatError{Format: string(f), Reason: "not a local format"}
		}
	}

	rec, err := e.Prepare(raw)
	if err != nil {
		return nil, err
	}

	artifacts := make([]*Artifact, len(formats))
	g, gCtx := errgroup.WithContext(ctx)
	for i, f := range formats {
		g.Go(func() error {
			artifact, err := e.render(gCtx, rec, f)
			if err != nil {
				return fmt.Errorf("%s export failed: %w", f, err)
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

func (e *Exporter) render(ctx context.Context, rec *cv.Record, format Format) (*Artifact, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatHTML:
		var html string
		html, err = e.html.RenderHTML(rec)
		data = []byte(html)
	case FormatPDF:
		data, err = rendering.NewPDFRenderer(e.html, e.rasterizer).RenderPDF(ctx, rec)
	case FormatDOCX:
		data, err = rendering.DOCX(rec)
	case FormatGDocs:
		return nil, &UnsupportedFormatError{Format: string(format), Reason: "remote format has no local artifact"}
	default:
		return nil, &UnsupportedFormatError{Format: string(format)}
	}
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Format:      format,
		Filename:    cv.Filename(rec.Profile, format.Extension()),
		ContentType: format.ContentType(),
		Data:        data,
	}
	e.log.Debug("rendered artifact",
		zap.String("format", string(format)),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(data)))
	e.emit(StepRendered, format, artifact.Filename)
	return artifact, nil
}

// Remote validates, normalizes and publishes raw through renderer.
func (e *Exporter) Remote(ctx context.Context, raw *types.CVRecord, renderer *gdocs.Renderer) (*gdocs.Result, error) {
	rec, err := e.Prepare(raw)
	if err != nil {
		return nil, err
	}

	result, err := renderer.Render(ctx, rec)
	if err != nil {
		return nil, err
	}
	e.emit(StepPublished, FormatGDocs, result.DocumentURL)
	return result, nil
}

// WriteArtifact writes a to dir under its filename, or to path when path is
// set, and returns the path written.
func WriteArtifact(a *Artifact, dir, path string) (string, error) {
	if path == "" {
		path = filepath.Join(dir, a.Filename)
	}
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
