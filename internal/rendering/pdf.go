package rendering

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/harvard-cv/internal/cv"
	"github.com/jonathan/harvard-cv/internal/logger"
	"go.uber.org/zap"
)

// DefaultPDFTimeout bounds a single headless-browser rasterization.
const DefaultPDFTimeout = 60 * time.Second

// Rasterizer converts a complete HTML document into PDF bytes.
type Rasterizer interface {
	HTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeRasterizer prints HTML to PDF with a headless Chrome/Chromium.
type ChromeRasterizer struct {
	// ExecPath overrides the browser binary; empty uses chromedp's lookup.
	ExecPath string
	Timeout  time.Duration
	Logger   *zap.Logger
}

// HTMLToPDF loads html into a blank page and prints it on US Letter paper.
func (c *ChromeRasterizer) HTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	log := logger.OrNop(c.Logger)
	start := time.Now()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// Margins come from the template's @page rule.
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RasterizeError{Message: "headless browser print failed", Cause: err}
	}

	log.Debug("rasterized html to pdf",
		zap.Int("html_bytes", len(html)),
		zap.Int("pdf_bytes", len(pdf)),
		zap.Duration("elapsed", time.Since(start)))

	return pdf, nil
}

// PDFRenderer renders HTML through an HTMLRenderer and rasterizes the result.
type PDFRenderer struct {
	html       *HTMLRenderer
	rasterizer Rasterizer
}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer(html *HTMLRenderer, rasterizer Rasterizer) *PDFRenderer {
	return &PDFRenderer{html: html, rasterizer: rasterizer}
}

// RenderPDF returns the rasterized Harvard CV for rec.
func (r *PDFRenderer) RenderPDF(ctx context.Context, rec *cv.Record) ([]byte, error) {
	content, err := r.html.RenderHTML(rec)
	if err != nil {
		return nil, err
	}

	pdf, err := r.rasterizer.HTMLToPDF(ctx, content)
	if err != nil {
		return nil, err
	}
	if len(pdf) == 0 {
		return nil, &RasterizeError{Message: "rasterizer returned an empty document"}
	}
	return pdf, nil
}
