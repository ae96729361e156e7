package rendering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRasterizer struct {
	gotHTML string
	out     []byte
	err     error
}

func (f *fakeRasterizer) HTMLToPDF(_ context.Context, html string) ([]byte, error) {
	f.gotHTML = html
	return f.out, f.err
}

func TestRenderPDF_RasterizesRenderedHTML(t *testing.T) {
	raster := &fakeRasterizer{out: []byte("%PDF-1.7")}
	html := NewHTMLRenderer()

	pdf, err := NewPDFRenderer(html, raster).RenderPDF(context.Background(), anaRecord())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7"), pdf)
	expected, err := html.RenderHTML(anaRecord())
	require.NoError(t, err)
	assert.Equal(t, expected, raster.gotHTML)
}

func TestRenderPDF_TemplateNotFoundSkipsRasterizer(t *testing.T) {
	raster := &fakeRasterizer{out: []byte("%PDF")}
	html := NewHTMLRenderer(WithTemplateDir(t.TempDir()))

	_, err := NewPDFRenderer(html, raster).RenderPDF(context.Background(), anaRecord())
	var notFound *TemplateNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Empty(t, raster.gotHTML)
}

func TestRenderPDF_RasterizerFailure(t *testing.T) {
	cause := errors.New("chrome not found")
	raster := &fakeRasterizer{err: &RasterizeError{Message: "headless browser print failed", Cause: cause}}

	_, err := NewPDFRenderer(NewHTMLRenderer(), raster).RenderPDF(context.Background(), anaRecord())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestRenderPDF_EmptyOutputIsError(t *testing.T) {
	_, err := NewPDFRenderer(NewHTMLRenderer(), &fakeRasterizer{}).RenderPDF(context.Background(), anaRecord())
	var rasterErr *RasterizeError
	assert.ErrorAs(t, err, &rasterErr)
}
