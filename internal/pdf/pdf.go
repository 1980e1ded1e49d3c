package pdf

import (
	"bytes"
	"context"
	"image/png"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// A4 dimensions in millimeters.
const (
	a4WidthMM  = 210.0
	a4HeightMM = 297.0
)

// Renderer produces downloadable PDFs from generated documents.
type Renderer struct {
	timeout time.Duration
}

// NewRenderer returns a renderer with the default browser timeout.
func NewRenderer() *Renderer {
	return &Renderer{timeout: DefaultTimeout}
}

// Render converts one document into a paginated A4 PDF.
func (r *Renderer) Render(ctx context.Context, doc types.GeneratedDocument, title string) ([]byte, error) {
	htmlContent, err := BuildHTML(doc, title)
	if err != nil {
		return nil, err
	}

	capture, err := screenshot(ctx, htmlContent, r.timeout)
	if err != nil {
		return nil, err
	}

	return paginate(capture)
}

// paginate splits a full-page PNG capture across A4 pages. The page
// count is derived from the capture's pixel height against the A4
// aspect ratio; each page re-places the same image at a shifted
// vertical offset rather than re-rendering.
func paginate(capture []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(capture))
	if err != nil {
		return nil, &RenderError{Message: "failed to decode capture", Cause: err}
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, &RenderError{Message: "empty capture"}
	}

	// Pixel height of one A4 page at the capture's width.
	pageHeightPx := float64(cfg.Width) * a4HeightMM / a4WidthMM
	pages := int(float64(cfg.Height)/pageHeightPx) + 1
	imageHeightMM := float64(cfg.Height) / float64(cfg.Width) * a4WidthMM

	doc := fpdf.New("P", "mm", "A4", "")
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	doc.RegisterImageOptionsReader("capture", opts, bytes.NewReader(capture))
	if doc.Err() {
		return nil, &RenderError{Message: "failed to register capture image", Cause: doc.Error()}
	}

	for i := 0; i < pages; i++ {
		doc.AddPage()
		offset := -float64(i) * a4HeightMM
		doc.ImageOptions("capture", 0, offset, a4WidthMM, imageHeightMM, false, opts, 0, "")
	}

	var out bytes.Buffer
	if err := doc.Output(&out); err != nil {
		return nil, &RenderError{Message: "failed to write pdf", Cause: err}
	}
	return out.Bytes(), nil
}
