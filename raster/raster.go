// Package raster converts PDF documents into page images for OCR. It wraps
// the MuPDF renderer via go-fitz: no external binary is shelled out to, but
// the underlying native library must be loadable at run time.
package raster

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the default render resolution. Raising it improves
// recognition of small print at the cost of latency and memory.
const DefaultDPI = 250

// Page is one rendered PDF page. Index is the 0-based position in document
// order. Pages are transient: they exist only until their text has been
// recognized.
type Page struct {
	Index int
	Image image.Image
	DPI   int
}

// Renderer renders PDF bytes into page images.
type Renderer struct{}

// NewRenderer creates a Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts pdfBytes into one Page per document page, in order, at the
// given DPI (DefaultDPI when dpi <= 0). Rendering is all-or-nothing: a
// corrupt document or an unavailable rendering engine fails the whole call.
// The context is checked between pages.
func (r *Renderer) Render(ctx context.Context, pdfBytes []byte, dpi int) ([]Page, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	if len(pdfBytes) == 0 {
		return nil, fmt.Errorf("empty PDF input")
	}

	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()

	count := doc.NumPage()
	if count == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	pages := make([]Page, 0, count)
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		pages = append(pages, Page{Index: i, Image: img, DPI: dpi})
	}
	return pages, nil
}

// PageCount reports the number of pages in pdfBytes without rendering any.
func (r *Renderer) PageCount(pdfBytes []byte) (int, error) {
	doc, err := fitz.NewFromMemory(pdfBytes)
	if err != nil {
		return 0, fmt.Errorf("open PDF: %w", err)
	}
	defer doc.Close()
	return doc.NumPage(), nil
}
