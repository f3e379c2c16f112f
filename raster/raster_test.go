package raster

import (
	"bytes"
	"context"
	"fmt"
	"testing"
)

// minimalPDF builds a valid single-page PDF with a correct xref table.
func minimalPDF() []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, 4)
	obj := func(n int, body string) {
		offsets[n] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", n, body)
	}
	obj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	obj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	obj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	xref := b.Len()
	b.WriteString("xref\n0 4\n0000000000 65535 f \n")
	for n := 1; n <= 3; n++ {
		fmt.Fprintf(&b, "%010d 00000 n \n", offsets[n])
	}
	fmt.Fprintf(&b, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xref)
	return b.Bytes()
}

func TestRender(t *testing.T) {
	r := NewRenderer()
	pages, err := r.Render(context.Background(), minimalPDF(), 72)
	if err != nil {
		t.Skipf("MuPDF not available: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	p := pages[0]
	if p.Index != 0 {
		t.Errorf("page index = %d, want 0", p.Index)
	}
	if p.DPI != 72 {
		t.Errorf("page dpi = %d, want 72", p.DPI)
	}
	if p.Image == nil || p.Image.Bounds().Empty() {
		t.Error("page image is empty")
	}
}

func TestRenderDefaultDPI(t *testing.T) {
	r := NewRenderer()
	pages, err := r.Render(context.Background(), minimalPDF(), 0)
	if err != nil {
		t.Skipf("MuPDF not available: %v", err)
	}
	if pages[0].DPI != DefaultDPI {
		t.Errorf("dpi = %d, want %d", pages[0].DPI, DefaultDPI)
	}
}

func TestRenderBadInput(t *testing.T) {
	r := NewRenderer()
	if _, err := r.Render(context.Background(), nil, 150); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := r.Render(context.Background(), []byte("not a pdf at all"), 150); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestRenderCancelled(t *testing.T) {
	r := NewRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, minimalPDF(), 72); err == nil {
		t.Skip("MuPDF rejected input before cancellation check")
	}
}

func TestPageCount(t *testing.T) {
	r := NewRenderer()
	n, err := r.PageCount(minimalPDF())
	if err != nil {
		t.Skipf("MuPDF not available: %v", err)
	}
	if n != 1 {
		t.Errorf("page count = %d, want 1", n)
	}
}
