package kitab

import (
	"bytes"
	"context"
	"fmt"

	"github.com/maktaba/kitab/ocr"
	"github.com/maktaba/kitab/raster"
)

// Diagnostics reports whether the native dependencies behind the pipeline
// are actually usable in this process.
type Diagnostics struct {
	// RasterizerOK is true when MuPDF rendered a probe document.
	RasterizerOK bool `json:"rasterizerOk"`

	// OCREnabled is true when the binary was built with the ocr tag and
	// the Tesseract engine initialized.
	OCREnabled bool `json:"ocrEnabled"`

	// Languages lists the traineddata available to the engine.
	Languages []string `json:"languages,omitempty"`

	// ArabicTraineddata is true when the "ara" model is installed.
	ArabicTraineddata bool `json:"arabicTraineddata"`

	// Errors holds the probe failures, one message per failed check.
	Errors []string `json:"errors,omitempty"`
}

// probePDF builds a valid empty single-page document for exercising the
// renderer without touching the filesystem.
func probePDF() []byte {
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

// Diagnose probes the renderer and the recognition engine and reports what
// works. Meant for installation checks before processing real documents.
func Diagnose(ctx context.Context) Diagnostics {
	var d Diagnostics

	r := raster.NewRenderer()
	probe := probePDF()
	if _, err := r.Render(ctx, probe, 72); err != nil {
		d.Errors = append(d.Errors, fmt.Sprintf("rasterizer: %v", err))
	} else if n, err := r.PageCount(probe); err != nil {
		d.Errors = append(d.Errors, fmt.Sprintf("rasterizer: %v", err))
	} else if n != 1 {
		d.Errors = append(d.Errors, fmt.Sprintf("rasterizer: probe page count %d, want 1", n))
	} else {
		d.RasterizerOK = true
	}

	langs, err := ocr.AvailableLanguages()
	if err != nil {
		d.Errors = append(d.Errors, fmt.Sprintf("recognition engine: %v", err))
		return d
	}
	d.OCREnabled = true
	d.Languages = langs
	for _, l := range langs {
		if l == "ara" {
			d.ArabicTraineddata = true
		}
	}
	if !d.ArabicTraineddata {
		d.Errors = append(d.Errors, "recognition engine: ara.traineddata not installed")
	}
	return d
}

// OK reports whether every check passed.
func (d Diagnostics) OK() bool {
	return len(d.Errors) == 0
}
