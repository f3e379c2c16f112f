package kitab

import (
	"context"
	"strings"
	"testing"
)

func TestDiagnoseConsistency(t *testing.T) {
	d := Diagnose(context.Background())
	if d.OK() != (len(d.Errors) == 0) {
		t.Errorf("OK() = %v with errors %v", d.OK(), d.Errors)
	}
	if d.OK() && !(d.RasterizerOK && d.OCREnabled && d.ArabicTraineddata) {
		t.Errorf("OK() but checks failed: %+v", d)
	}
	if !d.OCREnabled && len(d.Errors) == 0 {
		t.Error("engine unavailable but no error recorded")
	}
	if d.ArabicTraineddata {
		found := false
		for _, l := range d.Languages {
			if l == "ara" {
				found = true
			}
		}
		if !found {
			t.Error("ArabicTraineddata set but ara not in Languages")
		}
	}
}

func TestExtractTextLayerGarbage(t *testing.T) {
	if _, err := extractTextLayer([]byte("not a pdf")); err == nil {
		t.Error("expected error for garbage input")
	}
	if _, err := extractTextLayer(nil); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestPreferTextLayerFallsBackToOCR(t *testing.T) {
	// probePDF has no text content, so the fast path must reject it and
	// the run must go through rasterization and recognition.
	texts := []string{"نص معروف يثبت أن المسار مر عبر محرك التعرف لا طبقة النص."}
	p := FromBytes(probePDF()).
		WithRasterizer(fakeRasterizer{n: 1}).
		WithRecognizer(fakeRecognizer{texts: texts}).
		WithLogger(quietLogger()).
		PreferTextLayer(true)
	res, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Chapters) != 1 || !strings.Contains(res.Chapters[0].Body, "محرك التعرف") {
		t.Errorf("expected recognized text in output, got %+v", res.Chapters)
	}
}
