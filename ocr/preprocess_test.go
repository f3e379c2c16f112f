package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 40 && x < w; x++ {
		for y := 10; y < 20 && y < h; y++ {
			img.Set(x, y, color.Black)
		}
	}
	return img
}

func TestPrepareImage(t *testing.T) {
	data, err := PrepareImage(testImage(100, 50), 1)
	if err != nil {
		t.Fatalf("PrepareImage failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("unscaled output resized to %v", img.Bounds())
	}
}

func TestPrepareImageUpscale(t *testing.T) {
	data, err := PrepareImage(testImage(100, 50), 2)
	if err != nil {
		t.Fatalf("PrepareImage failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("2x output bounds = %v", img.Bounds())
	}
}

func TestPrepareImageNil(t *testing.T) {
	if _, err := PrepareImage(nil, 1); err == nil {
		t.Error("expected error for nil image")
	}
}
