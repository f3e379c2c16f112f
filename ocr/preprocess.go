package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// PrepareImage converts a rendered page image into the form handed to the
// recognition engine: 8-bit grayscale, optionally upscaled, encoded as PNG.
// A scale above 1 helps the engine with small print on low-DPI renders;
// scale values at or below 1 leave the size unchanged.
func PrepareImage(img image.Image, scale float64) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}

	src := img.Bounds()
	dstW, dstH := src.Dx(), src.Dy()
	if scale > 1 {
		dstW = int(float64(dstW) * scale)
		dstH = int(float64(dstH) * scale)
	}

	gray := image.NewGray(image.Rect(0, 0, dstW, dstH))
	if dstW == src.Dx() && dstH == src.Dy() {
		draw.Draw(gray, gray.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(gray, gray.Bounds(), img, src, draw.Src, nil)
	}
	return EncodePNG(gray)
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
