//go:build !ocr

// Package ocr wraps the Tesseract engine via gosseract for recognizing text
// in rendered page images.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// All operations return ErrNotEnabled. To enable OCR, rebuild with:
//
//	go build -tags ocr
//
// which requires Tesseract and the target language's traineddata to be
// installed (apt-get install tesseract-ocr tesseract-ocr-ara, or
// brew install tesseract tesseract-lang).
package ocr

// Client is a stub OCR client; every operation returns ErrNotEnabled.
type Client struct{}

// New returns ErrNotEnabled. Rebuild with -tags ocr to enable OCR support.
func New() (*Client, error) {
	return nil, ErrNotEnabled
}

// Close is a no-op. It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguage returns ErrNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrNotEnabled
}

// RecognizeImage returns ErrNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// AvailableLanguages returns ErrNotEnabled.
func AvailableLanguages() ([]string, error) {
	return nil, ErrNotEnabled
}

// HasLanguage returns ErrNotEnabled.
func HasLanguage(lang string) (bool, error) {
	return false, ErrNotEnabled
}
