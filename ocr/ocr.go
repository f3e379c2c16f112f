//go:build ocr

// Package ocr wraps the Tesseract engine via gosseract for recognizing text
// in rendered page images. It requires Tesseract to be installed, along with
// the traineddata for the target language (ara for Arabic). On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr tesseract-ocr-ara
//
// On macOS:
//
//	brew install tesseract tesseract-lang
//
// Without the "ocr" build tag a stub implementation is compiled instead and
// every operation reports ErrNotEnabled.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a Tesseract client. Clients are not safe for concurrent use;
// concurrent recognition should use one Client per goroutine. Close must be
// called to release engine resources.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases engine resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguage selects the recognition model/dictionary. Multiple languages
// are "+"-separated (e.g. "ara+eng"). A language whose traineddata is not
// installed surfaces as an error from Text, not from here.
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG, ...)
// and returns the recognized text with surrounding whitespace trimmed. An
// empty result is not an error: a blank page recognizes as "".
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// AvailableLanguages lists the traineddata languages the installed engine
// can use.
func AvailableLanguages() ([]string, error) {
	return gosseract.GetAvailableLanguages()
}

// HasLanguage reports whether every "+"-separated component of lang has
// traineddata installed.
func HasLanguage(lang string) (bool, error) {
	available, err := AvailableLanguages()
	if err != nil {
		return false, err
	}
	installed := make(map[string]bool, len(available))
	for _, l := range available {
		installed[l] = true
	}
	for _, part := range strings.Split(lang, "+") {
		if !installed[part] {
			return false, nil
		}
	}
	return true, nil
}
