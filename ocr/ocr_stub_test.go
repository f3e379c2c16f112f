//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStubReturnsErrNotEnabled(t *testing.T) {
	if _, err := New(); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("New() error = %v, want ErrNotEnabled", err)
	}
	if _, err := AvailableLanguages(); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("AvailableLanguages() error = %v, want ErrNotEnabled", err)
	}
	if _, err := HasLanguage("ara"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("HasLanguage() error = %v, want ErrNotEnabled", err)
	}

	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil stub client = %v", err)
	}
}
