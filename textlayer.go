package kitab

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	pdflib "github.com/ledongthuc/pdf"
)

// minTextLayerChars is the minimum rune count per page for an embedded
// text layer to be trusted. Scanned books often carry a vestigial layer of
// a few garbage characters per page; below this threshold OCR is used
// instead.
const minTextLayerChars = 32

// extractTextLayer pulls the embedded text of every page. It returns an
// error when the document cannot be opened or has no pages; pages without
// text come back as empty strings.
func extractTextLayer(pdf []byte) (texts []string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			texts, err = nil, fmt.Errorf("parse text layer: %v", r)
		}
	}()

	r, err := pdflib.NewReader(bytes.NewReader(pdf), int64(len(pdf)))
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	n := r.NumPage()
	if n == 0 {
		return nil, fmt.Errorf("document has no pages")
	}
	texts = make([]string, n)
	for i := 1; i <= n; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		texts[i-1] = text
	}
	return texts, nil
}

// tryTextLayer reports whether the document's embedded text layer is usable
// on every page. All-or-nothing: a single thin page sends the whole
// document to OCR, since partially embedded text usually means a scan with
// leftover metadata.
func (p *Pipeline) tryTextLayer(log *slog.Logger) ([]string, bool) {
	texts, err := extractTextLayer(p.pdf)
	if err != nil {
		log.Debug("no usable text layer", "error", err)
		return nil, false
	}
	for i, t := range texts {
		if utf8.RuneCountInString(strings.TrimSpace(t)) < minTextLayerChars {
			log.Debug("text layer too thin", "page", i)
			return nil, false
		}
	}
	log.Info("using embedded text layer", "pages", len(texts))
	return texts, true
}
