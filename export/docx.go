// Package export renders a chapter sequence into downloadable artifacts: a
// DOCX document, a JSON chapter list, or a ZIP bundle with one DOCX per
// chapter. Chapter order is always preserved and empty-body chapters are
// never dropped.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/maktaba/kitab/script"
	"github.com/maktaba/kitab/segment"
)

const headingSize = "32" // half-points; body text keeps the document default

// rightAligned decides a block's alignment from its own dominant direction.
// The document default (rtl) only breaks the tie for directionally neutral
// blocks, so a Latin quotation inside an Arabic book stays left-aligned.
func rightAligned(block string, rtl bool) bool {
	switch script.DetectDirection(block) {
	case script.RTL:
		return true
	case script.LTR:
		return false
	}
	return rtl
}

// WriteDocument writes chapters as a DOCX document to w. Each chapter
// becomes a heading paragraph (large, bold) followed by its body paragraphs,
// split on blank lines. rtl sets the document's reading direction; each
// paragraph is aligned by its own dominant script, with rtl deciding
// neutral paragraphs. Zero chapters produce a valid empty document. Text is
// written in logical order; word processors run their own bidi rendering.
func WriteDocument(w io.Writer, chapters []segment.Chapter, rtl bool) error {
	doc := docx.New().WithDefaultTheme()

	for _, ch := range chapters {
		title := ch.Title
		if title == "" {
			title = fmt.Sprintf("(%d)", ch.Order+1)
		}
		heading := doc.AddParagraph()
		if rightAligned(title, rtl) {
			heading.Justification("right")
		}
		heading.AddText(title).Size(headingSize).Bold()

		for _, block := range strings.Split(ch.Body, "\n\n") {
			block = strings.TrimSpace(block)
			if block == "" {
				continue
			}
			para := doc.AddParagraph()
			if rightAligned(block, rtl) {
				para.Justification("right")
			}
			para.AddText(strings.ReplaceAll(block, "\n", " "))
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
