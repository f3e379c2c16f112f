package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/maktaba/kitab/segment"
)

var (
	filenameSpaces  = regexp.MustCompile(`[\s\x{200F}\x{200E}]+`)
	filenameAllowed = regexp.MustCompile(`[^\x{0621}-\x{064A}a-zA-Z0-9_\-()\[\]{}]+`)
)

// SanitizeFilename turns a chapter title into a safe file name: spaces and
// directional marks become underscores, anything outside Arabic letters,
// Latin letters, digits and basic brackets is removed, and the result is
// capped at 120 runes. An empty result falls back to the given default.
func SanitizeFilename(name, fallback string) string {
	name = strings.TrimSpace(name)
	name = filenameSpaces.ReplaceAllString(name, "_")
	name = filenameAllowed.ReplaceAllString(name, "")
	name = strings.Trim(name, "._- ")
	if name == "" {
		name = fallback
	}
	runes := []rune(name)
	if len(runes) > 120 {
		name = string(runes[:120])
	}
	return name
}

// WriteChapterZip writes a ZIP archive to w containing one DOCX per chapter,
// numbered in order with sanitized, de-duplicated file names. Each entry is
// a single-chapter document produced by WriteDocument.
func WriteChapterZip(w io.Writer, chapters []segment.Chapter, rtl bool) error {
	zw := zip.NewWriter(w)
	used := make(map[string]bool, len(chapters))

	for i, ch := range chapters {
		base := SanitizeFilename(ch.Title, fmt.Sprintf("chapter_%d", i+1))
		name := base
		for k := 1; used[strings.ToLower(name)]; k++ {
			name = fmt.Sprintf("%s_%d", base, k)
		}
		used[strings.ToLower(name)] = true

		var buf bytes.Buffer
		if err := WriteDocument(&buf, []segment.Chapter{ch}, rtl); err != nil {
			return fmt.Errorf("chapter %d: %w", i+1, err)
		}

		entry, err := zw.Create(fmt.Sprintf("%02d_%s.docx", i+1, name))
		if err != nil {
			return fmt.Errorf("zip entry %d: %w", i+1, err)
		}
		if _, err := entry.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("zip entry %d: %w", i+1, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close zip: %w", err)
	}
	return nil
}
