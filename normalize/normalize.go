// Package normalize cleans raw OCR output one page at a time. It strips
// recognition noise lines, unifies whitespace while keeping blank-line
// paragraph boundaries, and optionally folds Arabic letter variants and
// removes diacritics. Cleaning is a fixed point: running it again on its own
// output changes nothing.
//
// Display reshaping (contextual letter forms plus bidirectional reordering)
// lives in this package too but is a separate, opt-in step; see Display.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/maktaba/kitab/script"
)

// Config holds normalization options.
type Config struct {
	// Language is the target script of the document.
	Language script.Language

	// FoldLetters collapses common Arabic letter variants (hamza carriers,
	// alef maksura) onto a canonical letter. Useful for matching, lossy for
	// faithful reproduction. Default false.
	FoldLetters bool

	// StripDiacritics removes tashkeel (harakat and related combining
	// marks). Default false.
	StripDiacritics bool

	// KeepNoiseLines disables noise-line removal. Default false.
	KeepNoiseLines bool
}

// DefaultConfig returns the default normalization options for lang.
func DefaultConfig(lang script.Language) Config {
	return Config{Language: lang}
}

// Normalizer cleans raw per-page OCR text according to its Config.
// The zero value is usable and equivalent to DefaultConfig(script.Arabic).
type Normalizer struct {
	cfg Config
}

// New creates a Normalizer with the given configuration.
func New(cfg Config) *Normalizer {
	if cfg.Language == "" {
		cfg.Language = script.Arabic
	}
	return &Normalizer{cfg: cfg}
}

var (
	spaceRun = regexp.MustCompile(`[ \t\x{00A0}]+`)
	multiDot = regexp.MustCompile(`\.\.+`)
)

// Arabic letter variants folded by Config.FoldLetters. Mirrors the usual
// search-normalization set: hamza carriers to the bare letter, alef maksura
// to yaa.
var letterFolds = strings.NewReplacer(
	"ى", "ي",
	"إ", "ا",
	"أ", "ا",
	"ٱ", "ا",
	"ؤ", "و",
	"ئ", "ي",
)

// Line cleans a single line: strips BOM and directional marks, unifies
// horizontal whitespace, collapses dot runs into an ellipsis, and applies
// the configured letter folding and diacritic removal. Never fails; the
// worst case is an empty string.
func (n *Normalizer) Line(line string) string {
	line = strings.Trim(line, "\uFEFF‏‎")
	line = spaceRun.ReplaceAllString(line, " ")
	line = multiDot.ReplaceAllString(line, "…")
	if n.cfg.FoldLetters {
		line = letterFolds.Replace(line)
	}
	if n.cfg.StripDiacritics {
		line = strings.Map(func(r rune) rune {
			if script.IsTashkeel(r) {
				return -1
			}
			return r
		}, line)
	}
	return strings.TrimSpace(line)
}

// Page cleans one page of raw OCR text. Lines are normalized individually,
// noise lines are dropped, and runs of blank lines collapse to a single
// blank so paragraph boundaries survive. Never fails.
func (n *Normalizer) Page(raw string) string {
	if raw == "" {
		return ""
	}

	var out []string
	blank := false
	for _, line := range strings.Split(raw, "\n") {
		cleaned := n.Line(line)
		if cleaned == "" {
			blank = true
			continue
		}
		if !n.cfg.KeepNoiseLines && IsNoiseLine(cleaned) {
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, cleaned)
	}
	return strings.Join(out, "\n")
}

// IsNoiseLine reports whether a cleaned line is a recognition artifact
// rather than content: page-number lines, stray digit runs, and lines made
// entirely of punctuation or symbols. A line with at least one letter in any
// script is never noise.
func IsNoiseLine(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
