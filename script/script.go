// Package script classifies text by writing script and direction. It is used
// by the normalizer and chapter segmenter to decide whether a line is
// dominated by the target script (e.g. Arabic) and whether right-to-left
// handling applies.
package script

import (
	"strings"
	"unicode"
)

// Direction represents the writing direction of text.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for digits, punctuation and whitespace.
	Neutral
)

// String returns "LTR", "RTL" or "Neutral".
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// Language identifies the recognition/reshaping target script of a document.
// The value doubles as the Tesseract language code.
type Language string

const (
	// Arabic selects the Arabic recognition model and RTL handling.
	Arabic Language = "ara"
	// ArabicEnglish selects mixed Arabic+English recognition (RTL handling
	// still applies to Arabic runs).
	ArabicEnglish Language = "ara+eng"
	// English selects Latin-script recognition with no RTL handling.
	English Language = "eng"
)

// RTL reports whether the language's primary script runs right to left.
func (l Language) RTL() bool {
	switch l {
	case Arabic, ArabicEnglish:
		return true
	default:
		return false
	}
}

// DetectDirection returns the dominant direction of text by counting strong
// directional characters, or Neutral if none are present.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltr, rtl := 0, 0
	for _, r := range text {
		switch CharDirection(r) {
		case LTR:
			ltr++
		case RTL:
			rtl++
		}
	}

	if ltr == 0 && rtl == 0 {
		return Neutral
	}
	if rtl > ltr {
		return RTL
	}
	return LTR
}

// CharDirection returns the inherent direction of a single rune. Digits,
// punctuation, whitespace and symbols are Neutral; Arabic and Hebrew blocks
// are RTL; everything else is treated as LTR.
func CharDirection(r rune) Direction {
	if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
		return Neutral
	}
	if IsArabic(r) || isHebrew(r) {
		return RTL
	}
	return LTR
}

// IsArabic reports whether r falls in an Arabic Unicode block:
//   - Arabic: U+0600–U+06FF
//   - Arabic Supplement: U+0750–U+077F
//   - Arabic Extended-A: U+08A0–U+08FF
//   - Arabic Presentation Forms-A: U+FB50–U+FDFF
//   - Arabic Presentation Forms-B: U+FE70–U+FEFF
func IsArabic(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) ||
		(r >= 0x0750 && r <= 0x077F) ||
		(r >= 0x08A0 && r <= 0x08FF) ||
		(r >= 0xFB50 && r <= 0xFDFF) ||
		(r >= 0xFE70 && r <= 0xFEFF)
}

// IsArabicLetter reports whether r is a base Arabic letter (U+0621–U+064A),
// the range used by OCR output in logical order. Presentation forms and
// diacritics are excluded.
func IsArabicLetter(r rune) bool {
	return r >= 0x0621 && r <= 0x064A
}

// IsArabicDigit reports whether r is an Arabic-Indic digit (٠–٩).
func IsArabicDigit(r rune) bool {
	return r >= 0x0660 && r <= 0x0669
}

// IsTashkeel reports whether r is an Arabic diacritic (harakat, tanween and
// related combining marks).
func IsTashkeel(r rune) bool {
	return (r >= 0x0610 && r <= 0x061A) ||
		(r >= 0x064B && r <= 0x065F) ||
		r == 0x0670 ||
		(r >= 0x06D6 && r <= 0x06ED)
}

func isHebrew(r rune) bool {
	return (r >= 0x0590 && r <= 0x05FF) ||
		(r >= 0xFB1D && r <= 0xFB4F)
}

// isLatinLetter reports whether r is an ASCII letter.
func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// LetterRatio returns the fraction of runes in text (including spaces and
// punctuation) that are letters of the given language's primary script.
// Returns 0 for empty text.
func LetterRatio(text string, lang Language) float64 {
	if text == "" {
		return 0
	}
	total, hits := 0, 0
	for _, r := range text {
		total++
		if matchesScript(r, lang) {
			hits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

func matchesScript(r rune, lang Language) bool {
	switch lang {
	case Arabic, ArabicEnglish:
		return IsArabicLetter(r)
	default:
		return isLatinLetter(r)
	}
}

// MixedContent reports whether text mixes Arabic with Latin letters or
// contains an email address or URL. Reshaping such lines for display tends
// to scramble the Latin runs, so callers preserve them as-is.
func MixedContent(text string) bool {
	hasArabic, hasLatin := false, false
	for _, r := range text {
		if IsArabicLetter(r) {
			hasArabic = true
		} else if isLatinLetter(r) {
			hasLatin = true
		}
	}
	if hasArabic && hasLatin {
		return true
	}
	return strings.Contains(text, "@") ||
		strings.Contains(text, "http://") ||
		strings.Contains(text, "https://") ||
		strings.Contains(text, "www.")
}
