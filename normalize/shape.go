package normalize

import (
	"strings"

	"golang.org/x/text/unicode/bidi"

	"github.com/maktaba/kitab/script"
)

// Contextual presentation forms (Arabic Presentation Forms-B) for each base
// letter: isolated, final, initial, medial. A zero means the letter has no
// such form; letters without initial/medial forms do not join to the letter
// that follows them.
var letterForms = map[rune][4]rune{
	'ء': {0xFE80, 0, 0, 0},           // hamza
	'آ': {0xFE81, 0xFE82, 0, 0},      // alef madda
	'أ': {0xFE83, 0xFE84, 0, 0},      // alef hamza above
	'ؤ': {0xFE85, 0xFE86, 0, 0},      // waw hamza
	'إ': {0xFE87, 0xFE88, 0, 0},      // alef hamza below
	'ئ': {0xFE89, 0xFE8A, 0xFE8B, 0xFE8C}, // yeh hamza
	'ا': {0xFE8D, 0xFE8E, 0, 0},      // alef
	'ب': {0xFE8F, 0xFE90, 0xFE91, 0xFE92}, // beh
	'ة': {0xFE93, 0xFE94, 0, 0},      // teh marbuta
	'ت': {0xFE95, 0xFE96, 0xFE97, 0xFE98}, // teh
	'ث': {0xFE99, 0xFE9A, 0xFE9B, 0xFE9C}, // theh
	'ج': {0xFE9D, 0xFE9E, 0xFE9F, 0xFEA0}, // jeem
	'ح': {0xFEA1, 0xFEA2, 0xFEA3, 0xFEA4}, // hah
	'خ': {0xFEA5, 0xFEA6, 0xFEA7, 0xFEA8}, // khah
	'د': {0xFEA9, 0xFEAA, 0, 0},      // dal
	'ذ': {0xFEAB, 0xFEAC, 0, 0},      // thal
	'ر': {0xFEAD, 0xFEAE, 0, 0},      // reh
	'ز': {0xFEAF, 0xFEB0, 0, 0},      // zain
	'س': {0xFEB1, 0xFEB2, 0xFEB3, 0xFEB4}, // seen
	'ش': {0xFEB5, 0xFEB6, 0xFEB7, 0xFEB8}, // sheen
	'ص': {0xFEB9, 0xFEBA, 0xFEBB, 0xFEBC}, // sad
	'ض': {0xFEBD, 0xFEBE, 0xFEBF, 0xFEC0}, // dad
	'ط': {0xFEC1, 0xFEC2, 0xFEC3, 0xFEC4}, // tah
	'ظ': {0xFEC5, 0xFEC6, 0xFEC7, 0xFEC8}, // zah
	'ع': {0xFEC9, 0xFECA, 0xFECB, 0xFECC}, // ain
	'غ': {0xFECD, 0xFECE, 0xFECF, 0xFED0}, // ghain
	'ف': {0xFED1, 0xFED2, 0xFED3, 0xFED4}, // feh
	'ق': {0xFED5, 0xFED6, 0xFED7, 0xFED8}, // qaf
	'ك': {0xFED9, 0xFEDA, 0xFEDB, 0xFEDC}, // kaf
	'ل': {0xFEDD, 0xFEDE, 0xFEDF, 0xFEE0}, // lam
	'م': {0xFEE1, 0xFEE2, 0xFEE3, 0xFEE4}, // meem
	'ن': {0xFEE5, 0xFEE6, 0xFEE7, 0xFEE8}, // noon
	'ه': {0xFEE9, 0xFEEA, 0xFEEB, 0xFEEC}, // heh
	'و': {0xFEED, 0xFEEE, 0, 0},      // waw
	'ى': {0xFEEF, 0xFEF0, 0, 0},      // alef maksura
	'ي': {0xFEF1, 0xFEF2, 0xFEF3, 0xFEF4}, // yeh
}

// Lam-alef pairs collapse into a single ligature: isolated and final forms.
var lamAlefLigatures = map[rune][2]rune{
	'آ': {0xFEF5, 0xFEF6},
	'أ': {0xFEF7, 0xFEF8},
	'إ': {0xFEF9, 0xFEFA},
	'ا': {0xFEFB, 0xFEFC},
}

const lam = 'ل'

// joinsNext reports whether the letter connects to the letter after it,
// i.e. it has an initial form.
func joinsNext(r rune) bool {
	f, ok := letterForms[r]
	return ok && f[2] != 0
}

// shapeable reports whether r takes contextual forms at all.
func shapeable(r rune) bool {
	_, ok := letterForms[r]
	return ok
}

// Reshape converts logical-order Arabic base letters into their contextual
// presentation forms, including lam-alef ligatures. Tashkeel marks are
// transparent: they pass through unchanged and do not break joining.
// Non-Arabic runes are left untouched. Text that is already in presentation
// forms has no base letters left to map, so Reshape is a no-op on its own
// output.
func Reshape(text string) string {
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	// joinable letter strictly before/after index i, skipping tashkeel
	prevJoins := func(i int) bool {
		for j := i - 1; j >= 0; j-- {
			if script.IsTashkeel(runes[j]) {
				continue
			}
			return joinsNext(runes[j])
		}
		return false
	}
	nextShapes := func(i int) bool {
		for j := i + 1; j < len(runes); j++ {
			if script.IsTashkeel(runes[j]) {
				continue
			}
			return shapeable(runes[j])
		}
		return false
	}
	// index of the next non-tashkeel rune, or -1
	nextBase := func(i int) int {
		for j := i + 1; j < len(runes); j++ {
			if !script.IsTashkeel(runes[j]) {
				return j
			}
		}
		return -1
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		forms, ok := letterForms[r]
		if !ok {
			b.WriteRune(r)
			continue
		}

		// lam-alef ligature
		if r == lam {
			if j := nextBase(i); j >= 0 {
				if lig, isAlef := lamAlefLigatures[runes[j]]; isAlef {
					if prevJoins(i) {
						b.WriteRune(lig[1])
					} else {
						b.WriteRune(lig[0])
					}
					// keep tashkeel between lam and alef
					for k := i + 1; k < j; k++ {
						b.WriteRune(runes[k])
					}
					i = j
					continue
				}
			}
		}

		joinPrev := prevJoins(i) && forms[1] != 0
		joinNext := forms[2] != 0 && nextShapes(i)
		switch {
		case joinPrev && joinNext:
			b.WriteRune(forms[3])
		case joinPrev:
			b.WriteRune(forms[1])
		case joinNext:
			b.WriteRune(forms[2])
		default:
			b.WriteRune(forms[0])
		}
	}
	return b.String()
}

// Display renders logical-order text into visual order for consumers that do
// not run their own bidi pipeline (plain-text previews, JSON viewers).
// Each line is reshaped into presentation forms and its right-to-left runs
// are reversed using the Unicode bidi algorithm. Lines mixing Arabic with
// Latin, or containing emails/URLs, are preserved as-is: reordering those
// tends to do more harm than good. Word processors handle RTL themselves,
// so the DOCX exporter does not call this unless asked to.
func Display(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" || script.MixedContent(line) {
			continue
		}
		lines[i] = visualOrder(Reshape(line))
	}
	return strings.Join(lines, "\n")
}

// visualOrder reorders one logical-order line into visual order, reversing
// right-to-left runs. On bidi resolution failure the input is returned
// unchanged.
func visualOrder(line string) string {
	var p bidi.Paragraph
	if _, err := p.SetString(line); err != nil {
		return line
	}
	ordering, err := p.Order()
	if err != nil {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		s := run.String()
		if run.Direction() == bidi.RightToLeft {
			s = bidi.ReverseString(s)
		}
		b.WriteString(s)
	}
	return b.String()
}
