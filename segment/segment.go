// Package segment partitions the normalized text of a scanned book into an
// ordered sequence of chapters. Detection is heuristic and line-oriented: a
// line opens a new chapter when it matches a configured marker pattern
// (الفصل, باب, numbered items) or looks like a standalone short heading in
// the target script. Boundary detection is best-effort; a document with no
// detectable headings yields a single fallback chapter wrapping all text.
package segment

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/maktaba/kitab/script"
)

// Page is one page of normalized text, identified by its 0-based position in
// the source document.
type Page struct {
	Index int
	Text  string
}

// Chapter is a detected chapter: its heading line, the body text between
// this heading and the next, and the page the heading was recognized on.
// Order is 0-based and sequential with no gaps. Chapters with empty bodies
// are legal (consecutive headings are kept separate rather than merged).
type Chapter struct {
	Title     string
	Body      string
	StartPage int
	Order     int
}

// Config holds chapter-detection parameters. The threshold values are
// tunable: the heuristic has no documented precision target, so callers with
// unusual material are expected to adjust them.
type Config struct {
	// Language is the target script of the document.
	Language script.Language

	// MaxHeadingChars is the maximum rune length for the short-line
	// heading heuristic. Default 40.
	MaxHeadingChars int

	// MinScriptRatio is the minimum fraction of target-script letters a
	// short line needs to qualify as a heading. Default 0.4.
	MinScriptRatio float64

	// MarkerPatterns are regexes that force a line to be a heading
	// regardless of the short-line heuristic.
	MarkerPatterns []*regexp.Regexp

	// FallbackTitle names the synthetic chapter used when text precedes
	// the first heading, or when no heading is found at all.
	FallbackTitle string
}

// Default marker patterns: الفصل/باب followed by a word or number, bare فصل
// with optional separator, and numbered items with Latin or Arabic-Indic
// digits. English material gets the usual chapter/section/part markers.
func defaultMarkers(lang script.Language) []*regexp.Regexp {
	markers := []*regexp.Regexp{
		regexp.MustCompile(`^(?:الفصل|باب)\s+[\x{0621}-\x{064A}0-9]+`),
		regexp.MustCompile(`^فصل\s*[:\-]?\s*`),
		regexp.MustCompile(`^\s*[0-9\x{0660}-\x{0669}]{1,3}\s*[-.،)]\s+`),
	}
	if lang == script.English || lang == script.ArabicEnglish {
		markers = append(markers,
			regexp.MustCompile(`^(?i)(?:chapter|section|part)\s+\d+`))
	}
	return markers
}

// DefaultConfig returns the default detection parameters for lang.
func DefaultConfig(lang script.Language) Config {
	return Config{
		Language:        lang,
		MaxHeadingChars: 40,
		MinScriptRatio:  0.4,
		MarkerPatterns:  defaultMarkers(lang),
		FallbackTitle:   "مقدمة",
	}
}

// Detector applies the heading heuristic and chapter partitioning.
type Detector struct {
	cfg Config
}

// NewDetector creates a Detector, filling unset Config fields with defaults.
func NewDetector(cfg Config) *Detector {
	if cfg.Language == "" {
		cfg.Language = script.Arabic
	}
	if cfg.MaxHeadingChars == 0 {
		cfg.MaxHeadingChars = 40
	}
	if cfg.MinScriptRatio == 0 {
		cfg.MinScriptRatio = 0.4
	}
	if cfg.MarkerPatterns == nil {
		cfg.MarkerPatterns = defaultMarkers(cfg.Language)
	}
	if cfg.FallbackTitle == "" {
		cfg.FallbackTitle = "مقدمة"
	}
	return &Detector{cfg: cfg}
}

// IsHeading reports whether a single cleaned line is a chapter heading
// candidate. It is a pure predicate over the line and the Detector's config,
// with no document state.
func (d *Detector) IsHeading(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	for _, pat := range d.cfg.MarkerPatterns {
		if pat.MatchString(line) {
			return true
		}
	}

	// Short multi-word line, dominated by the target script, with no
	// sentence-ending punctuation.
	if utf8.RuneCountInString(line) > d.cfg.MaxHeadingChars {
		return false
	}
	if !strings.Contains(line, " ") {
		return false
	}
	if strings.ContainsAny(line, ".۔") {
		return false
	}
	return script.LetterRatio(line, d.cfg.Language) > d.cfg.MinScriptRatio
}

// Segment partitions pages into chapters. Every line of input lands in
// exactly one chapter (as a title or in a body), so the chapter spans cover
// the whole stream with no overlap. Text before the first heading becomes a
// preamble chapter under the fallback title, kept only when non-empty. If no
// heading is found anywhere, the result is exactly one chapter (order 0)
// with the fallback title wrapping the full text. Never fails.
func (d *Detector) Segment(pages []Page) []Chapter {
	startPage := 0
	if len(pages) > 0 {
		startPage = pages[0].Index
	}

	var chapters []Chapter
	current := Chapter{Title: d.cfg.FallbackTitle, StartPage: startPage}
	var body []string
	preamble := true

	flush := func() {
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		chapters = append(chapters, current)
		body = body[:0]
	}

	for _, page := range pages {
		if page.Text == "" {
			continue
		}
		for _, line := range strings.Split(page.Text, "\n") {
			if !d.IsHeading(line) {
				body = append(body, line)
				continue
			}
			if preamble && strings.TrimSpace(strings.Join(body, "\n")) == "" {
				// Nothing before the first heading; no preamble chapter.
				body = body[:0]
			} else {
				flush()
			}
			preamble = false
			current = Chapter{Title: strings.TrimSpace(line), StartPage: page.Index}
		}
	}
	flush()

	for i := range chapters {
		chapters[i].Order = i
	}
	return chapters
}
