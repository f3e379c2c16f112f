package kitab

import (
	"log/slog"
	"runtime"
	"sync/atomic"

	"github.com/maktaba/kitab/raster"
	"github.com/maktaba/kitab/script"
)

// newPipeline builds a Pipeline with default configuration over pdf.
func newPipeline(pdf []byte) *Pipeline {
	return &Pipeline{
		pdf:     pdf,
		dpi:     raster.DefaultDPI,
		lang:    script.Arabic,
		workers: runtime.GOMAXPROCS(0),
		tocPage: -1,
		ras:     raster.NewRenderer(),
		rec:     engineRecognizer{},
		log:     slog.Default(),
		state:   new(atomic.Int32),
	}
}

// clone creates a copy of the Pipeline with its own run state. Each
// configuration method returns a new instance, so a configured pipeline can
// be shared and reused as a template.
func (p *Pipeline) clone() *Pipeline {
	c := *p
	c.state = new(atomic.Int32)
	if p.markerWords != nil {
		c.markerWords = append([]string(nil), p.markerWords...)
	}
	return &c
}

// DPI sets the render resolution. Higher values improve recognition of
// small print at increased latency and memory cost. Values at or below zero
// fall back to raster.DefaultDPI.
func (p *Pipeline) DPI(dpi int) *Pipeline {
	c := p.clone()
	c.dpi = dpi
	return c
}

// Language sets the recognition and reshaping target script.
// Default script.Arabic.
func (p *Pipeline) Language(lang script.Language) *Pipeline {
	c := p.clone()
	c.lang = lang
	return c
}

// Workers bounds the number of pages recognized concurrently. The default
// is GOMAXPROCS; each in-flight page holds an engine instance, so this also
// caps engine processes.
func (p *Pipeline) Workers(n int) *Pipeline {
	c := p.clone()
	if n > 0 {
		c.workers = n
	}
	return c
}

// HeadingMaxChars sets the maximum rune length for the short-line heading
// heuristic (default 40).
func (p *Pipeline) HeadingMaxChars(n int) *Pipeline {
	c := p.clone()
	c.headingMaxChars = n
	return c
}

// MinScriptRatio sets the minimum fraction of target-script letters a short
// line needs to count as a heading (default 0.4).
func (p *Pipeline) MinScriptRatio(ratio float64) *Pipeline {
	c := p.clone()
	c.minScriptRatio = ratio
	return c
}

// MarkerWords replaces the default heading marker patterns with literal
// words: a line beginning with any of them is always a heading.
func (p *Pipeline) MarkerWords(words ...string) *Pipeline {
	c := p.clone()
	c.markerWords = append([]string(nil), words...)
	return c
}

// FallbackTitle sets the title of the synthetic chapter used for text
// before the first detected heading, or for a document with no headings at
// all. Default "مقدمة".
func (p *Pipeline) FallbackTitle(title string) *Pipeline {
	c := p.clone()
	c.fallbackTitle = title
	return c
}

// FoldLetters enables Arabic letter-variant folding during normalization.
func (p *Pipeline) FoldLetters(on bool) *Pipeline {
	c := p.clone()
	c.foldLetters = on
	return c
}

// StripDiacritics enables tashkeel removal during normalization.
func (p *Pipeline) StripDiacritics(on bool) *Pipeline {
	c := p.clone()
	c.stripDiacritics = on
	return c
}

// ShapeForDisplay reshapes chapter text into visual order with contextual
// letter forms before it is returned or exported. Meant for consumers with
// no bidi rendering of their own; word processors do not need it.
func (p *Pipeline) ShapeForDisplay(on bool) *Pipeline {
	c := p.clone()
	c.shapeForDisplay = on
	return c
}

// PreferTextLayer probes the PDF's embedded text layer before rendering
// anything. When every page carries usable embedded text, rasterization and
// OCR are skipped entirely; otherwise the pipeline proceeds as usual.
func (p *Pipeline) PreferTextLayer(on bool) *Pipeline {
	c := p.clone()
	c.preferTextLayer = on
	return c
}

// UseTOC segments chapters by the book's table of contents instead of the
// heading heuristic. page is the 0-based TOC page index, or -1 to detect it
// by keyword in the leading pages. offset maps printed page numbers to
// physical positions (physical = printed + offset). If no TOC entries can
// be recovered the pipeline falls back to the heading heuristic.
func (p *Pipeline) UseTOC(page, offset int) *Pipeline {
	c := p.clone()
	c.useTOC = true
	c.tocPage = page
	c.tocOffset = offset
	return c
}

// WithRasterizer replaces the page rasterizer. Intended for tests and for
// callers with their own rendering capability.
func (p *Pipeline) WithRasterizer(r Rasterizer) *Pipeline {
	c := p.clone()
	c.ras = r
	return c
}

// WithRecognizer replaces the text recognizer. Intended for tests and for
// callers with their own recognition capability.
func (p *Pipeline) WithRecognizer(r Recognizer) *Pipeline {
	c := p.clone()
	c.rec = r
	return c
}

// WithLogger sets the logger used for per-run progress and page warnings.
// Default slog.Default().
func (p *Pipeline) WithLogger(log *slog.Logger) *Pipeline {
	c := p.clone()
	if log != nil {
		c.log = log
	}
	return c
}
