package kitab

import (
	"context"
	"image"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/maktaba/kitab/export"
	"github.com/maktaba/kitab/normalize"
	"github.com/maktaba/kitab/ocr"
	"github.com/maktaba/kitab/raster"
	"github.com/maktaba/kitab/script"
	"github.com/maktaba/kitab/segment"
)

// Rasterizer renders the pages of a PDF to images at the given resolution.
type Rasterizer interface {
	Render(ctx context.Context, pdf []byte, dpi int) ([]raster.Page, error)
}

// Recognizer extracts text from a single page image.
type Recognizer interface {
	Recognize(ctx context.Context, img image.Image, lang script.Language) (string, error)
}

// State reports how far a pipeline run has progressed.
type State int32

const (
	StateIdle State = iota
	StateRasterizing
	StateRecognizing
	StateSegmenting
	StateExporting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRasterizing:
		return "rasterizing"
	case StateRecognizing:
		return "recognizing"
	case StateSegmenting:
		return "segmenting"
	case StateExporting:
		return "exporting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Pipeline carries a document through rasterization, recognition,
// normalization and chapter segmentation. Configuration methods return new
// instances; a Pipeline is safe to share as a template but a single instance
// should run once at a time.
type Pipeline struct {
	pdf []byte

	dpi             int
	lang            script.Language
	workers         int
	headingMaxChars int
	minScriptRatio  float64
	markerWords     []string
	fallbackTitle   string
	foldLetters     bool
	stripDiacritics bool
	shapeForDisplay bool
	preferTextLayer bool
	useTOC          bool
	tocPage         int
	tocOffset       int

	ras Rasterizer
	rec Recognizer
	log *slog.Logger

	state *atomic.Int32

	err error
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Chapters []segment.Chapter

	// PageCount is the number of pages in the document. Every page is
	// either processed or failed, never both.
	PageCount      int
	PagesProcessed int
	PagesFailed    int
}

// State returns the current progress of the pipeline.
func (p *Pipeline) State() State {
	return State(p.state.Load())
}

func (p *Pipeline) setState(s State) {
	p.state.Store(int32(s))
}

// Run executes the full pipeline and returns the segmented chapters along
// with page accounting. Individual page failures are tolerated: a page
// whose recognition errors or comes back empty contributes nothing and is
// counted in PagesFailed. Run fails outright only when the document cannot
// be rendered at all (*RasterizationError) or when the recognition engine
// errors on every single page (*RecognitionUnavailableError).
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	res, err := p.run(ctx)
	if err != nil {
		return nil, err
	}
	p.setState(StateDone)
	return res, nil
}

// run carries the pipeline through segmentation. The caller owns the final
// transition: Run goes straight to Done, the exporting terminal ops pass
// through Exporting first.
func (p *Pipeline) run(ctx context.Context) (*Result, error) {
	if p.err != nil {
		p.setState(StateFailed)
		return nil, p.err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	log := p.log.With("run_id", uuid.NewString())

	norm := normalize.New(normalize.Config{
		Language:        p.lang,
		FoldLetters:     p.foldLetters,
		StripDiacritics: p.stripDiacritics,
	})

	if p.preferTextLayer {
		if texts, ok := p.tryTextLayer(log); ok {
			pages := make([]segment.Page, len(texts))
			for i, t := range texts {
				pages[i] = segment.Page{Index: i, Text: norm.Page(t)}
			}
			return p.finish(log, pages, len(pages), 0)
		}
	}

	p.setState(StateRasterizing)
	rendered, err := p.ras.Render(ctx, p.pdf, p.dpi)
	if err != nil {
		p.setState(StateFailed)
		return nil, &RasterizationError{Err: err}
	}
	log.Debug("document rasterized", "pages", len(rendered), "dpi", p.dpi)

	p.setState(StateRecognizing)
	type pageResult struct {
		text      string
		ok        bool
		engineErr error
	}
	results := make([]pageResult, len(rendered))

	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup
	for _, pg := range rendered {
		wg.Add(1)
		sem <- struct{}{}
		go func(pg raster.Page) {
			defer wg.Done()
			defer func() { <-sem }()
			raw, rerr := p.rec.Recognize(ctx, pg.Image, p.lang)
			if rerr != nil {
				log.Warn("page recognition failed", "page", pg.Index, "error", rerr)
				results[pg.Index] = pageResult{engineErr: rerr}
				return
			}
			results[pg.Index] = pageResult{
				text: norm.Page(raw),
				ok:   strings.TrimSpace(raw) != "",
			}
		}(pg)
	}
	wg.Wait()

	engineFailures := 0
	processed := 0
	pages := make([]segment.Page, len(results))
	for i, r := range results {
		pages[i] = segment.Page{Index: i, Text: r.text}
		if r.engineErr != nil {
			engineFailures++
		}
		if r.ok {
			processed++
		}
	}
	if len(results) > 0 && engineFailures == len(results) {
		p.setState(StateFailed)
		var first error
		for _, r := range results {
			if r.engineErr != nil {
				first = r.engineErr
				break
			}
		}
		return nil, &RecognitionUnavailableError{Err: first}
	}

	return p.finish(log, pages, processed, len(results)-processed)
}

// finish segments the recognized pages and assembles the result.
func (p *Pipeline) finish(log *slog.Logger, pages []segment.Page, processed, failed int) (*Result, error) {
	p.setState(StateSegmenting)
	det := segment.NewDetector(p.segmentConfig())

	var chapters []segment.Chapter
	if p.useTOC {
		chapters = p.segmentByTOC(log, det, pages)
	}
	if chapters == nil {
		chapters = det.Segment(pages)
	}

	if p.shapeForDisplay && p.lang.RTL() {
		for i := range chapters {
			chapters[i].Title = normalize.Display(chapters[i].Title)
			chapters[i].Body = normalize.Display(chapters[i].Body)
		}
	}

	log.Info("pipeline complete",
		"pages", len(pages),
		"processed", processed,
		"failed", failed,
		"chapters", len(chapters))
	return &Result{
		Chapters:       chapters,
		PageCount:      len(pages),
		PagesProcessed: processed,
		PagesFailed:    failed,
	}, nil
}

func (p *Pipeline) segmentConfig() segment.Config {
	cfg := segment.DefaultConfig(p.lang)
	if p.headingMaxChars > 0 {
		cfg.MaxHeadingChars = p.headingMaxChars
	}
	if p.minScriptRatio > 0 {
		cfg.MinScriptRatio = p.minScriptRatio
	}
	if p.fallbackTitle != "" {
		cfg.FallbackTitle = p.fallbackTitle
	}
	if len(p.markerWords) > 0 {
		pats := make([]*regexp.Regexp, 0, len(p.markerWords))
		for _, w := range p.markerWords {
			pats = append(pats, regexp.MustCompile(`^`+regexp.QuoteMeta(w)+`(\s|$)`))
		}
		cfg.MarkerPatterns = pats
	}
	return cfg
}

// segmentByTOC locates and parses the table of contents, then slices the
// document along its entries. Returns nil when no usable TOC is found, in
// which case the caller falls back to the heading heuristic.
func (p *Pipeline) segmentByTOC(log *slog.Logger, det *segment.Detector, pages []segment.Page) []segment.Chapter {
	tocIdx := p.tocPage
	if tocIdx < 0 {
		tocIdx = segment.DetectTOCPage(pages, 10)
	}
	if tocIdx < 0 || tocIdx >= len(pages) {
		log.Warn("contents page not found, using heading heuristic")
		return nil
	}
	entries := segment.ParseTOC(pages[tocIdx].Text)
	if len(entries) == 0 {
		log.Warn("no entries parsed from contents page, using heading heuristic", "page", tocIdx)
		return nil
	}
	log.Debug("segmenting by contents page", "page", tocIdx, "entries", len(entries))
	return det.SegmentByTOC(pages, entries, p.tocOffset)
}

// WriteDOCX runs the pipeline and writes the chapters to w as a Word
// document. Paragraphs are right-aligned for RTL languages.
func (p *Pipeline) WriteDOCX(ctx context.Context, w io.Writer) (*Result, error) {
	res, err := p.run(ctx)
	if err != nil {
		return nil, err
	}
	p.setState(StateExporting)
	if err := export.WriteDocument(w, res.Chapters, p.lang.RTL()); err != nil {
		p.setState(StateFailed)
		return nil, &ExportError{Err: err}
	}
	p.setState(StateDone)
	return res, nil
}

// JSON runs the pipeline and returns the chapters as a JSON array.
func (p *Pipeline) JSON(ctx context.Context) ([]byte, *Result, error) {
	res, err := p.run(ctx)
	if err != nil {
		return nil, nil, err
	}
	p.setState(StateExporting)
	data, err := export.MarshalChapters(res.Chapters)
	if err != nil {
		p.setState(StateFailed)
		return nil, nil, &ExportError{Err: err}
	}
	p.setState(StateDone)
	return data, res, nil
}

// WriteZip runs the pipeline and writes a ZIP archive to w with one Word
// document per chapter.
func (p *Pipeline) WriteZip(ctx context.Context, w io.Writer) (*Result, error) {
	res, err := p.run(ctx)
	if err != nil {
		return nil, err
	}
	p.setState(StateExporting)
	if err := export.WriteChapterZip(w, res.Chapters, p.lang.RTL()); err != nil {
		p.setState(StateFailed)
		return nil, &ExportError{Err: err}
	}
	p.setState(StateDone)
	return res, nil
}

// engineRecognizer backs the default Recognizer with the Tesseract engine.
// A fresh client per page keeps recognition goroutine-safe.
type engineRecognizer struct{}

func (engineRecognizer) Recognize(ctx context.Context, img image.Image, lang script.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()
	if err := client.SetLanguage(string(lang)); err != nil {
		return "", err
	}
	data, err := ocr.PrepareImage(img, 1)
	if err != nil {
		return "", err
	}
	return client.RecognizeImage(data)
}
