// Package kitab extracts structured, chapter-segmented text from scanned
// PDF books, predominantly Arabic-language material. A document flows
// through a fixed pipeline: pages are rendered to images, each image is
// recognized independently, per-page text is cleaned and normalized, the
// combined stream is partitioned into chapters by a heading heuristic, and
// the chapter sequence is exported as a DOCX document, a JSON chapter list,
// or a per-chapter ZIP bundle.
//
// Basic usage:
//
//	res, err := kitab.FromBytes(pdf).Language(script.Arabic).Run(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if res.PagesFailed > 0 {
//	    log.Printf("%d pages failed recognition", res.PagesFailed)
//	}
//
// With options and a DOCX artifact:
//
//	res, err := kitab.FromBytes(pdf).
//	    DPI(300).
//	    HeadingMaxChars(50).
//	    WriteDOCX(ctx, out)
//
// Recognition failures on individual pages never fail the run: the page
// contributes an empty string and is counted in Result.PagesFailed. Only a
// broken document (rasterization), a fully unavailable recognition engine,
// or an export I/O fault is fatal.
package kitab

import (
	"os"
)

// FromBytes starts a pipeline for a PDF held in memory. Configuration
// methods return derived pipelines, so a configured pipeline can be reused
// as a template.
func FromBytes(pdf []byte) *Pipeline {
	return newPipeline(pdf)
}

// FromFile starts a pipeline for a PDF on disk. The file is read eagerly;
// a read failure is reported by the first terminal operation.
func FromFile(path string) *Pipeline {
	data, err := os.ReadFile(path)
	p := newPipeline(data)
	if err != nil {
		p.err = err
	}
	return p
}
