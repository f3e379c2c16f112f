package kitab

import "fmt"

// RasterizationError reports that the document could not be rendered at
// all: corrupt/unreadable PDF bytes or an unavailable rendering engine.
// It is fatal for the whole document; there is no partial rasterization.
type RasterizationError struct {
	Err error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("rasterization failed: %v", e.Err)
}

func (e *RasterizationError) Unwrap() error { return e.Err }

// RecognitionUnavailableError reports that the recognition engine failed on
// every page of the document, which makes the run fatal. Failures on a
// subset of pages are not errors; they degrade the run and are reflected in
// Result.PagesFailed instead.
type RecognitionUnavailableError struct {
	Err error
}

func (e *RecognitionUnavailableError) Error() string {
	return fmt.Sprintf("recognition unavailable: %v", e.Err)
}

func (e *RecognitionUnavailableError) Unwrap() error { return e.Err }

// ExportError reports an I/O or encoding failure while writing the output
// artifact. Content issues (empty chapters, empty documents) are never
// export errors.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export failed: %v", e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }
