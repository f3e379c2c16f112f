package ocr

import "errors"

// ErrNotEnabled is returned when OCR operations are invoked but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")
