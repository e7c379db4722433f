package extract

import "errors"

var (
	ErrUnsupportedType  = errors.New("extract: unsupported content type")
	ErrExtractionFailed = errors.New("extract: extraction failed")
)
