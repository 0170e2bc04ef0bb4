package novelsite

import "errors"

// Sentinel errors for library operations.
var (
	ErrReadInputDir = errors.New("failed to read chapter directory")
	ErrReadChapter  = errors.New("failed to read chapter file")
	ErrWritePage    = errors.New("failed to write page")
	ErrReadIntro    = errors.New("failed to read index intro")
	ErrRenderIndex  = errors.New("index page rendering failed")

	// Site validation errors.
	ErrInvalidSite = errors.New("invalid site settings")
)
