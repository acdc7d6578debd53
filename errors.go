package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrInvalidEngine         = errors.New("invalid engine")
	ErrInvalidLineBreaks     = errors.New("invalid line break policy")
	ErrInvalidHighlightStyle = errors.New("invalid highlight style")

	// ErrFrontMatter wraps front matter that cannot be split or decoded.
	ErrFrontMatter = errors.New("invalid front matter")
)
