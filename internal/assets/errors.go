package assets

import "errors"

// Lookup errors. The resolver falls back to the built-in theme on these.
var (
	ErrStyleNotFound       = errors.New("style not found")
	ErrTemplateSetNotFound = errors.New("template set not found")
)

var (
	// ErrIncompleteTemplateSet means some but not all of layout.html,
	// post.html and list.html exist.
	ErrIncompleteTemplateSet = errors.New("template set missing required template")

	ErrTemplateParse          = errors.New("failed to parse template")
	ErrHighlightStyleNotFound = errors.New("highlight style not found")

	// ErrInvalidAssetName rejects names that are empty, too long or not
	// made of letters, digits, '-' and '_'.
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("path traversal detected")
)
