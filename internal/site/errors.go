package site

import "errors"

// Sentinel errors for site operations.
var (
	ErrManifestNotFound = errors.New("manifest not found")
	ErrManifestParse    = errors.New("failed to parse manifest")
	ErrPostNotFound     = errors.New("post not found")
	ErrPostsDirectory   = errors.New("posts directory not found")
)
