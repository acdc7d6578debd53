// Package assets provides the stylesheets and HTML templates used to wrap
// converted Markdown into pages.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in theme)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the CLI and the site builder. It tries
// the custom FilesystemLoader first and falls back to the embedded assets
// when a name is not found, so a theme directory only needs the files it
// overrides.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css           # stylesheet (e.g., default.css)
//	└── templates/
//	    └── {name}/
//	        ├── layout.html      # page shell, defines the "content" block
//	        ├── post.html        # single post, overrides "content"
//	        └── list.html        # index, tag and archive pages
//
// Templates are parsed with html/template and receive a PageData value.
// PageData.Content is trusted HTML produced by the converter; it is not
// sanitized here.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
