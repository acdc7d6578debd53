// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config in the user config directory.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-md2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForManifestNotFound returns hints when a site has no post manifest.
func ForManifestNotFound(manifest string) string {
	return format("create " + manifest + " or omit --manifest to index posts from front matter")
}

// ForPostsDirectory returns hints when the posts directory is missing.
func ForPostsDirectory(dir string) string {
	return format("create " + dir + " or pass --posts DIR")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidEngine lists the rendering engines.
func ForInvalidEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("available engines: " + strings.Join(engines, ", "))
}

// ForFrontMatter explains the expected front matter layout.
func ForFrontMatter() string {
	return format("front matter starts and ends with a line containing only ---")
}

// ForTemplateNotFound returns hints for template or style asset errors.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
