package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	md2html "github.com/jtgis/go-md2html"
	"github.com/jtgis/go-md2html/internal/assets"
	"github.com/jtgis/go-md2html/internal/config"
	"github.com/jtgis/go-md2html/internal/hints"
	"github.com/jtgis/go-md2html/internal/site"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound([]string{filepath.Join(xdg.ConfigHome, config.AppDir, "NAME.yaml")})
	case errors.Is(err, site.ErrManifestNotFound):
		return hints.ForManifestNotFound("the manifest")
	case errors.Is(err, site.ErrPostsDirectory):
		return hints.ForPostsDirectory("the posts directory")
	case errors.Is(err, md2html.ErrInvalidEngine):
		return hints.ForInvalidEngine(md2html.Engines())
	case errors.Is(err, md2html.ErrFrontMatter):
		return hints.ForFrontMatter()
	case errors.Is(err, assets.ErrStyleNotFound), errors.Is(err, assets.ErrTemplateSetNotFound):
		return hints.ForTemplateNotFound([]string{assets.DefaultStyleName})
	case errors.Is(err, ErrWriteHTML) && errors.Is(err, os.ErrPermission):
		return hints.ForOutputDirectory()
	}
	return ""
}

// withHint appends the hint for err to its message, keeping err in the chain.
func withHint(err error) error {
	if hint := hintFor(err); hint != "" {
		return fmt.Errorf("%w%s", err, hint)
	}
	return err
}
