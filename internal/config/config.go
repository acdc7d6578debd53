package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/jtgis/go-md2html/internal/dateutil"
	"github.com/jtgis/go-md2html/internal/fileutil"
	"github.com/jtgis/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// AppDir is the directory under the XDG config home searched for named configs.
const AppDir = "go-md2html"

// Field length limits.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 500
	MaxPathLength        = 4096
	MaxURLLength         = 2048
	MaxNameLength        = 64 // engine, style, level names
)

// Range limits.
const (
	MaxPerPage = 100
	MaxWorkers = 64
)

// Config holds all configuration for rendering and site builds.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Site   SiteConfig   `yaml:"site"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig controls Markdown conversion.
type RenderConfig struct {
	Engine            string `yaml:"engine"`            // "lite" (default) or "goldmark"
	ImageBase         string `yaml:"imageBase"`         // prefix for relative images (default "posts/")
	DisableInlineCode bool   `yaml:"disableInlineCode"` // leave `backticks` literal
	LineBreaks        string `yaml:"lineBreaks"`        // "space" (default) or "break"
	Highlight         string `yaml:"highlight"`         // chroma style for the goldmark engine (empty = off)
	Standalone        bool   `yaml:"standalone"`        // wrap converted files in a full HTML page
	Style             string `yaml:"style"`             // stylesheet name in assets/styles (empty = "default")
}

// SiteConfig controls static site builds.
type SiteConfig struct {
	Title         string `yaml:"title"`
	Description   string `yaml:"description"`
	PostsDir      string `yaml:"postsDir"`   // Markdown sources (default "posts")
	Manifest      string `yaml:"manifest"`   // JSON post index, relative to postsDir parent (default "posts.json")
	OutputDir     string `yaml:"outputDir"`  // generated site (default "public")
	PerPage       int    `yaml:"perPage"`    // posts per index page (default 6)
	DateFormat    string `yaml:"dateFormat"` // dateutil preset or tokens (default "long")
	Workers       int    `yaml:"workers"`    // 0 = auto
	IncludeDrafts bool   `yaml:"includeDrafts"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// LogConfig defines logging options.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default info)
}

// Validate checks enums, ranges and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"render.engine", c.Render.Engine, MaxNameLength},
		{"render.imageBase", c.Render.ImageBase, MaxURLLength},
		{"render.lineBreaks", c.Render.LineBreaks, MaxNameLength},
		{"render.highlight", c.Render.Highlight, MaxNameLength},
		{"render.style", c.Render.Style, MaxNameLength},
		{"site.title", c.Site.Title, MaxTitleLength},
		{"site.description", c.Site.Description, MaxDescriptionLength},
		{"site.postsDir", c.Site.PostsDir, MaxPathLength},
		{"site.manifest", c.Site.Manifest, MaxPathLength},
		{"site.outputDir", c.Site.OutputDir, MaxPathLength},
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"log.level", c.Log.Level, MaxNameLength},
	}
	for _, chk := range checks {
		if err := validateFieldLength(chk.field, chk.value, chk.max); err != nil {
			return err
		}
	}

	if err := validateEnum("render.engine", c.Render.Engine, "lite", "goldmark"); err != nil {
		return err
	}
	if err := validateEnum("render.lineBreaks", c.Render.LineBreaks, "space", "break"); err != nil {
		return err
	}
	if err := validateEnum("log.level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}

	if c.Site.PerPage < 0 || c.Site.PerPage > MaxPerPage {
		return fmt.Errorf("%w: site.perPage must be between 0 and %d, got %d", ErrInvalidValue, MaxPerPage, c.Site.PerPage)
	}
	if c.Site.Workers < 0 || c.Site.Workers > MaxWorkers {
		return fmt.Errorf("%w: site.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Site.Workers)
	}
	if c.Site.DateFormat != "" {
		if _, err := dateutil.Layout(c.Site.DateFormat); err != nil {
			return fmt.Errorf("%w: site.dateFormat: %v", ErrInvalidValue, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateEnum accepts an empty value or one of allowed, case-insensitively.
func validateEnum(fieldName, value string, allowed ...string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			Engine:     "lite",
			ImageBase:  "posts/",
			LineBreaks: "space",
		},
		Site: SiteConfig{
			Title:      "Blog",
			PostsDir:   "posts",
			Manifest:   "posts.json",
			OutputDir:  "public",
			PerPage:    6,
			DateFormat: "long",
		},
		Log: LogConfig{Level: "info"},
	}
}

// applyDefaults fills fields a config file left empty.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	setIfEmpty := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	setIfEmpty(&c.Render.Engine, d.Render.Engine)
	setIfEmpty(&c.Render.LineBreaks, d.Render.LineBreaks)
	setIfEmpty(&c.Site.Title, d.Site.Title)
	setIfEmpty(&c.Site.PostsDir, d.Site.PostsDir)
	setIfEmpty(&c.Site.Manifest, d.Site.Manifest)
	setIfEmpty(&c.Site.OutputDir, d.Site.OutputDir)
	setIfEmpty(&c.Site.DateFormat, d.Site.DateFormat)
	setIfEmpty(&c.Log.Level, d.Log.Level)
	if c.Site.PerPage == 0 {
		c.Site.PerPage = d.Site.PerPage
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
//
// render.imageBase is kept as written, so an explicit "" disables rebasing.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.Unmarshal(data, cfg, yamlutil.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, then the XDG config
// directories ($XDG_CONFIG_HOME/go-md2html/, then $XDG_CONFIG_DIRS).
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	for _, ext := range extensions {
		rel := filepath.Join(AppDir, name+ext)
		if p, err := xdg.SearchConfigFile(rel); err == nil {
			return p, nil
		}
		triedPaths = append(triedPaths, filepath.Join(xdg.ConfigHome, rel))
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
