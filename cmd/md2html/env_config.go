package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jtgis/go-md2html/internal/config"
)

const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Values override the config file and are overridden by flags.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG
	AssetPath  string // MD2HTML_ASSET_PATH
	LogLevel   string // MD2HTML_LOG_LEVEL

	Engine     string // MD2HTML_ENGINE
	ImageBase  string // MD2HTML_IMAGE_BASE
	LineBreaks string // MD2HTML_LINE_BREAKS
	Highlight  string // MD2HTML_HIGHLIGHT
	Style      string // MD2HTML_STYLE

	InputDir  string // MD2HTML_INPUT_DIR
	OutputDir string // MD2HTML_OUTPUT_DIR

	SiteTitle string // MD2HTML_SITE_TITLE
	PostsDir  string // MD2HTML_POSTS_DIR
	SiteDir   string // MD2HTML_SITE_DIR
	Workers   int    // MD2HTML_WORKERS
}

// knownEnvVars lists valid MD2HTML_* environment variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":      true,
	"MD2HTML_ASSET_PATH":  true,
	"MD2HTML_LOG_LEVEL":   true,
	"MD2HTML_ENGINE":      true,
	"MD2HTML_IMAGE_BASE":  true,
	"MD2HTML_LINE_BREAKS": true,
	"MD2HTML_HIGHLIGHT":   true,
	"MD2HTML_STYLE":       true,
	"MD2HTML_INPUT_DIR":   true,
	"MD2HTML_OUTPUT_DIR":  true,
	"MD2HTML_SITE_TITLE":  true,
	"MD2HTML_POSTS_DIR":   true,
	"MD2HTML_SITE_DIR":    true,
	"MD2HTML_WORKERS":     true,
}

// loadEnvConfig reads the recognized MD2HTML_* variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
		AssetPath:  getenv("MD2HTML_ASSET_PATH"),
		LogLevel:   getenv("MD2HTML_LOG_LEVEL"),
		Engine:     getenv("MD2HTML_ENGINE"),
		ImageBase:  getenv("MD2HTML_IMAGE_BASE"),
		LineBreaks: getenv("MD2HTML_LINE_BREAKS"),
		Highlight:  getenv("MD2HTML_HIGHLIGHT"),
		Style:      getenv("MD2HTML_STYLE"),
		InputDir:   getenv("MD2HTML_INPUT_DIR"),
		OutputDir:  getenv("MD2HTML_OUTPUT_DIR"),
		SiteTitle:  getenv("MD2HTML_SITE_TITLE"),
		PostsDir:   getenv("MD2HTML_POSTS_DIR"),
		SiteDir:    getenv("MD2HTML_SITE_DIR"),
	}

	if workers := getenv("MD2HTML_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars reports unrecognized MD2HTML_* variables, which are
// usually typos.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig copies the set variables into cfg.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.Assets.BasePath, env.AssetPath)
	set(&cfg.Log.Level, env.LogLevel)
	set(&cfg.Render.Engine, env.Engine)
	set(&cfg.Render.ImageBase, env.ImageBase)
	set(&cfg.Render.LineBreaks, env.LineBreaks)
	set(&cfg.Render.Highlight, env.Highlight)
	set(&cfg.Render.Style, env.Style)
	set(&cfg.Input.DefaultDir, env.InputDir)
	set(&cfg.Output.DefaultDir, env.OutputDir)
	set(&cfg.Site.Title, env.SiteTitle)
	set(&cfg.Site.PostsDir, env.PostsDir)
	set(&cfg.Site.OutputDir, env.SiteDir)
	if env.Workers > 0 {
		cfg.Site.Workers = env.Workers
	}
}
