package main

import (
	"fmt"

	"github.com/charmbracelet/log"

	md2html "github.com/jtgis/go-md2html"
	"github.com/jtgis/go-md2html/internal/config"
	"github.com/jtgis/go-md2html/internal/logger"
)

// loadSettings resolves the effective configuration.
// Priority: flags > MD2HTML_* variables > config file > defaults.
func loadSettings(common *commonFlags, render *renderFlags, env *Environment) (*config.Config, *logger.Logger, error) {
	warnUnknownEnvVars(env.Stderr, env.Environ())
	vars := loadEnvConfig(env.Getenv)

	source := common.config
	if source == "" {
		source = vars.ConfigPath
	}

	cfg := config.DefaultConfig()
	if source != "" {
		var err error
		if cfg, err = config.LoadConfig(source); err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(vars, cfg)
	mergeRenderFlags(render, cfg)
	if common.assetPath != "" {
		cfg.Assets.BasePath = common.assetPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: log.level: %v", config.ErrInvalidValue, err)
	}
	switch {
	case common.verbose:
		level = log.DebugLevel
	case common.quiet:
		level = log.ErrorLevel
	}
	l := logger.New(env.Stderr, level)

	if source == "" {
		source = "defaults"
	}
	l.ConfigLoaded(source, cfg.Render.Engine)
	return cfg, l, nil
}

// mergeRenderFlags merges conversion flags into config. Flags win.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.engine != "" {
		cfg.Render.Engine = f.engine
	}
	if f.imageBaseSet {
		cfg.Render.ImageBase = f.imageBase
	}
	if f.lineBreaks != "" {
		cfg.Render.LineBreaks = f.lineBreaks
	}
	if f.highlight != "" {
		cfg.Render.Highlight = f.highlight
	}
	if f.noInlineCode {
		cfg.Render.DisableInlineCode = true
	}
}

// converterOptions translates the render section into converter options.
// imageBase is passed separately because site builds override it.
func converterOptions(r config.RenderConfig, imageBase string) ([]md2html.Option, error) {
	engine, err := md2html.ParseEngine(r.Engine)
	if err != nil {
		return nil, err
	}
	breaks, err := md2html.ParseLineBreaks(r.LineBreaks)
	if err != nil {
		return nil, err
	}

	opts := []md2html.Option{
		md2html.WithEngine(engine),
		md2html.WithImageBase(imageBase),
		md2html.WithInlineCode(!r.DisableInlineCode),
		md2html.WithLineBreaks(breaks),
	}
	if r.Highlight != "" {
		opts = append(opts, md2html.WithHighlightStyle(r.Highlight))
	}
	return opts, nil
}
