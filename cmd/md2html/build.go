package main

import (
	"context"
	"fmt"
	"path/filepath"

	md2html "github.com/jtgis/go-md2html"
	"github.com/jtgis/go-md2html/internal/assets"
	"github.com/jtgis/go-md2html/internal/config"
	"github.com/jtgis/go-md2html/internal/site"
)

// runBuild renders the posts directory into a static site.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, log, err := loadSettings(&flags.common, &flags.render, env)
	if err != nil {
		return err
	}
	mergeBuildFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := siteOptions(cfg, flags.manifest)
	if err != nil {
		return err
	}
	opts.Now = env.Now

	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return err
	}
	builder, err := site.NewBuilder(opts, resolver, log)
	if err != nil {
		return err
	}

	stats, err := builder.Build(ctx)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Built %d pages (%d posts) in %s\n", stats.Pages, stats.Posts, opts.OutputDir)
		if stats.Skipped > 0 {
			fmt.Fprintf(env.Stdout, "%d draft(s) skipped\n", stats.Skipped)
		}
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d post(s) failed", stats.Failed)
	}
	return nil
}

// mergeBuildFlags merges site flags into config. Flags win.
func mergeBuildFlags(f *buildFlags, cfg *config.Config) {
	if f.posts != "" {
		cfg.Site.PostsDir = f.posts
	}
	if f.output != "" {
		cfg.Site.OutputDir = f.output
	}
	if f.perPage > 0 {
		cfg.Site.PerPage = f.perPage
	}
	if f.workers > 0 {
		cfg.Site.Workers = f.workers
	}
	if f.drafts {
		cfg.Site.IncludeDrafts = true
	}
}

// siteOptions maps the config to builder options. A manifest given on
// the command line must exist; the configured one is looked up next to
// the posts directory and is optional.
func siteOptions(cfg *config.Config, manifestFlag string) (site.Options, error) {
	engine, err := md2html.ParseEngine(cfg.Render.Engine)
	if err != nil {
		return site.Options{}, err
	}
	breaks, err := md2html.ParseLineBreaks(cfg.Render.LineBreaks)
	if err != nil {
		return site.Options{}, err
	}

	opts := site.Options{
		PostsDir:      cfg.Site.PostsDir,
		OutputDir:     cfg.Site.OutputDir,
		Title:         cfg.Site.Title,
		Description:   cfg.Site.Description,
		PerPage:       cfg.Site.PerPage,
		DateFormat:    cfg.Site.DateFormat,
		Workers:       cfg.Site.Workers,
		IncludeDrafts: cfg.Site.IncludeDrafts,
		Style:         cfg.Render.Style,
		Render: site.RenderOptions{
			Engine:            engine,
			LineBreaks:        breaks,
			DisableInlineCode: cfg.Render.DisableInlineCode,
			Highlight:         cfg.Render.Highlight,
		},
	}

	switch {
	case manifestFlag != "":
		opts.Manifest = manifestFlag
		opts.RequireManifest = true
	case cfg.Site.Manifest == "":
	case filepath.IsAbs(cfg.Site.Manifest):
		opts.Manifest = cfg.Site.Manifest
	default:
		parent := filepath.Dir(filepath.Clean(cfg.Site.PostsDir))
		opts.Manifest = filepath.Join(parent, cfg.Site.Manifest)
	}
	return opts, nil
}
