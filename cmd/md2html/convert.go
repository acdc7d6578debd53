package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	md2html "github.com/jtgis/go-md2html"
	"github.com/jtgis/go-md2html/internal/assets"
	"github.com/jtgis/go-md2html/internal/config"
	"github.com/jtgis/go-md2html/internal/fileutil"
	"github.com/jtgis/go-md2html/internal/logger"
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// standalonePage wraps converted fragments in the default layout.
type standalonePage struct {
	tmpl *assets.Templates
	css  template.CSS
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, log, err := loadSettings(&flags.common, &flags.render, env)
	if err != nil {
		return err
	}
	if flags.standalone {
		cfg.Render.Standalone = true
	}
	if flags.style != "" {
		cfg.Render.Style = flags.style
	}
	workers := flags.workers
	if workers == 0 {
		workers = cfg.Site.Workers
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return err
	}
	files, err := discoverFiles(inputPath, resolveOutputDir(flags.output, cfg))
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	opts, err := converterOptions(cfg.Render, cfg.Render.ImageBase)
	if err != nil {
		return err
	}
	conv, err := md2html.NewConverter(opts...)
	if err != nil {
		return err
	}

	var page *standalonePage
	if cfg.Render.Standalone {
		if page, err = newStandalonePage(cfg, conv); err != nil {
			return err
		}
	}

	results := convertBatch(ctx, conv, files, page, workers)

	failed := printResults(results, flags.common, env, log)
	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// newStandalonePage loads the layout and inlines the stylesheet, plus
// the highlighting rules when the goldmark engine highlights code.
func newStandalonePage(cfg *config.Config, conv *md2html.Converter) (*standalonePage, error) {
	resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
	if err != nil {
		return nil, err
	}
	tmpl, err := resolver.Templates(assets.DefaultTemplateSetName)
	if err != nil {
		return nil, err
	}

	style := cfg.Render.Style
	if style == "" {
		style = assets.DefaultStyleName
	}
	css, err := resolver.LoadStyle(style)
	if err != nil {
		return nil, err
	}
	if conv.Engine() == md2html.EngineGoldmark && cfg.Render.Highlight != "" {
		hl, err := assets.HighlightCSS(cfg.Render.Highlight)
		if err != nil {
			return nil, err
		}
		css += "\n" + hl
	}

	return &standalonePage{
		tmpl: tmpl,
		css:  template.CSS(css), // #nosec G203 -- stylesheet from the asset loader
	}, nil
}

func (p *standalonePage) render(res *md2html.Result) ([]byte, error) {
	data := &assets.PageData{
		Title:       res.Title,
		Description: res.Meta.Description,
		CSS:         p.css,
		Content:     template.HTML(res.HTML), // #nosec G203 -- converter output, see package md2html trust boundary
	}
	var buf bytes.Buffer
	if err := p.tmpl.ExecutePage(&buf, data); err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}
	return buf.Bytes(), nil
}

// convertBatch converts files concurrently. Results keep the order of files.
func convertBatch(ctx context.Context, conv *md2html.Converter, files []FileToConvert, page *standalonePage, workers int) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var g errgroup.Group
	g.SetLimit(md2html.ResolveWorkers(workers))
	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = ConversionResult{InputPath: f.InputPath, Err: err}
				return nil
			}
			results[i] = convertFile(ctx, conv, f, page)
			return nil
		})
	}
	_ = g.Wait() // workers record failures in results

	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv *md2html.Converter, f FileToConvert, page *standalonePage) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadMarkdown, err))
	}

	slug := strings.TrimSuffix(filepath.Base(f.InputPath), filepath.Ext(f.InputPath))
	res, err := conv.Render(ctx, md2html.Document{Slug: slug, Source: string(content)})
	if err != nil {
		return fail(err)
	}

	out := []byte(res.HTML)
	if page != nil {
		if out, err = page.render(res); err != nil {
			return fail(err)
		}
	}

	if err := fileutil.WriteFile(f.OutputPath, out); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	result.Duration = time.Since(start)
	return result
}

// printResults reports every conversion and returns the failure count.
func printResults(results []ConversionResult, common commonFlags, env *Environment, log *logger.Logger) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			log.FileError(r.InputPath, withHint(r.Err))
			continue
		}

		succeeded++
		switch {
		case common.quiet:
		case common.verbose:
			log.FileConverted(r.InputPath, r.OutputPath, r.Duration)
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !common.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
