package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jtgis/go-md2html/internal/config"
)

var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

const htmlExt = ".html"

var markdownExts = map[string]bool{".md": true, ".markdown": true}

// FileToConvert pairs a Markdown source with the HTML file it produces.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the Markdown files under inputPath. A single file
// must carry a Markdown extension; a directory is walked recursively,
// skipping hidden directories and non-Markdown files.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, ""),
		}}, nil
	}

	var files []FileToConvert
	walk := func(path string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return fmt.Errorf("scanning %s: %w", path, err)
		case d.IsDir() && path != inputPath && strings.HasPrefix(d.Name(), "."):
			return filepath.SkipDir
		case d.IsDir() || !isMarkdown(path):
			return nil
		}
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath),
		})
		return nil
	}
	if err := filepath.WalkDir(inputPath, walk); err != nil {
		return nil, err
	}
	return files, nil
}

// resolveOutputPath maps a source file to its .html path. Without an
// output the page lands beside its source; an output ending in .html is
// the page itself; otherwise the tree below baseDir is recreated under
// output.
func resolveOutputPath(inputPath, output, baseDir string) string {
	name := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + htmlExt

	switch {
	case output == "":
		return filepath.Join(filepath.Dir(inputPath), name)
	case strings.HasSuffix(output, htmlExt):
		return output
	}

	sub := "."
	if baseDir != "" {
		if rel, err := filepath.Rel(baseDir, filepath.Dir(inputPath)); err == nil {
			sub = rel
		}
	}
	return filepath.Join(output, sub, name)
}

func isMarkdown(path string) bool {
	return markdownExts[strings.ToLower(filepath.Ext(path))]
}

func validateMarkdownExtension(path string) error {
	if isMarkdown(path) {
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// validateWorkers accepts 0 (auto) through config.MaxWorkers.
func validateWorkers(n int) error {
	if n < 0 || n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (want 0 for auto, or 1..%d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
