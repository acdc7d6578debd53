// Package logger wraps charm/log with the events the converter and the
// site builder report.
package logger

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at the given level.
func New(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard, log.FatalLevel)
}

// ParseLevel maps a config level name to a charm level. An empty name
// means info.
func ParseLevel(name string) (log.Level, error) {
	if name == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(name))
}

// FileConverted logs a converted Markdown file.
func (l *Logger) FileConverted(source, dest string, duration time.Duration) {
	l.Info("file converted",
		"source", source,
		"dest", dest,
		"duration", duration.Round(time.Millisecond))
}

// FileError logs an error for a specific file.
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// PostRendered logs a post page written by the site builder.
func (l *Logger) PostRendered(slug, dest string) {
	l.Debug("post rendered",
		"slug", slug,
		"dest", dest)
}

// PostSkipped logs a post left out of the build.
func (l *Logger) PostSkipped(slug, reason string) {
	l.Debug("post skipped",
		"slug", slug,
		"reason", reason)
}

// BuildStarted logs the start of a site build.
func (l *Logger) BuildStarted(postsDir, outputDir string, posts int) {
	l.Info("build started",
		"posts_dir", postsDir,
		"output_dir", outputDir,
		"posts", posts)
}

// BuildCompleted logs the end of a site build.
func (l *Logger) BuildCompleted(pages, failed int, duration time.Duration) {
	l.Info("build completed",
		"pages", pages,
		"failed", failed,
		"duration", duration.Round(time.Millisecond))
}

// ConfigLoaded logs the configuration in effect.
func (l *Logger) ConfigLoaded(source, engine string) {
	l.Debug("config loaded",
		"source", source,
		"engine", engine)
}
