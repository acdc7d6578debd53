// Package frontmatter splits YAML front matter from a Markdown post.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jtgis/go-md2html/internal/yamlutil"
)

// Sentinel errors for front matter parsing.
var (
	ErrUnterminated = errors.New("front matter has no closing ---")
	ErrInvalid      = errors.New("invalid front matter")
)

const delimiter = "---"

// Meta is the metadata a post may declare. Unknown keys are ignored.
type Meta struct {
	Title       string `yaml:"title"`
	Date        Date   `yaml:"date"`
	Tags        Tags   `yaml:"tags"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Draft       bool   `yaml:"draft"`
}

// Date is the author's date text. YAML timestamps are accepted and kept
// in ISO form; interpretation is left to dateutil.
type Date string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (d *Date) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*d = ""
	case string:
		*d = Date(strings.TrimSpace(v))
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 {
			*d = Date(v.Format("2006-01-02"))
		} else {
			*d = Date(v.Format(time.RFC3339))
		}
	default:
		*d = Date(fmt.Sprint(v))
	}
	return nil
}

// Tags accepts a YAML list or a comma separated string.
type Tags []string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (t *Tags) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}

	var items []string
	switch v := raw.(type) {
	case nil:
	case string:
		items = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			items = append(items, fmt.Sprint(item))
		}
	default:
		items = []string{fmt.Sprint(v)}
	}

	out := make(Tags, 0, len(items))
	for _, item := range items {
		if item = strings.Trim(strings.TrimSpace(item), `"'`); item != "" {
			out = append(out, item)
		}
	}
	*t = out
	return nil
}

// Split separates front matter from the body. Content whose first line is
// not "---" has no front matter and is returned whole with a zero Meta.
// The body is returned without the blank lines that follow the block.
func Split(content string) (Meta, string, error) {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	first, rest, found := strings.Cut(content, "\n")
	if strings.TrimSpace(first) != delimiter {
		return Meta{}, content, nil
	}
	if !found {
		return Meta{}, "", ErrUnterminated
	}

	lines := strings.Split(rest, "\n")
	end := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return Meta{}, "", ErrUnterminated
	}

	var meta Meta
	block := strings.Join(lines[:end], "\n")
	if strings.TrimSpace(block) != "" {
		if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
			return Meta{}, "", fmt.Errorf("%w: %v", ErrInvalid, err)
		}
	}

	body := strings.Join(lines[end+1:], "\n")
	return meta, strings.TrimLeft(body, "\n"), nil
}

// TitleFromSlug derives a display title from a file slug: "my-first-post"
// becomes "my first post".
func TitleFromSlug(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
