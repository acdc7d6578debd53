package assets

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/jtgis/go-md2html/internal/fileutil"
)

// Template file names inside a template set directory.
const (
	LayoutFile = "layout.html"
	PostFile   = "post.html"
	ListFile   = "list.html"
)

// templateFiles lists the files every template set must provide.
var templateFiles = []string{LayoutFile, PostFile, ListFile}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// TemplateSet holds the raw HTML templates for page generation.
// Layout is the page shell; Post and List override its "content" block.
type TemplateSet struct {
	Name   string // Identifier (name or directory path)
	Layout string
	Post   string
	List   string
}

// Templates is a parsed TemplateSet, one executable template per page kind.
type Templates struct {
	page *template.Template
	post *template.Template
	list *template.Template
}

// readTemplateSet assembles a TemplateSet from read, which returns the
// content of one file of the set.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	contents := make(map[string]string, len(templateFiles))
	var missing []string

	for _, file := range templateFiles {
		data, err := read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, file)
				continue
			}
			return nil, fmt.Errorf("%w: reading %s: %v", ErrAssetRead, file, err)
		}
		contents[file] = string(data)
	}

	switch {
	case len(missing) == len(templateFiles):
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	case len(missing) > 0:
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, strings.Join(missing, ", "))
	}

	return &TemplateSet{
		Name:   name,
		Layout: contents[LayoutFile],
		Post:   contents[PostFile],
		List:   contents[ListFile],
	}, nil
}

// Parse compiles the set. The layout alone renders plain pages; post and
// list pages are the layout with their "content" block replaced.
func (ts *TemplateSet) Parse() (*Templates, error) {
	base, err := template.New(LayoutFile).Funcs(FuncMap()).Parse(ts.Layout)
	if err != nil {
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, ts.Name, LayoutFile, err)
	}

	overlay := func(file, src string) (*template.Template, error) {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, ts.Name, file, err)
		}
		if _, err := clone.New(file).Parse(src); err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %v", ErrTemplateParse, ts.Name, file, err)
		}
		return clone, nil
	}

	post, err := overlay(PostFile, ts.Post)
	if err != nil {
		return nil, err
	}
	list, err := overlay(ListFile, ts.List)
	if err != nil {
		return nil, err
	}

	return &Templates{page: base, post: post, list: list}, nil
}

// ExecutePage writes a plain page: the layout with data.Content as body.
func (t *Templates) ExecutePage(w io.Writer, data *PageData) error {
	return t.page.ExecuteTemplate(w, LayoutFile, data)
}

// ExecutePost writes a single post page.
func (t *Templates) ExecutePost(w io.Writer, data *PageData) error {
	return t.post.ExecuteTemplate(w, LayoutFile, data)
}

// ExecuteList writes an index, tag or archive page.
func (t *Templates) ExecuteList(w io.Writer, data *PageData) error {
	return t.list.ExecuteTemplate(w, LayoutFile, data)
}

// FuncMap returns the helpers available to templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"rel": Rel,
	}
}

// Rel prefixes a site-relative target with root, the path from the current
// page back to the site root. Absolute URLs and root-anchored paths are
// returned unchanged.
func Rel(root, target string) string {
	if target == "" || strings.HasPrefix(target, "/") || strings.HasPrefix(target, "#") || fileutil.IsAbsoluteURL(target) {
		return target
	}
	return root + target
}
