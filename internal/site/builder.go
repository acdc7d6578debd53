package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	md2html "github.com/jtgis/go-md2html"
	"github.com/jtgis/go-md2html/internal/assets"
	"github.com/jtgis/go-md2html/internal/dateutil"
	"github.com/jtgis/go-md2html/internal/fileutil"
	"github.com/jtgis/go-md2html/internal/logger"
)

// Site-relative locations.
const (
	postsURLDir      = "posts"
	styleStylesheet  = "assets/style.css"
	manifestFileName = "posts.json"
)

// RenderOptions selects how post bodies are converted.
type RenderOptions struct {
	Engine            md2html.Engine
	LineBreaks        md2html.LineBreaks
	DisableInlineCode bool
	Highlight         string // chroma style, goldmark engine only
}

// Options configures a Builder.
type Options struct {
	PostsDir        string
	OutputDir       string
	Manifest        string // JSON post index; empty discovers posts from front matter
	RequireManifest bool   // a missing Manifest fails instead of falling back to discovery

	Title         string
	Description   string
	Lang          string
	PerPage       int
	DateFormat    string
	Workers       int
	IncludeDrafts bool

	Style       string // stylesheet name, default "default"
	TemplateSet string // template set name, default "default"
	Render      RenderOptions

	Now func() time.Time
}

// Stats summarizes a build.
type Stats struct {
	Posts   int // post pages written
	Pages   int // all pages written
	Failed  int // posts that could not be rendered or written
	Skipped int // drafts left out
}

// Builder renders a posts directory into a static site.
type Builder struct {
	opts     Options
	src      Catalog
	conv     *md2html.Converter
	resolver *assets.AssetResolver
	tmpl     *assets.Templates
	log      *logger.Logger
}

// renderedPost is a post with its converted body.
type renderedPost struct {
	Post
	html    string
	excerpt string
}

// NewBuilder validates opts, loads the templates and prepares the
// converter. Post images are resolved relative to the post pages, which
// live in the posts directory of the output.
func NewBuilder(opts Options, resolver *assets.AssetResolver, log *logger.Logger) (*Builder, error) {
	if log == nil {
		log = logger.Discard()
	}
	if resolver == nil {
		var err error
		if resolver, err = assets.NewAssetResolver(""); err != nil {
			return nil, err
		}
	}
	if opts.OutputDir == "" {
		return nil, errors.New("output directory cannot be empty")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.DateFormat == "" {
		opts.DateFormat = dateutil.DefaultDisplayFormat
	}
	if _, err := dateutil.Layout(opts.DateFormat); err != nil {
		return nil, err
	}
	if opts.Style == "" {
		opts.Style = assets.DefaultStyleName
	}
	if opts.TemplateSet == "" {
		opts.TemplateSet = assets.DefaultTemplateSetName
	}

	src, err := NewDirSource(opts.PostsDir)
	if err != nil {
		return nil, err
	}

	convOpts := []md2html.Option{
		md2html.WithEngine(opts.Render.Engine),
		md2html.WithImageBase(""),
		md2html.WithInlineCode(!opts.Render.DisableInlineCode),
		md2html.WithLineBreaks(opts.Render.LineBreaks),
	}
	if opts.Render.Highlight != "" {
		convOpts = append(convOpts, md2html.WithHighlightStyle(opts.Render.Highlight))
	}
	conv, err := md2html.NewConverter(convOpts...)
	if err != nil {
		return nil, err
	}

	tmpl, err := resolver.Templates(opts.TemplateSet)
	if err != nil {
		return nil, err
	}

	return &Builder{
		opts:     opts,
		src:      src,
		conv:     conv,
		resolver: resolver,
		tmpl:     tmpl,
		log:      log,
	}, nil
}

// Build writes the site. Per-post failures are logged and counted; the
// returned error is reserved for failures that affect the whole site.
func (b *Builder) Build(ctx context.Context) (*Stats, error) {
	start := time.Now()

	posts, err := b.loadPosts(ctx)
	if err != nil {
		return nil, err
	}
	b.log.BuildStarted(b.opts.PostsDir, b.opts.OutputDir, len(posts))

	stats := &Stats{}
	var skipped, failed atomic.Int64

	rendered := make([]*renderedPost, len(posts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(md2html.ResolveWorkers(b.opts.Workers))
	for i, p := range posts {
		g.Go(func() error {
			if p.Draft && !b.opts.IncludeDrafts {
				skipped.Add(1)
				b.log.PostSkipped(p.Slug, "draft")
				return nil
			}
			rp, err := b.renderPost(gctx, p)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				failed.Add(1)
				b.log.FileError(p.Slug, err)
				return nil
			}
			if rp.Draft && !b.opts.IncludeDrafts {
				skipped.Add(1)
				b.log.PostSkipped(p.Slug, "draft")
				return nil
			}
			rendered[i] = rp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	published := make([]*renderedPost, 0, len(rendered))
	for _, rp := range rendered {
		if rp != nil {
			published = append(published, rp)
		}
	}
	sortRendered(published)

	index := make([]Post, len(published))
	for i, rp := range published {
		index[i] = rp.Post
	}
	sidebar := b.sidebarView(BuildSidebar(index))

	if err := b.writeAssets(); err != nil {
		return nil, err
	}

	var written atomic.Int64
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(md2html.ResolveWorkers(b.opts.Workers))
	for _, rp := range published {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rel := postURL(rp.Slug)
			if err := b.writePost(rel, rp, sidebar); err != nil {
				failed.Add(1)
				b.log.FileError(rp.Slug, err)
				return nil
			}
			written.Add(1)
			b.log.PostRendered(rp.Slug, filepath.Join(b.opts.OutputDir, filepath.FromSlash(rel)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	lists, err := b.writeLists(ctx, published, sidebar)
	if err != nil {
		return nil, err
	}

	if err := b.copyPostAssets(ctx); err != nil {
		return nil, err
	}
	if err := WriteManifest(filepath.Join(b.opts.OutputDir, manifestFileName), index); err != nil {
		return nil, err
	}

	stats.Posts = int(written.Load())
	stats.Pages = stats.Posts + lists
	stats.Failed = int(failed.Load())
	stats.Skipped = int(skipped.Load())
	b.log.BuildCompleted(stats.Pages, stats.Failed, time.Since(start))
	return stats, nil
}

// loadPosts reads the manifest, falling back to front matter discovery
// when it does not exist and is not required.
func (b *Builder) loadPosts(ctx context.Context) ([]Post, error) {
	now := b.opts.Now()
	if b.opts.Manifest != "" {
		posts, err := LoadManifest(b.opts.Manifest, now)
		if err == nil {
			return posts, nil
		}
		if !errors.Is(err, ErrManifestNotFound) || b.opts.RequireManifest {
			return nil, err
		}
		b.log.Debug("no manifest, reading front matter", "manifest", b.opts.Manifest)
	}
	return Discover(ctx, b.src, now, b.log.FileError)
}

// renderPost fetches and converts one post. Front matter fills the
// fields a manifest entry left empty.
func (b *Builder) renderPost(ctx context.Context, p Post) (*renderedPost, error) {
	content, err := b.src.Fetch(ctx, p.Slug)
	if err != nil {
		return nil, err
	}
	res, err := b.conv.Render(ctx, md2html.Document{Slug: p.Slug, Source: content})
	if err != nil {
		return nil, err
	}

	if len(p.Tags) == 0 {
		p.Tags = res.Meta.Tags
	}
	if p.Description == "" {
		p.Description = res.Meta.Description
	}
	if p.Image == "" {
		p.Image = res.Image
	}
	p.Draft = p.Draft || res.Meta.Draft

	return &renderedPost{Post: p, html: res.HTML, excerpt: res.Excerpt}, nil
}

func sortRendered(posts []*renderedPost) {
	flat := make([]Post, len(posts))
	bySlug := make(map[string]*renderedPost, len(posts))
	for i, rp := range posts {
		flat[i] = rp.Post
		bySlug[rp.Slug] = rp
	}
	SortByDateDesc(flat)
	for i, p := range flat {
		posts[i] = bySlug[p.Slug]
	}
}

// writeAssets writes the stylesheet and, when enabled, the highlighting CSS.
func (b *Builder) writeAssets() error {
	css, err := b.resolver.LoadStyle(b.opts.Style)
	if err != nil {
		return err
	}
	if err := b.writeFile(styleStylesheet, []byte(css)); err != nil {
		return err
	}

	if !b.highlighting() {
		return nil
	}
	hl, err := assets.HighlightCSS(b.opts.Render.Highlight)
	if err != nil {
		return err
	}
	return b.writeFile(assets.HighlightStylesheet, []byte(hl))
}

func (b *Builder) highlighting() bool {
	return b.conv.Engine() == md2html.EngineGoldmark && b.opts.Render.Highlight != ""
}

func (b *Builder) stylesheets() []string {
	sheets := []string{styleStylesheet}
	if b.highlighting() {
		sheets = append(sheets, assets.HighlightStylesheet)
	}
	return sheets
}

// page returns the shared fields of a page at site-relative path rel.
func (b *Builder) page(rel string, sidebar *assets.Sidebar) *assets.PageData {
	return &assets.PageData{
		Lang:        b.opts.Lang,
		SiteTitle:   b.opts.Title,
		Description: b.opts.Description,
		Root:        rootFor(rel),
		Stylesheets: b.stylesheets(),
		Sidebar:     sidebar,
	}
}

func (b *Builder) writePost(rel string, rp *renderedPost, sidebar *assets.Sidebar) error {
	data := b.page(rel, sidebar)
	view := b.postView(rp)
	data.Title = rp.Title
	if rp.Description != "" {
		data.Description = rp.Description
	}
	data.Post = &view
	data.Content = template.HTML(rp.html) // #nosec G203 -- converter output, see package md2html trust boundary

	var buf bytes.Buffer
	if err := b.tmpl.ExecutePost(&buf, data); err != nil {
		return fmt.Errorf("executing post template: %w", err)
	}
	return b.writeFile(rel, buf.Bytes())
}

// listPage is one list page to write.
type listPage struct {
	rel        string
	heading    string
	posts      []*renderedPost
	pagination *assets.Pagination
}

// writeLists writes index, tag and archive pages and returns how many.
func (b *Builder) writeLists(ctx context.Context, posts []*renderedPost, sidebar *assets.Sidebar) (int, error) {
	var pages []listPage

	flat := make([]Post, len(posts))
	bySlug := make(map[string]*renderedPost, len(posts))
	for i, rp := range posts {
		flat[i] = rp.Post
		bySlug[rp.Slug] = rp
	}
	pick := func(list []Post) []*renderedPost {
		out := make([]*renderedPost, len(list))
		for i, p := range list {
			out[i] = bySlug[p.Slug]
		}
		return out
	}

	total := Paginate(flat, 1, b.opts.PerPage).Pages
	for n := 1; n <= total; n++ {
		pg := Paginate(flat, n, b.opts.PerPage)
		pages = append(pages, listPage{
			rel:        indexURL(n),
			posts:      pick(pg.Posts),
			pagination: paginationView(pg),
		})
	}

	for _, group := range groupByTag(flat) {
		pages = append(pages, listPage{
			rel:     tagURL(group.name),
			heading: "#" + group.name,
			posts:   pick(group.posts),
		})
	}

	for _, year := range BuildSidebar(flat).Archive {
		pages = append(pages, listPage{
			rel:     yearURL(year.Year),
			heading: strconv.Itoa(year.Year),
			posts:   pick(Filter{Year: year.Year}.Apply(flat)),
		})
		for _, m := range year.Months {
			pages = append(pages, listPage{
				rel:     monthURL(year.Year, m.Month),
				heading: m.Name + " " + strconv.Itoa(year.Year),
				posts:   pick(Filter{Year: year.Year, Month: m.Month}.Apply(flat)),
			})
		}
	}

	for _, lp := range pages {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		data := b.page(lp.rel, sidebar)
		data.Heading = lp.heading
		data.Title = lp.heading
		data.Pagination = lp.pagination
		data.Posts = make([]assets.PostView, len(lp.posts))
		for i, rp := range lp.posts {
			data.Posts[i] = b.postView(rp)
		}

		var buf bytes.Buffer
		if err := b.tmpl.ExecuteList(&buf, data); err != nil {
			return 0, fmt.Errorf("executing list template for %s: %w", lp.rel, err)
		}
		if err := b.writeFile(lp.rel, buf.Bytes()); err != nil {
			return 0, err
		}
	}
	return len(pages), nil
}

// tagGroup is the posts sharing one tag directory.
type tagGroup struct {
	name  string
	posts []Post
}

// groupByTag groups posts by tag slug, keeping the first spelling seen.
func groupByTag(posts []Post) []tagGroup {
	var groups []tagGroup
	index := make(map[string]int)
	for _, p := range posts {
		seen := make(map[string]bool)
		for _, t := range p.Tags {
			slug := tagSlug(t)
			if seen[slug] {
				continue
			}
			seen[slug] = true
			i, ok := index[slug]
			if !ok {
				i = len(groups)
				index[slug] = i
				groups = append(groups, tagGroup{name: t})
			}
			groups[i].posts = append(groups[i].posts, p)
		}
	}
	return groups
}

func (b *Builder) postView(rp *renderedPost) assets.PostView {
	view := assets.PostView{
		Slug:        rp.Slug,
		Title:       rp.Title,
		URL:         postURL(rp.Slug),
		Description: rp.Description,
		Excerpt:     rp.excerpt,
		Image:       siteImage(rp.Image),
	}
	if !rp.Published.IsZero() {
		view.Date, _ = dateutil.Format(rp.Published, b.opts.DateFormat)
	}
	for _, t := range rp.Tags {
		view.Tags = append(view.Tags, assets.Link{Name: t, URL: tagURL(t)})
	}
	return view
}

func (b *Builder) sidebarView(sb Sidebar) *assets.Sidebar {
	view := &assets.Sidebar{}
	for _, t := range sb.Tags {
		view.Tags = append(view.Tags, assets.Link{Name: t.Name, URL: tagURL(t.Name), Count: t.Count})
	}
	for _, y := range sb.Archive {
		year := assets.ArchiveYear{Year: y.Year, URL: yearURL(y.Year), Count: y.Count}
		for _, m := range y.Months {
			year.Months = append(year.Months, assets.Link{
				Name:  m.Name,
				URL:   monthURL(y.Year, m.Month),
				Count: m.Count,
			})
		}
		view.Archive = append(view.Archive, year)
	}
	return view
}

func paginationView(pg Page) *assets.Pagination {
	view := &assets.Pagination{Page: pg.Page, Pages: pg.Pages}
	if pg.Page > 1 {
		view.PrevURL = indexURL(pg.Page - 1)
	}
	if pg.Page < pg.Pages {
		view.NextURL = indexURL(pg.Page + 1)
	}
	for n := 1; n <= pg.Pages; n++ {
		link := assets.Link{Name: strconv.Itoa(n)}
		if n != pg.Page {
			link.URL = indexURL(n)
		}
		view.Links = append(view.Links, link)
	}
	return view
}

// copyPostAssets copies every non-Markdown file of the posts directory
// next to the post pages. Nothing is copied when the output posts
// directory is the source directory.
func (b *Builder) copyPostAssets(ctx context.Context) error {
	srcDir, err := filepath.Abs(b.opts.PostsDir)
	if err != nil {
		return err
	}
	outDir, err := filepath.Abs(b.opts.OutputDir)
	if err != nil {
		return err
	}
	dstDir := filepath.Join(outDir, postsURLDir)
	if srcDir == dstDir {
		return nil
	}

	return filepath.WalkDir(srcDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if strings.HasPrefix(d.Name(), ".") && p != srcDir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if p == outDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(p), MarkdownExt) {
			return nil
		}
		rel, err := filepath.Rel(srcDir, p)
		if err != nil {
			return err
		}
		return fileutil.CopyFile(p, filepath.Join(dstDir, rel))
	})
}

func (b *Builder) writeFile(rel string, data []byte) error {
	dest := filepath.Join(b.opts.OutputDir, filepath.FromSlash(rel))
	if err := fileutil.WriteFile(dest, data); err != nil {
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return nil
}

func postURL(slug string) string {
	return postsURLDir + "/" + slug + ".html"
}

func indexURL(page int) string {
	if page <= 1 {
		return "index.html"
	}
	return "page/" + strconv.Itoa(page) + "/index.html"
}

func tagURL(tag string) string {
	return "tags/" + tagSlug(tag) + "/index.html"
}

func yearURL(year int) string {
	return fmt.Sprintf("archive/%04d/index.html", year)
}

func monthURL(year, month int) string {
	return fmt.Sprintf("archive/%04d/%02d/index.html", year, month)
}

// rootFor returns the relative path from a page back to the site root.
func rootFor(rel string) string {
	return strings.Repeat("../", strings.Count(rel, "/"))
}

// siteImage makes a post image site-relative. Post images are written
// relative to the posts directory.
func siteImage(src string) string {
	if src == "" || strings.HasPrefix(src, "/") || fileutil.IsAbsoluteURL(src) {
		return src
	}
	if strings.HasPrefix(src, postsURLDir+"/") {
		return src
	}
	return path.Join(postsURLDir, src)
}

// tagSlug turns a tag into a directory name.
func tagSlug(tag string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(tag)) {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
		case strings.ContainsRune(`/\?#%:*"<>|.`, r) || r < ' ':
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "tag"
	}
	return b.String()
}
