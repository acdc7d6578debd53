// Package md2html converts Markdown to HTML fragments.
//
// # Quick Start
//
//	html := md2html.Convert("# Hello\n\nWorld")
//	// <h1>Hello</h1>
//	// <p>World</p>
//
// A Converter holds validated options and is safe for concurrent use:
//
//	conv, err := md2html.NewConverter(
//	    md2html.WithImageBase("media/"),
//	    md2html.WithLineBreaks(md2html.LineBreaksBreak),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out := conv.Convert(markdown)
//
// # Engines
//
// The lite engine (default) rewrites a restricted dialect with ordered
// regular expression passes: headings, emphasis, links, images, fenced and
// inline code, blockquotes, lists, task lists, tables, strikethrough and
// autolinks. Code regions are swapped for placeholders before any other
// pass runs, so their content is never interpreted. It never fails.
//
// The goldmark engine renders full GitHub Flavored Markdown with footnotes
// and optional chroma highlighting, and applies the same image and link
// conventions to its output.
//
// # Documents
//
// Render accepts a post with optional YAML front matter and returns the
// HTML together with the metadata a listing page needs:
//
//	res, err := conv.Render(ctx, md2html.Document{Slug: "hello", Source: src})
//	fmt.Println(res.Title, res.Meta.Date, res.Excerpt, res.Image)
//
// # Trust Boundary
//
// Output is not sanitized. Raw HTML in the source passes through the lite
// engine untouched and link targets such as javascript: URLs are only
// attribute-escaped. Render trusted input, or sanitize the result before
// serving it to other users.
package md2html
