// Package pipeline implements the Markdown-to-HTML rendering engines.
//
// LiteRenderer is a staged rewriter: the source is normalized, code regions
// are lifted into a per-call placeholder table, a fixed sequence of regex
// passes rewrites tables, inline syntax, headings, breaks, quotes and lists,
// loose text is wrapped in paragraphs and the code is restored, escaped, last.
// No syntax tree is built and no pass ever fails.
//
// GoldmarkRenderer covers full GitHub Flavored Markdown with optional chroma
// highlighting, and post-processes its output with RewriteImagePaths so both
// engines agree on image locations and link targets.
//
// Neither engine sanitizes. Raw HTML and javascript: URLs written by the
// author pass through the lite engine untouched; only text placed inside
// attributes and code is escaped. Render untrusted input elsewhere.
package pipeline
