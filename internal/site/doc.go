// Package site builds a static blog from a directory of Markdown posts.
//
// Posts are indexed from a JSON manifest (posts.json) when one exists, or
// discovered from the front matter of every <slug>.md file otherwise. The
// Builder renders each post concurrently and writes:
//
//	{output}/
//	├── index.html                 # newest posts, page 1
//	├── page/{n}/index.html        # further pages
//	├── posts/{slug}.html          # one page per post, next to its images
//	├── tags/{tag}/index.html
//	├── archive/{yyyy}/index.html
//	├── archive/{yyyy}/{mm}/index.html
//	├── assets/style.css
//	├── assets/highlight.css       # goldmark engine with a highlight style
//	└── posts.json                 # manifest of the published posts
//
// A post that fails to load or render is logged and left out; it does not
// stop the build.
package site
