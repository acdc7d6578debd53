package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteImagePaths applies the lite engine's conventions to an HTML
// fragment produced elsewhere:
//   - img[src]: relative sources are rebased onto base (see ResolveImageSrc)
//   - img: gets the max-width style when it has none
//   - a[href]: non-anchor links open in a new tab with noopener
//
// An empty fragment is returned unchanged.
func RewriteImagePaths(fragment, base string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return fragment, nil
	}

	root, err := parseFragment(fragment)
	if err != nil {
		return "", err
	}
	rewriteNode(root, base)
	return renderFragment(root)
}

// parseFragment parses HTML with a body context to avoid an <html> wrapper
// and hangs the resulting nodes under a single container.
func parseFragment(content string) (*html.Node, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, nil
}

// renderFragment renders only the container's children.
func renderFragment(root *html.Node) (string, error) {
	var buf strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, base string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			if src, ok := getAttr(n, "src"); ok {
				setAttr(n, "src", ResolveImageSrc(src, base))
			}
			if _, ok := getAttr(n, "style"); !ok {
				setAttr(n, "style", "max-width:100%;")
			}
		case atom.A:
			if href, ok := getAttr(n, "href"); ok && !strings.HasPrefix(href, "#") {
				setAttr(n, "target", "_blank")
				setAttr(n, "rel", "noopener noreferrer")
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, base)
	}
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
