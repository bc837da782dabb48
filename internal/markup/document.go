package markup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrNotFound is returned when a selector matches nothing
var ErrNotFound = errors.New("element not found")

// Document is a parsed HTML document acting as the element provider
type Document struct {
	root *html.Node
}

// Element is a handle to one element of a Document
type Element struct {
	node *html.Node
}

// Parse reads an HTML document
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseFile reads an HTML document from path
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open markup: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Resolve returns the first element matching selector in document order
func (d *Document) Resolve(selector string) (*Element, error) {
	all, err := d.ResolveAll(selector)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return all[0], nil
}

// ResolveAll returns every element matching selector in document order
func (d *Document) ResolveAll(selector string) ([]*Element, error) {
	if strings.TrimSpace(selector) == "" {
		return nil, fmt.Errorf("empty selector")
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}

	nodes := sel.MatchAll(d.root)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, &Element{node: n})
	}
	return out, nil
}

// Tag returns the element's tag name
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns an attribute value, or "" when absent
func (e *Element) Attr(name string) string {
	return attr(e.node, name)
}

// Children returns the element children, skipping text and comments
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Element{node: c})
		}
	}
	return out
}

// Text returns the visible text with whitespace runs collapsed
func (e *Element) Text() string {
	var b strings.Builder
	collectText(e.node, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

// Lines returns the text of each block-level child on its own line, which
// keeps paragraphs apart when a slide is shown in full
func (e *Element) Lines() []string {
	var lines []string
	var inline strings.Builder

	flush := func() {
		if s := strings.Join(strings.Fields(inline.String()), " "); s != "" {
			lines = append(lines, s)
		}
		inline.Reset()
	}

	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && isBlock(c.Data) {
			flush()
			if s := (&Element{node: c}).Text(); s != "" {
				lines = append(lines, s)
			}
			continue
		}
		collectText(c, &inline)
	}
	flush()
	return lines
}

// Title returns data-title, else the first heading's text, else ""
func (e *Element) Title() string {
	if t := strings.TrimSpace(e.Attr("data-title")); t != "" {
		return t
	}
	var found string
	var walk func(n *html.Node) bool
	walk = func(n *html.Node) bool {
		if n.Type == html.ElementNode && isHeading(n.Data) {
			found = (&Element{node: n}).Text()
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(e.node)
	return found
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

func isHeading(tag string) bool {
	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "ul", "ol", "li", "blockquote", "pre", "section", "article",
		"header", "footer", "figure", "figcaption", "table", "tr":
		return true
	}
	return isHeading(tag)
}
