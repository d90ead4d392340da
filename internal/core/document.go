package core

import (
	"bytes"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"hkgbuild/internal/types"
)

// Document is a parsed index page with a few typed queries over its tree.
type Document struct {
	url  string
	root *html.Node
}

// ParseDocument parses the decoded page text. The parser is lenient, so an
// error here means the reader failed rather than the markup being odd.
func ParseDocument(doc types.IndexDocument) (*Document, error) {
	root, err := html.Parse(strings.NewReader(doc.Content))
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse index page").
			WithCause(err)
	}
	return &Document{url: doc.URL, root: root}, nil
}

func (d *Document) URL() string {
	return d.url
}

// FindHeaderCell returns the first <th> whose string content equals label
// exactly.
func (d *Document) FindHeaderCell(label string) (*html.Node, bool) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Th {
			return true
		}
		if text, ok := StringContent(n); ok && text == label {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

// NextCell returns the element following n, skipping whitespace and
// comments in between.
func NextCell(n *html.Node) *html.Node {
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		switch sib.Type {
		case html.ElementNode:
			return sib
		case html.CommentNode:
			continue
		case html.TextNode:
			if strings.TrimSpace(sib.Data) != "" {
				return nil
			}
		}
	}
	return nil
}

// FirstEmphasized returns the first <b> or <strong> below n.
func FirstEmphasized(n *html.Node) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if c != n && c.Type == html.ElementNode && (c.DataAtom == atom.B || c.DataAtom == atom.Strong) {
			found = c
			return false
		}
		return true
	})
	return found
}

// InnerMarkup serializes the children of n.
func InnerMarkup(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to render cell markup").
				WithCause(err)
		}
	}
	return buf.String(), nil
}

// Text concatenates every text node below n.
func Text(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
		return true
	})
	return sb.String()
}

// StringContent returns the single string held by n. A node with exactly
// one child yields that child's string; any other shape has no single
// string and ok is false.
func StringContent(n *html.Node) (string, bool) {
	if n.FirstChild == nil || n.FirstChild != n.LastChild {
		return "", false
	}
	child := n.FirstChild
	switch child.Type {
	case html.TextNode:
		return child.Data, true
	case html.ElementNode:
		return StringContent(child)
	default:
		return "", false
	}
}

// FragmentText parses a markup fragment as cell content and returns its
// text.
func FragmentText(fragment string) (string, error) {
	cell := &html.Node{Type: html.ElementNode, Data: "td", DataAtom: atom.Td}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), cell)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse dependency markup").
			WithCause(err)
	}
	var sb strings.Builder
	for _, node := range nodes {
		sb.WriteString(Text(node))
	}
	return sb.String(), nil
}

// walk visits n and its descendants depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}
