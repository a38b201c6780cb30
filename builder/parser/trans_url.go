package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// URLTransformer rewrites link and image destinations: root-relative paths
// get the site URL in front, and external links open in a new tab.
type URLTransformer struct {
	BaseURL string
}

func (t *URLTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch target := n.(type) {
		case *ast.Link:
			target.Destination = t.rewrite(target, target.Destination)
		case *ast.Image:
			target.Destination = t.rewrite(target, target.Destination)
		}
		return ast.WalkContinue, nil
	})
}

func (t *URLTransformer) rewrite(n ast.Node, dest []byte) []byte {
	href := string(dest)

	if isExternal(href) {
		if _, isLink := n.(*ast.Link); isLink {
			n.SetAttribute([]byte("target"), []byte("_blank"))
			n.SetAttribute([]byte("rel"), []byte("noopener noreferrer"))
		}
		return dest
	}

	if _, isImage := n.(*ast.Image); isImage {
		n.SetAttribute([]byte("loading"), []byte("lazy"))
	}

	href = strings.TrimPrefix(href, "./")
	if strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "//") && t.BaseURL != "" {
		href = t.BaseURL + href
	}
	return []byte(href)
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") ||
		strings.HasPrefix(href, "https://") ||
		strings.HasPrefix(href, "//")
}
