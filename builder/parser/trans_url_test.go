package parser

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

func TestIsExternal(t *testing.T) {
	tests := []struct {
		href string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com/a", true},
		{"//cdn.example.com/x.js", true},
		{"/media/logo.png", false},
		{"2021/01/post/", false},
	}
	for _, tt := range tests {
		if got := isExternal(tt.href); got != tt.want {
			t.Errorf("isExternal(%q) = %v, want %v", tt.href, got, tt.want)
		}
	}
}

func TestURLTransformer(t *testing.T) {
	tests := []struct {
		name         string
		baseURL      string
		input        string
		expectedLink string
		external     bool
	}{
		{
			name:         "root relative link gets site url",
			baseURL:      "https://example.com",
			input:        "[Media](/media/a.pdf)",
			expectedLink: "https://example.com/media/a.pdf",
		},
		{
			name:         "root relative link without site url",
			input:        "[Media](/media/a.pdf)",
			expectedLink: "/media/a.pdf",
		},
		{
			name:         "dot prefix removed",
			baseURL:      "https://example.com",
			input:        "[Sibling](./other.html)",
			expectedLink: "other.html",
		},
		{
			name:         "external link kept",
			baseURL:      "https://example.com",
			input:        "[Go](https://go.dev)",
			expectedLink: "https://go.dev",
			external:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := goldmark.New(
				goldmark.WithParserOptions(
					parser.WithASTTransformers(
						util.Prioritized(&URLTransformer{BaseURL: tt.baseURL}, 100),
					),
				),
			)

			reader := text.NewReader([]byte(tt.input))
			doc := md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

			var link *ast.Link
			if err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if l, ok := n.(*ast.Link); ok && entering {
					link = l
				}
				return ast.WalkContinue, nil
			}); err != nil {
				t.Fatalf("ast.Walk failed: %v", err)
			}
			if link == nil {
				t.Fatal("no link found")
			}

			if got := string(link.Destination); got != tt.expectedLink {
				t.Errorf("link destination = %q, want %q", got, tt.expectedLink)
			}
			_, hasTarget := link.AttributeString("target")
			if hasTarget != tt.external {
				t.Errorf("target attribute present = %v, want %v", hasTarget, tt.external)
			}
		})
	}
}
