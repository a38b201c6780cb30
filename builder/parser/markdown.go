package parser

import (
	"bytes"

	chroma_html "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/gohugoio/hugo-goldmark-extensions/passthrough"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/Kush-Singh-26/agora/builder/config"
)

type markdownProcessor struct {
	md goldmark.Markdown
}

func newMarkdown(cfg *config.Config) *markdownProcessor {
	return &markdownProcessor{md: NewMarkdown(cfg)}
}

func (m *markdownProcessor) Name() string { return ProcessorMarkdown }

func (m *markdownProcessor) Convert(body []byte) (*Result, error) {
	var buf bytes.Buffer
	pc := parser.NewContext()
	if err := m.md.Convert(body, &buf, parser.WithContext(pc)); err != nil {
		return nil, err
	}
	return &Result{HTML: buf.String(), TOC: GetTOC(pc)}, nil
}

// NewMarkdown configures goldmark for site content. Math delimiters pass
// through untouched for client-side rendering.
func NewMarkdown(cfg *config.Config) goldmark.Markdown {
	extensions := []goldmark.Extender{
		extension.GFM,
		extension.Footnote,
		highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.HighlightStyle),
			highlighting.WithFormatOptions(
				chroma_html.WithClasses(!cfg.InlineCSS),
			),
		),
		passthrough.New(passthrough.Config{
			InlineDelimiters: []passthrough.Delimiters{{Open: "$", Close: "$"}, {Open: "\\(", Close: "\\)"}},
			BlockDelimiters:  []passthrough.Delimiters{{Open: "$$", Close: "$$"}, {Open: "\\[", Close: "\\]"}},
		}),
	}
	if cfg.Punctuation {
		extensions = append(extensions, extension.Typographer)
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(&URLTransformer{BaseURL: cfg.BaseURL()}, 100),
				util.Prioritized(&TOCTransformer{MinLevel: cfg.InitialHeaderLevel}, 200),
			),
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
}
