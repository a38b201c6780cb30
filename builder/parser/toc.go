package parser

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/Kush-Singh-26/agora/builder/models"
)

var tocKey = parser.NewContextKey()

func GetTOC(pc parser.Context) []models.TOCEntry {
	if v := pc.Get(tocKey); v != nil {
		return v.([]models.TOCEntry)
	}
	return nil
}

// TOCTransformer records every heading from MinLevel down to h6 that
// carries an id.
type TOCTransformer struct {
	MinLevel int
}

func (t *TOCTransformer) Transform(node *ast.Document, reader text.Reader, pc parser.Context) {
	var toc []models.TOCEntry
	minLevel := t.MinLevel
	if minLevel < 1 {
		minLevel = 2
	}

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindHeading {
			return ast.WalkContinue, nil
		}

		heading := n.(*ast.Heading)
		if heading.Level < minLevel || heading.Level > 6 {
			return ast.WalkContinue, nil
		}

		var headerText strings.Builder
		_ = ast.Walk(heading, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering && child.Kind() == ast.KindText {
				headerText.Write(child.(*ast.Text).Segment.Value(reader.Source()))
			}
			return ast.WalkContinue, nil
		})

		if id, ok := heading.AttributeString("id"); ok {
			if b, ok := id.([]byte); ok {
				toc = append(toc, models.TOCEntry{
					ID:    string(b),
					Text:  headerText.String(),
					Level: heading.Level,
				})
			}
		}
		return ast.WalkContinue, nil
	})

	pc.Set(tocKey, toc)
}
