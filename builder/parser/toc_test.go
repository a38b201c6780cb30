package parser

import (
	"reflect"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/Kush-Singh-26/agora/builder/config"
)

const tocSource = `
# Title
## Setup
### Install
#### Details
##### Deeper
###### Deepest
`

func tocTexts(md goldmark.Markdown, src string) []string {
	pc := parser.NewContext()
	md.Parser().Parse(text.NewReader([]byte(src)), parser.WithContext(pc))

	var out []string
	for _, entry := range GetTOC(pc) {
		out = append(out, entry.Text)
	}
	return out
}

func TestTOCTransformer_MinLevel(t *testing.T) {
	tests := []struct {
		name     string
		minLevel int
		want     []string
	}{
		{"unset falls back to h2", 0, []string{"Setup", "Install", "Details", "Deeper", "Deepest"}},
		{"h1 included", 1, []string{"Title", "Setup", "Install", "Details", "Deeper", "Deepest"}},
		{"h3 and below", 3, []string{"Install", "Details", "Deeper", "Deepest"}},
		{"h6 only", 6, []string{"Deepest"}},
		{"beyond h6", 7, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := goldmark.New(
				goldmark.WithParserOptions(
					parser.WithASTTransformers(
						util.Prioritized(&TOCTransformer{MinLevel: tt.minLevel}, 100),
					),
					parser.WithAutoHeadingID(),
				),
			)

			if got := tocTexts(md, tocSource); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TOC = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTOCTransformer_Entries(t *testing.T) {
	md := goldmark.New(
		goldmark.WithParserOptions(
			parser.WithASTTransformers(util.Prioritized(&TOCTransformer{MinLevel: 2}, 100)),
			parser.WithAutoHeadingID(),
		),
	)

	pc := parser.NewContext()
	md.Parser().Parse(text.NewReader([]byte(tocSource)), parser.WithContext(pc))
	toc := GetTOC(pc)
	if len(toc) == 0 {
		t.Fatal("empty TOC")
	}
	if toc[0].ID != "setup" || toc[0].Level != 2 {
		t.Errorf("first entry = %+v, want id setup at level 2", toc[0])
	}
	for _, entry := range toc {
		if entry.ID == "" {
			t.Errorf("entry %q has no id", entry.Text)
		}
	}
}

func TestNewMarkdown_InitialHeaderLevel(t *testing.T) {
	tests := []struct {
		level int
		want  []string
	}{
		{2, []string{"Setup", "Install", "Details", "Deeper", "Deepest"}},
		{4, []string{"Details", "Deeper", "Deepest"}},
	}

	for _, tt := range tests {
		cfg := config.New("/site")
		cfg.InitialHeaderLevel = tt.level

		if got := tocTexts(NewMarkdown(cfg), tocSource); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("initial_header_level %d: TOC = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestGetTOCNil(t *testing.T) {
	if toc := GetTOC(parser.NewContext()); toc != nil {
		t.Error("GetTOC should return nil when key is missing")
	}
}
