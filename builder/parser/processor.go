package parser

import (
	"path/filepath"
	"strings"

	"github.com/Kush-Singh-26/agora/builder/config"
	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
)

const (
	ProcessorMarkdown  = "markdown"
	ProcessorTextile   = "textile"
	ProcessorHTML      = "html"
	ProcessorRST       = "rst"
	ProcessorExtension = "extension"
)

// Result is the output of a text processor.
type Result struct {
	HTML string
	TOC  []models.TOCEntry
}

// Processor converts a body to HTML.
type Processor interface {
	Name() string
	Convert(body []byte) (*Result, error)
}

var extensionProcessors = map[string]string{
	".md":       ProcessorMarkdown,
	".markdown": ProcessorMarkdown,
	".mkd":      ProcessorMarkdown,
	".textile":  ProcessorTextile,
	".html":     ProcessorHTML,
	".htm":      ProcessorHTML,
	".rst":      ProcessorRST,
}

// ProcessorForFile picks a processor name from the file extension.
func ProcessorForFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if name, ok := extensionProcessors[ext]; ok {
		return name, nil
	}
	return "", &errs.UnknownTextProcessorError{Name: ext, Path: path}
}

// newProcessors builds the generic processors. RST is handled separately
// because it owns the front matter too.
func newProcessors(cfg *config.Config) map[string]Processor {
	return map[string]Processor{
		ProcessorMarkdown: newMarkdown(cfg),
		ProcessorTextile:  textileProcessor{},
		ProcessorHTML:     htmlProcessor{},
	}
}

type htmlProcessor struct{}

func (htmlProcessor) Name() string { return ProcessorHTML }

func (htmlProcessor) Convert(body []byte) (*Result, error) {
	return &Result{HTML: string(body)}, nil
}

type textileProcessor struct{}

func (textileProcessor) Name() string { return ProcessorTextile }

func (textileProcessor) Convert(body []byte) (*Result, error) {
	return &Result{HTML: Textile(string(body))}, nil
}
