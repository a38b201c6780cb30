// Package parser turns source files into content records: it splits the
// front matter from the body, runs the body through a text processor and
// derives the slug, URL and date fields.
package parser

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/config"
	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/typography"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// DelimiterWidth is the number of dashes that open a delimiter line.
const DelimiterWidth = 79

var delimiter = bytes.Repeat([]byte("-"), DelimiterWidth)

type Parser struct {
	fs         afero.Fs
	cfg        *config.Config
	mode       string
	processors map[string]Processor

	rst         *RST
	rstLookPath LookPathFunc
	rstRunner   CommandRunner
}

type Option func(*Parser)

// WithRSTCommand replaces how the docutils command is found and run.
func WithRSTCommand(lookPath LookPathFunc, run CommandRunner) Option {
	return func(p *Parser) {
		p.rstLookPath = lookPath
		p.rstRunner = run
	}
}

// New validates the configured text processor. Unknown names and a
// missing docutils install for rst fail here, before any file is read.
func New(fs afero.Fs, cfg *config.Config, opts ...Option) (*Parser, error) {
	p := &Parser{
		fs:   fs,
		cfg:  cfg,
		mode: strings.ToLower(strings.TrimSpace(cfg.TextProcessor)),
	}
	for _, opt := range opts {
		opt(p)
	}

	switch p.mode {
	case ProcessorMarkdown, ProcessorTextile, ProcessorHTML, ProcessorExtension:
	case ProcessorRST:
		if _, err := p.rstConverter(); err != nil {
			return nil, err
		}
	default:
		return nil, &errs.UnknownTextProcessorError{Name: cfg.TextProcessor}
	}

	p.processors = newProcessors(cfg)
	return p, nil
}

func (p *Parser) rstConverter() (*RST, error) {
	if p.rst == nil {
		rst, err := NewRST(p.cfg.InitialHeaderLevel, p.rstLookPath, p.rstRunner)
		if err != nil {
			return nil, err
		}
		p.rst = rst
	}
	return p.rst, nil
}

// Parse reads one source file into a record of the given kind.
func (p *Parser) Parse(path string, kind models.Kind) (*models.Record, error) {
	raw, err := afero.ReadFile(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return p.ParseBytes(path, raw, kind)
}

// ParseBytes builds a record from file contents already in memory.
func (p *Parser) ParseBytes(path string, raw []byte, kind models.Kind) (*models.Record, error) {
	name := p.mode
	if name == ProcessorExtension {
		var err error
		if name, err = ProcessorForFile(path); err != nil {
			return nil, err
		}
	}

	var (
		fm     *models.FrontMatter
		body   string
		result *Result
	)

	if name == ProcessorRST {
		rst, err := p.rstConverter()
		if err != nil {
			return nil, err
		}
		var content string
		fm, content, err = rst.Convert(raw)
		if err != nil {
			return nil, errs.Wrap(path, "failed to convert reStructuredText", err)
		}
		body = string(raw)
		result = &Result{HTML: content}
	} else {
		front, text := SplitFrontMatter(raw)
		var err error
		if fm, err = models.DecodeFrontMatter(front); err != nil {
			return nil, errs.Wrap(path, "invalid front matter", err)
		}
		body = string(text)
		proc := p.processors[name]
		if result, err = proc.Convert(text); err != nil {
			return nil, errs.Wrap(path, "failed to convert "+proc.Name(), err)
		}
	}

	content, err := typography.Apply(result.HTML, typography.Options{
		// goldmark's typographer already handled markdown punctuation.
		Punctuation: p.cfg.Punctuation && name != ProcessorMarkdown,
		Ligatures:   p.cfg.Ligatures,
	})
	if err != nil {
		return nil, errs.Wrap(path, "failed to apply typography", err)
	}

	rec := &models.Record{
		Kind:        kind,
		SourcePath:  absPath(path),
		Filename:    filepath.Base(path),
		FrontMatter: fm,
		Raw:         raw,
		Hash:        utils.HashContent(raw),
		Body:        body,
		Content:     template.HTML(content),
		TOC:         result.TOC,
	}
	if err := p.derive(path, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// SplitFrontMatter separates the block between the first two delimiter
// lines from the rest of the file. Text before the first delimiter and
// after the second is body; further delimiter lines are dropped.
func SplitFrontMatter(raw []byte) (front, body []byte) {
	seen := 0
	for _, line := range bytes.SplitAfter(raw, []byte("\n")) {
		if bytes.HasPrefix(line, delimiter) {
			seen++
			continue
		}
		if seen == 1 {
			front = append(front, line...)
		} else {
			body = append(body, line...)
		}
	}
	return front, body
}

func (p *Parser) derive(path string, rec *models.Record) error {
	fm := rec.FrontMatter

	rec.Title = strings.TrimSpace(fm.String("title"))
	if rec.Title == "" {
		return errs.Field(path, "title", "missing required field")
	}

	rec.Slug = strings.TrimSpace(fm.String("slug"))
	if rec.Slug == "" {
		rec.Slug = utils.Slugify(rec.Title)
	}
	if !utils.ValidSlug(rec.Slug) {
		return errs.Field(path, "slug", fmt.Sprintf("%q is not a valid path segment", rec.Slug))
	}

	rec.Author = fm.String("author")
	if rec.Author == "" {
		rec.Author = p.cfg.Author
	}
	rec.Template = strings.TrimSpace(fm.String("template"))

	names := fm.Strings("categories")
	if len(names) == 0 && rec.IsPost() {
		names = []string{models.UncategorizedName}
	}
	for _, name := range names {
		rec.Categories = append(rec.Categories, models.Category{Name: name, Slug: utils.Slugify(name)})
	}

	if !rec.IsPost() {
		rec.URL = rec.Slug + ".html"
		rec.OutputPath = rec.URL
		return nil
	}

	value, _ := fm.Get("date")
	date, err := utils.ParseDate(value)
	if err != nil {
		return &errs.ConfigurationError{Path: path, Field: "date", Reason: err.Error()}
	}

	rec.Date = date
	rec.Year = date.Format("2006")
	rec.Month = date.Format("01")
	rec.Day = date.Format("02")
	rec.DisplayDate = utils.FormatDate(date, p.cfg.DateFormat)
	rec.AtomDate = utils.AtomDate(date)

	segments := []string{rec.Year, rec.Month}
	if p.cfg.URLIncludeDay {
		segments = append(segments, rec.Day)
	}
	segments = append(segments, rec.Slug)

	rec.URL = strings.Join(segments, "/")
	rec.OutputPath = rec.URL + ".html"
	if p.cfg.AppendSlash {
		rec.URL += "/"
	}
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
