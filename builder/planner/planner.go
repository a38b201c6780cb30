// Package planner enumerates every output file of a build together with
// the template and context used to produce it.
package planner

import (
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/Kush-Singh-26/agora/builder/config"
	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/site"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Template names looked up in the layout directory.
const (
	TemplateIndex    = "index.html"
	TemplatePaged    = "index_paged.html"
	TemplateAtom     = "atom.html"
	TemplateSitemap  = "sitemap.html"
	TemplateCategory = "category.html"
	TemplateArchive  = "archive.html"
	TemplateSingle   = "single.html"
	TemplatePage     = "page.html"
)

type Kind int

const (
	KindIndex Kind = iota
	KindFeed
	KindSitemap
	KindCategory
	KindArchive
	KindPaged
	KindPost
	KindPage
)

var kindNames = [...]string{"index", "feed", "sitemap", "category", "archive", "paged", "post", "page"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Page is one planned output file. Path is slash-separated and relative
// to the deploy directory.
type Page struct {
	Kind     Kind
	Path     string
	Template string
	Context  models.Context

	// Record is set for post and static pages.
	Record *models.Record
	// Posts is the post slice behind listing pages, kept typed for the
	// built-in feed and sitemap writers. Pages is only set on the sitemap.
	Posts []*models.Record
	Pages []*models.Record
}

// Gate decides whether a post page is rendered. *cache.Cache satisfies it.
type Gate interface {
	ShouldRender(path string, raw []byte) bool
}

// Plan is the output of a planning pass.
type Plan struct {
	Pages   []Page
	Skipped []*models.Record
}

// Count returns how many planned pages are of kind k.
func (p *Plan) Count(k Kind) int {
	n := 0
	for _, page := range p.Pages {
		if page.Kind == k {
			n++
		}
	}
	return n
}

type Planner struct {
	cfg  *config.Config
	idx  *models.SiteIndex
	gate Gate
	now  time.Time
	base models.Context
}

// New prepares a planner. A nil gate renders every post.
func New(cfg *config.Config, idx *models.SiteIndex, gate Gate, now time.Time) *Planner {
	base := models.Context{}
	for k, v := range cfg.Settings {
		base[k] = v
	}
	base = base.Merge(map[string]interface{}{
		"categories": site.CategoryView(idx),
		"years":      site.YearView(idx),
	})
	return &Planner{cfg: cfg, idx: idx, gate: gate, now: now.UTC(), base: base}
}

func (p *Planner) context(values map[string]interface{}) models.Context {
	return p.base.Merge(values)
}

// Plan lists the pages of the build. Cache decisions for posts are made
// here, once per post, in index order. Two pages that would be written
// to the same path are a ConfigurationError naming both sources; skipped
// posts still claim their path.
func (p *Planner) Plan() (*Plan, error) {
	plan := &Plan{}
	cfg := p.cfg
	claims := make(map[string]string)

	add := func(pages ...Page) error {
		for _, page := range pages {
			if err := claim(claims, page.Path, origin(page)); err != nil {
				return err
			}
			plan.Pages = append(plan.Pages, page)
		}
		return nil
	}

	var fixed []Page
	if !cfg.SkipIndex {
		fixed = append(fixed, p.index())
	}
	if !cfg.SkipFeed {
		fixed = append(fixed, p.feed())
	}
	if !cfg.SkipSitemap {
		fixed = append(fixed, p.sitemap())
	}
	if !cfg.SkipCategories {
		fixed = append(fixed, p.categories()...)
	}
	if !cfg.SkipArchives {
		fixed = append(fixed, p.archives()...)
	}
	if !cfg.SkipPagination {
		fixed = append(fixed, p.pagination()...)
	}
	if err := add(fixed...); err != nil {
		return nil, err
	}

	for _, post := range p.idx.Posts {
		if p.gate != nil && !p.gate.ShouldRender(post.SourcePath, post.Raw) {
			if err := claim(claims, post.OutputPath, post.SourcePath); err != nil {
				return nil, err
			}
			plan.Skipped = append(plan.Skipped, post)
			continue
		}
		if err := add(p.post(post)); err != nil {
			return nil, err
		}
	}

	if !cfg.SkipPages {
		for _, page := range p.idx.Pages {
			if err := add(p.staticPage(page)); err != nil {
				return nil, err
			}
		}
	}
	return plan, nil
}

func claim(claims map[string]string, outPath, source string) error {
	if prev, ok := claims[outPath]; ok {
		reason := fmt.Sprintf("output path %s is produced by both %s and %s", outPath, prev, source)
		return &errs.ConfigurationError{Path: source, Field: "slug", Reason: reason}
	}
	claims[outPath] = source
	return nil
}

// origin names what a page is built from, for error messages.
func origin(page Page) string {
	switch {
	case page.Record != nil:
		return page.Record.SourcePath
	case page.Kind == KindCategory:
		return fmt.Sprintf("category %q", page.Context["category"])
	case page.Kind == KindArchive:
		return fmt.Sprintf("archive %v", page.Context["year"])
	default:
		return page.Kind.String() + " page"
	}
}

func (p *Planner) index() Page {
	end, extra := IndexSlice(len(p.idx.Posts), p.cfg.PostsPerPage)
	posts := p.idx.Posts[:end]
	return Page{
		Kind:     KindIndex,
		Path:     "index.html",
		Template: TemplateIndex,
		Posts:    posts,
		Context: p.context(map[string]interface{}{
			"posts": models.Views(posts),
			"extra": extra,
		}),
	}
}

func (p *Planner) feed() Page {
	end, _ := IndexSlice(len(p.idx.Posts), p.cfg.PostsPerPage)
	posts := p.idx.Posts[:end]
	return Page{
		Kind:     KindFeed,
		Path:     "atom.xml",
		Template: TemplateAtom,
		Posts:    posts,
		Context: p.context(map[string]interface{}{
			"posts": models.Views(posts),
			"now":   utils.AtomDate(p.now),
		}),
	}
}

func (p *Planner) sitemap() Page {
	return Page{
		Kind:     KindSitemap,
		Path:     "sitemap.xml",
		Template: TemplateSitemap,
		Posts:    p.idx.Posts,
		Pages:    p.idx.Pages,
		Context: p.context(map[string]interface{}{
			"posts": models.Views(p.idx.Posts),
			"pages": models.Views(p.idx.Pages),
			"now":   utils.AtomDate(p.now),
		}),
	}
}

func (p *Planner) categories() []Page {
	pages := make([]Page, 0, len(p.idx.CategoryNames))
	for _, name := range p.idx.CategoryNames {
		if name == "" {
			continue
		}
		slug := utils.Slugify(name)
		posts := p.idx.Categories[name]
		pages = append(pages, Page{
			Kind:     KindCategory,
			Path:     path.Join("category", slug, "index.html"),
			Template: TemplateCategory,
			Posts:    posts,
			Context: p.context(map[string]interface{}{
				"category":      name,
				"category_slug": slug,
				"posts":         models.Views(posts),
			}),
		})
	}
	return pages
}

func (p *Planner) archives() []Page {
	pages := make([]Page, 0, len(p.idx.YearNames))
	for _, year := range p.idx.YearNames {
		posts := p.idx.Archives[year]
		pages = append(pages, Page{
			Kind:     KindArchive,
			Path:     path.Join("archive", utils.Slugify(year), "index.html"),
			Template: TemplateArchive,
			Posts:    posts,
			Context: p.context(map[string]interface{}{
				"year":  year,
				"posts": models.Views(posts),
			}),
		})
	}
	return pages
}

func (p *Planner) pagination() []Page {
	windows := Windows(len(p.idx.Posts), p.cfg.PostsPerPage)
	pages := make([]Page, 0, len(windows))
	for _, w := range windows {
		posts := p.idx.Posts[w.Start:w.End]

		var next interface{}
		if w.Next != "" {
			next = w.Next
		}
		pages = append(pages, Page{
			Kind:     KindPaged,
			Path:     path.Join("page", strconv.Itoa(w.Number), "index.html"),
			Template: TemplatePaged,
			Posts:    posts,
			Context: p.context(map[string]interface{}{
				"page":  w.Number + 1,
				"total": len(windows) + 1,
				"posts": models.Views(posts),
				"prev":  w.Prev,
				"next":  next,
			}),
		})
	}
	return pages
}

func (p *Planner) post(post *models.Record) Page {
	tmpl := TemplateSingle
	if post.Template != "" {
		tmpl = post.Template
	}
	return Page{
		Kind:     KindPost,
		Path:     post.OutputPath,
		Template: tmpl,
		Record:   post,
		Context:  p.context(map[string]interface{}{"post": post.View()}),
	}
}

func (p *Planner) staticPage(page *models.Record) Page {
	tmpl := TemplatePage
	if page.Template != "" {
		tmpl = page.Template
	}
	return Page{
		Kind:     KindPage,
		Path:     page.OutputPath,
		Template: tmpl,
		Record:   page,
		Context:  p.context(map[string]interface{}{"page": page.View()}),
	}
}
