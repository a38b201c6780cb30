package models

import (
	"html/template"
	"time"
)

// Kind discriminates the two record variants.
type Kind int

const (
	KindPost Kind = iota
	KindPage
)

func (k Kind) String() string {
	if k == KindPage {
		return "page"
	}
	return "post"
}

// UncategorizedName is the category given to posts that declare none.
const UncategorizedName = "Uncategorized"

type Category struct {
	Name string
	Slug string
}

// Record is one parsed source file. Records are built once by the parser
// and treated as read-only afterwards.
type Record struct {
	Kind        Kind
	SourcePath  string
	Filename    string
	FrontMatter *FrontMatter
	Raw         []byte
	Hash        string
	Body        string
	Content     template.HTML

	Title      string
	Slug       string
	URL        string
	OutputPath string
	Author     string
	Template   string
	Categories []Category
	TOC        []TOCEntry

	// Post only.
	Date        time.Time
	Year        string
	Month       string
	Day         string
	DisplayDate string
	AtomDate    string
}

func (r *Record) IsPost() bool { return r.Kind == KindPost }

// InCategory reports whether the record is filed under the category slug.
func (r *Record) InCategory(slug string) bool {
	for _, c := range r.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// View flattens the record into the map shape templates see. Front-matter
// keys are included, derived fields win on conflict.
func (r *Record) View() map[string]interface{} {
	view := make(map[string]interface{}, 24)
	if r.FrontMatter != nil {
		view["config"] = r.FrontMatter.Map()
		for k, v := range r.FrontMatter.values {
			view[k] = v
		}
	}

	categories := make([]map[string]interface{}, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, map[string]interface{}{"name": c.Name, "slug": c.Slug})
	}

	view["kind"] = r.Kind.String()
	view["title"] = r.Title
	view["slug"] = r.Slug
	view["url"] = r.URL
	view["path"] = r.SourcePath
	view["filename"] = r.Filename
	view["author"] = r.Author
	view["template"] = r.Template
	view["categories"] = categories
	view["toc"] = tocView(r.TOC)
	view["content"] = r.Content
	view["contents"] = r.Content

	if r.IsPost() {
		view["date"] = r.DisplayDate
		view["atom_date"] = r.AtomDate
		view["year"] = r.Year
		view["month"] = r.Month
		view["day"] = r.Day
	}
	return view
}

// TOCEntry is one heading of a rendered body.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

func tocView(toc []TOCEntry) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(toc))
	for _, e := range toc {
		out = append(out, map[string]interface{}{"id": e.ID, "text": e.Text, "level": e.Level})
	}
	return out
}
