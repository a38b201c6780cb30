// Package renderer turns a template name and a context into page text.
// The backend is chosen once from the "templates" setting.
package renderer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// Backend names accepted by the "templates" setting.
const (
	BackendGo     = "go"
	BackendDjango = "django"
	BackendJinja2 = "jinja2"
)

// Renderer is safe for concurrent use once constructed.
type Renderer interface {
	Render(name string, ctx models.Context) (string, error)
	Has(name string) bool
}

// New loads the templates under layoutDir for the named backend.
func New(fs afero.Fs, backend, layoutDir string) (Renderer, error) {
	if ok, _ := afero.DirExists(fs, layoutDir); !ok {
		switch strings.ToLower(backend) {
		case BackendGo, BackendDjango, BackendJinja2, "":
			return nil, fmt.Errorf("layout directory %s not found", layoutDir)
		}
	}

	switch strings.ToLower(backend) {
	case BackendGo, "":
		return NewHTML(fs, layoutDir)
	case BackendDjango, BackendJinja2:
		return NewPongo(fs, layoutDir)
	default:
		return nil, &errs.UnsupportedTemplateBackendError{Name: backend}
	}
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"inCategory": InCategory,
		"lower":      strings.ToLower,
		"slugify":    utils.Slugify,
	}
}

// InCategory reports whether a post, given either as a record or as its
// template view, is filed under the category slug.
func InCategory(post interface{}, slug string) bool {
	switch p := post.(type) {
	case *models.Record:
		return p.InCategory(slug)
	case map[string]interface{}:
		categories, _ := p["categories"].([]map[string]interface{})
		for _, c := range categories {
			if c["slug"] == slug {
				return true
			}
		}
	}
	return false
}

func renderError(name string, err error) error {
	return fmt.Errorf("failed to render template %s: %w", name, err)
}
