package renderer

import (
	"html/template"
	"path/filepath"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

var registerFilters sync.Once

// Pongo renders Django/Jinja-style templates with pongo2. Template names
// resolve against the layout directory, so {% extends "base.html" %}
// works as it does in those engines.
type Pongo struct {
	fs        afero.Fs
	layoutDir string
	set       *pongo2.TemplateSet
}

func NewPongo(fs afero.Fs, layoutDir string) (*Pongo, error) {
	registerFilters.Do(func() {
		for name, fn := range map[string]pongo2.FilterFunction{
			"in_category": filterInCategory,
			"slugify":     filterSlugify,
		} {
			if !pongo2.FilterExists(name) {
				_ = pongo2.RegisterFilter(name, fn)
			}
		}
	})

	loader := pongo2.NewFSLoader(afero.NewIOFS(afero.NewBasePathFs(fs, layoutDir)))
	return &Pongo{fs: fs, layoutDir: layoutDir, set: pongo2.NewSet("layout", loader)}, nil
}

func (p *Pongo) Has(name string) bool {
	ok, _ := afero.Exists(p.fs, filepath.Join(p.layoutDir, name))
	return ok
}

func (p *Pongo) Render(name string, ctx models.Context) (string, error) {
	tpl, err := p.set.FromCache(name)
	if err != nil {
		return "", renderError(name, err)
	}
	out, err := tpl.Execute(pongoContext(ctx))
	if err != nil {
		return "", renderError(name, err)
	}
	return out, nil
}

func pongoContext(ctx models.Context) pongo2.Context {
	out := make(pongo2.Context, len(ctx))
	for k, v := range ctx {
		out[k] = markSafe(v)
	}
	return out
}

// markSafe wraps rendered HTML so autoescaping leaves it alone. Other
// values are escaped as usual.
func markSafe(v interface{}) interface{} {
	switch t := v.(type) {
	case template.HTML:
		return pongo2.AsSafeValue(string(t))
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, val := range t {
			out[k] = markSafe(val)
		}
		return out
	case []map[string]interface{}:
		out := make([]map[string]interface{}, len(t))
		for i, m := range t {
			out[i] = markSafe(m).(map[string]interface{})
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = markSafe(val)
		}
		return out
	default:
		return v
	}
}

func filterInCategory(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(InCategory(in.Interface(), param.String())), nil
}

func filterSlugify(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(utils.Slugify(in.String())), nil
}
