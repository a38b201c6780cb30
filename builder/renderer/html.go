package renderer

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/models"
)

// HTML renders html/template files. Every layout/*.html file is a
// template named by its base name; layout/partials/*.html are available
// as "partials/<name>".
type HTML struct {
	set *template.Template
}

func NewHTML(fs afero.Fs, layoutDir string) (*HTML, error) {
	set := template.New("").Funcs(funcMap())

	if err := parseDir(fs, set, layoutDir, ""); err != nil {
		return nil, err
	}
	if err := parseDir(fs, set, filepath.Join(layoutDir, "partials"), "partials"); err != nil {
		return nil, err
	}
	return &HTML{set: set}, nil
}

func parseDir(fs afero.Fs, set *template.Template, dir, prefix string) error {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read layout directory %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		data, err := afero.ReadFile(fs, filepath.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", e.Name(), err)
		}
		name := e.Name()
		if prefix != "" {
			name = path.Join(prefix, name)
		}
		if _, err := set.New(name).Parse(string(data)); err != nil {
			return fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	return nil
}

func (h *HTML) Has(name string) bool {
	return h.set.Lookup(name) != nil
}

func (h *HTML) Render(name string, ctx models.Context) (string, error) {
	if !h.Has(name) {
		return "", renderError(name, fmt.Errorf("template not found"))
	}
	var buf bytes.Buffer
	if err := h.set.ExecuteTemplate(&buf, name, map[string]interface{}(ctx)); err != nil {
		return "", renderError(name, err)
	}
	return buf.String(), nil
}
