package run

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/errs"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// parsePosts reads every file in posts/. The first failure aborts the
// build and names the offending file.
func (b *Builder) parsePosts() ([]*models.Record, error) {
	files, err := utils.ListSourceFiles(b.SourceFs, b.cfg.PostsDir())
	if err != nil {
		return nil, err
	}

	posts := make([]*models.Record, 0, len(files))
	for _, path := range files {
		rec, err := b.parser.Parse(path, models.KindPost)
		if err != nil {
			return nil, err
		}
		posts = append(posts, rec)
	}
	return posts, nil
}

// parsePages reads pages/ plus a root about.* file, then checks that
// every page named in the "pages" setting was found.
func (b *Builder) parsePages() ([]*models.Record, error) {
	files, err := utils.ListSourceFiles(b.SourceFs, b.cfg.PagesDir())
	if err != nil {
		return nil, err
	}

	pages := make([]*models.Record, 0, len(files)+1)
	slugs := make(map[string]bool, len(files))
	for _, path := range files {
		rec, err := b.parser.Parse(path, models.KindPage)
		if err != nil {
			return nil, err
		}
		pages = append(pages, rec)
		slugs[rec.Slug] = true
	}

	if about, err := b.findAbout(); err != nil {
		return nil, err
	} else if about != "" {
		rec, err := b.parser.Parse(about, models.KindPage)
		if err != nil {
			return nil, err
		}
		if slugs[rec.Slug] {
			b.logger.Warn("Ignoring root page, pages/ already has one with this slug", "path", about, "slug", rec.Slug)
		} else {
			pages = append(pages, rec)
			files = append(files, about)
		}
	}

	for _, name := range b.cfg.Pages {
		if !declared(name, files) {
			return nil, &errs.PageNotFoundError{Name: name, Dir: b.cfg.PagesDir()}
		}
	}
	return pages, nil
}

// findAbout returns the first about.* file in the site root, or "".
func (b *Builder) findAbout() (string, error) {
	entries, err := afero.ReadDir(b.SourceFs, b.cfg.SiteDir)
	if err != nil {
		return "", fmt.Errorf("failed to list site directory: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "about.") {
			return filepath.Join(b.cfg.SiteDir, e.Name()), nil
		}
	}
	return "", nil
}

// declared matches a page name against file names with or without their
// extension.
func declared(name string, files []string) bool {
	for _, f := range files {
		base := filepath.Base(f)
		if base == name || strings.TrimSuffix(base, filepath.Ext(base)) == name {
			return true
		}
	}
	return false
}
