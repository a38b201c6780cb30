package run

import (
	"github.com/Kush-Singh-26/agora/builder/generators"
	"github.com/Kush-Singh-26/agora/builder/planner"
)

// builtin produces the feed and sitemap when the layout lacks templates
// for them. ok is false for every other page kind.
func (b *Builder) builtin(page planner.Page) (data []byte, ok bool, err error) {
	switch page.Kind {
	case planner.KindFeed:
		data, err = generators.Atom(b.cfg, page.Posts, b.buildTime)
		return data, true, err
	case planner.KindSitemap:
		data, err = generators.Sitemap(b.cfg.BaseURL(), page.Posts, page.Pages, b.cfg.SitemapURLs, b.buildTime)
		return data, true, err
	default:
		return nil, false, nil
	}
}
