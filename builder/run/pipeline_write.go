package run

import (
	"context"
	"fmt"

	"github.com/Kush-Singh-26/agora/builder/cache"
	"github.com/Kush-Singh-26/agora/builder/output"
	"github.com/Kush-Singh-26/agora/builder/planner"
	"github.com/Kush-Singh-26/agora/builder/utils"
)

// writePages renders and writes every planned page on the worker pool.
// Output paths are disjoint, so jobs share nothing but the writer, the
// cache and the metrics, all of which are safe for concurrent use.
func (b *Builder) writePages(ctx context.Context, w *output.Writer, plan *planner.Plan, hashes *cache.Cache) error {
	pool := utils.NewWorkerPool(ctx, b.cfg.Workers, func(ctx context.Context, page planner.Page) error {
		return b.writePage(w, page, hashes)
	})
	pool.Start()

	for _, page := range plan.Pages {
		if !pool.Submit(page) {
			break
		}
	}
	if err := pool.Stop(); err != nil {
		return err
	}

	fmt.Printf("   ✍️  Wrote %d files (%d posts rendered, %d unchanged)\n",
		w.Written(), b.metrics.PostsRendered(), len(plan.Skipped))
	return nil
}

func (b *Builder) writePage(w *output.Writer, page planner.Page, hashes *cache.Cache) error {
	data, err := b.renderPage(page)
	if err != nil {
		if page.Record != nil {
			return fmt.Errorf("%s: %w", page.Record.SourcePath, err)
		}
		return err
	}

	if err := w.Write(page.Path, data); err != nil {
		return err
	}
	b.metrics.AddFileWritten()

	if page.Kind == planner.KindPost {
		hashes.RecordRendered(page.Record.SourcePath, page.Record.Raw)
		b.metrics.AddPostRendered()
		b.logger.Debug("Rendered post", "path", page.Path)
	}
	return nil
}

func (b *Builder) renderPage(page planner.Page) ([]byte, error) {
	if !b.rnd.Has(page.Template) {
		if data, ok, err := b.builtin(page); ok {
			return data, err
		}
	}
	out, err := b.rnd.Render(page.Template, page.Context)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}
