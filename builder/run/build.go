package run

import (
	"context"
	"fmt"

	"github.com/Kush-Singh-26/agora/builder/cache"
	"github.com/Kush-Singh-26/agora/builder/metrics"
	"github.com/Kush-Singh-26/agora/builder/models"
	"github.com/Kush-Singh-26/agora/builder/output"
	"github.com/Kush-Singh-26/agora/builder/planner"
	"github.com/Kush-Singh-26/agora/builder/site"
)

// Build executes a single build pass. Phases run strictly in order:
// parse, aggregate, plan, write. The cache is saved once, after every
// page has been written.
func (b *Builder) Build(ctx context.Context) error {
	cfg := b.cfg
	m := metrics.NewBuildMetrics()
	b.metrics = m
	b.buildTime = b.now()

	fmt.Printf("🔨 Building site %s... (Version: %d) | Parallel Workers: %d\n", cfg, cfg.BuildVersion, cfg.Workers)

	deploy := cfg.DeployPath()
	bypass := !output.Exists(b.DestFs, deploy)
	if bypass {
		fmt.Printf("   🆕 %s does not exist, rendering everything\n", deploy)
	}
	m.CacheBypassed = bypass
	hashes := cache.New(b.store, bypass, b.logger)

	var posts, pages []*models.Record
	err := m.Phase(&m.ParseTime, func() error {
		var err error
		if posts, err = b.parsePosts(); err != nil {
			return err
		}
		pages, err = b.parsePages()
		return err
	})
	if err != nil {
		return err
	}
	m.PostsParsed = len(posts)
	m.PagesParsed = len(pages)
	fmt.Printf("   📝 Parsed %d posts and %d pages\n", len(posts), len(pages))

	idx := site.Aggregate(posts, pages, cfg.URLIncludeDay)

	var plan *planner.Plan
	err = m.Phase(&m.PlanTime, func() error {
		var err error
		plan, err = planner.New(cfg, idx, hashes, b.buildTime).Plan()
		return err
	})
	if err != nil {
		return err
	}
	m.CacheHits = len(plan.Skipped)
	m.CacheMisses = plan.Count(planner.KindPost)
	for _, p := range plan.Skipped {
		b.logger.Debug("Skipping unchanged post", "path", p.SourcePath)
	}

	w, err := output.NewWriter(b.DestFs, deploy, output.Options{Minify: cfg.Minify, Precompress: cfg.Precompress})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	err = m.Phase(&m.WriteTime, func() error {
		return b.writePages(ctx, w, plan, hashes)
	})
	if err != nil {
		return err
	}

	if m.MediaCopied, err = b.copyMedia(); err != nil {
		return err
	}

	if err := hashes.Save(); err != nil {
		return fmt.Errorf("failed to save cache: %w", err)
	}
	fmt.Printf("   💾 Saved %d hashes to %s\n", hashes.Len(), cfg.CachePath())

	m.RecordEnd()
	m.Print()
	return nil
}
