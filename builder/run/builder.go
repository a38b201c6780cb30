package run

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/cache"
	"github.com/Kush-Singh-26/agora/builder/config"
	"github.com/Kush-Singh-26/agora/builder/metrics"
	"github.com/Kush-Singh-26/agora/builder/parser"
	"github.com/Kush-Singh-26/agora/builder/renderer"
)

// Options configures a Builder. Zero values select the OS filesystem, the
// default logger and the real clock.
type Options struct {
	SiteDir  string
	SourceFs afero.Fs
	DestFs   afero.Fs
	Logger   *slog.Logger
	Now      func() time.Time

	// Renderer replaces the backend selected by the "templates" setting.
	Renderer renderer.Renderer
	// Store replaces the cache backend selected by "cache_backend".
	Store cache.HashStore
	// ParserOptions are passed to the content parser.
	ParserOptions []parser.Option
}

// Builder maintains the state for one site build
type Builder struct {
	cfg     *config.Config
	logger  *slog.Logger
	now     func() time.Time
	parser  *parser.Parser
	rnd     renderer.Renderer
	store   cache.HashStore
	metrics *metrics.BuildMetrics

	// buildTime is fixed at the start of Build so every page agrees on it.
	buildTime time.Time

	SourceFs afero.Fs
	DestFs   afero.Fs
}

// NewBuilder loads the site configuration and performs every startup
// check: config file present, text processor known, template backend
// supported and its layout readable.
func NewBuilder(opts Options) (*Builder, error) {
	if opts.SourceFs == nil {
		opts.SourceFs = afero.NewOsFs()
	}
	if opts.DestFs == nil {
		opts.DestFs = opts.SourceFs
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cfg, err := config.Load(opts.SourceFs, opts.SiteDir)
	if err != nil {
		return nil, err
	}

	p, err := parser.New(opts.SourceFs, cfg, opts.ParserOptions...)
	if err != nil {
		return nil, err
	}

	rnd := opts.Renderer
	if rnd == nil {
		if rnd, err = renderer.New(opts.SourceFs, cfg.Templates, cfg.LayoutDir()); err != nil {
			return nil, err
		}
	}

	store := opts.Store
	if store == nil {
		if store, err = cache.OpenStore(opts.SourceFs, cfg.CacheBackend, cfg.CachePath()); err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
	}

	return &Builder{
		cfg:      cfg,
		logger:   opts.Logger,
		now:      opts.Now,
		parser:   p,
		rnd:      rnd,
		store:    store,
		SourceFs: opts.SourceFs,
		DestFs:   opts.DestFs,
	}, nil
}

// Config returns the builder's configuration
func (b *Builder) Config() *config.Config {
	return b.cfg
}

// Metrics returns the counters of the last Build.
func (b *Builder) Metrics() *metrics.BuildMetrics {
	return b.metrics
}
