// Package run drives a full site build.
package run

import (
	"context"
	"log/slog"
)

// Run builds the site in siteDir on the OS filesystem.
func Run(ctx context.Context, siteDir string, logger *slog.Logger) error {
	b, err := NewBuilder(Options{SiteDir: siteDir, Logger: logger})
	if err != nil {
		return err
	}
	return b.Build(ctx)
}
