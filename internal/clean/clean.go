// Package clean removes build output.
package clean

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/config"
)

// Run removes the deploy directory of the site in siteDir and, unless
// keepCache is set, the hash cache.
func Run(fsys afero.Fs, siteDir string, keepCache bool) error {
	start := time.Now()

	cfg, err := config.Load(fsys, siteDir)
	if err != nil {
		return err
	}

	targets := []string{cfg.DeployPath()}
	if !keepCache {
		targets = append(targets, cfg.CachePath())
	}

	removed := 0
	for _, path := range targets {
		if _, err := fsys.Stat(path); os.IsNotExist(err) {
			continue
		}
		fmt.Printf("🧹 Removing '%s'...\n", path)
		if err := fsys.RemoveAll(path); err != nil {
			return fmt.Errorf("failed to remove '%s': %w", path, err)
		}
		removed++
	}

	fmt.Printf("🧹 Cleaned %d paths in %v.\n", removed, time.Since(start).Round(time.Millisecond))
	return nil
}
