// Package scaffold creates a new site from the embedded default theme.
package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/assets"
)

// Run copies the default site into dir. An existing, non-empty dir is
// left untouched.
func Run(fsys afero.Fs, dir string) error {
	fmt.Printf("🌱 Initializing new site in %s...\n", dir)

	if entries, err := afero.ReadDir(fsys, dir); err == nil && len(entries) > 0 {
		return fmt.Errorf("the '%s' directory already exists", dir)
	} else if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to inspect %s: %w", dir, err)
	}

	theme := assets.Theme()
	count := 0
	err := fs.WalkDir(theme, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return fsys.MkdirAll(target, 0755)
		}

		data, err := fs.ReadFile(theme, path)
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, target, data, 0644); err != nil {
			return fmt.Errorf("failed to create %s: %w", target, err)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("   📄 Created %d files\n", count)
	fmt.Println("\n✅ Site initialized successfully!")
	fmt.Printf("   👉 Run 'agora generate %s' to build it.\n", dir)
	return nil
}
