package utils

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// Ignored reports whether a source file name is hidden or underscore-prefixed.
func Ignored(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// ListSourceFiles returns the regular files directly inside dir, sorted by
// name, skipping ignored names. A missing directory yields no files.
func ListSourceFiles(fsys afero.Fs, dir string) ([]string, error) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || Ignored(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func WriteFileVFS(fsys afero.Fs, path string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("failed to write VFS file %s: %w", path, err)
	}
	return nil
}

// CopyDirVFS copies the tree at srcDir on srcFs to dstDir on destFs and
// returns the number of files copied.
func CopyDirVFS(srcFs afero.Fs, destFs afero.Fs, srcDir, dstDir string) (int, error) {
	if err := destFs.MkdirAll(dstDir, 0755); err != nil {
		return 0, err
	}

	copied := 0
	err := afero.Walk(srcFs, srcDir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstDir, rel)

		if info.IsDir() {
			return destFs.MkdirAll(target, 0755)
		}

		if err := copyFileVFS(srcFs, destFs, path, target); err != nil {
			return fmt.Errorf("failed to copy %s: %w", path, err)
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFileVFS(srcFs, destFs afero.Fs, src, dst string) error {
	in, err := srcFs.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := destFs.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
