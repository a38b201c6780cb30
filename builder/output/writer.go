// Package output writes rendered pages and media into the deploy tree.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/afero"
	"github.com/tdewolff/minify/v2"

	"github.com/Kush-Singh-26/agora/builder/utils"
)

type Options struct {
	Minify bool
	// Precompress writes .gz and .zst copies next to every file.
	Precompress bool
}

// Writer is safe for concurrent use; callers must not write the same path
// twice in one build.
type Writer struct {
	fs       afero.Fs
	root     string
	opts     Options
	minifier *minify.M
	encoder  *zstd.Encoder
	written  atomic.Int64
}

func NewWriter(fs afero.Fs, root string, opts Options) (*Writer, error) {
	w := &Writer{fs: fs, root: root, opts: opts}
	if opts.Minify {
		w.minifier = utils.NewMinifier()
	}
	if opts.Precompress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		w.encoder = enc
	}
	return w, nil
}

// Write stores data at rel, a slash-separated path under the deploy root.
func (w *Writer) Write(rel string, data []byte) error {
	path := filepath.Join(w.root, filepath.FromSlash(rel))

	if w.minifier != nil {
		if mediaType := utils.MediaType(path); mediaType != "" {
			minified, err := w.minifier.Bytes(mediaType, data)
			if err != nil {
				return fmt.Errorf("failed to minify %s: %w", rel, err)
			}
			data = minified
		}
	}

	if err := utils.WriteFileVFS(w.fs, path, data); err != nil {
		return err
	}
	w.written.Add(1)

	if w.opts.Precompress {
		if err := w.writeCompressed(path, data); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeCompressed(path string, data []byte) error {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return fmt.Errorf("failed to create gzip writer: %w", err)
	}
	if _, err := gz.Write(data); err != nil {
		return fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to compress %s: %w", path, err)
	}
	if err := afero.WriteFile(w.fs, path+".gz", buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s.gz: %w", path, err)
	}

	if err := afero.WriteFile(w.fs, path+".zst", w.encoder.EncodeAll(data, nil), 0644); err != nil {
		return fmt.Errorf("failed to write %s.zst: %w", path, err)
	}
	return nil
}

// Written is the number of primary files written, sidecars excluded.
func (w *Writer) Written() int { return int(w.written.Load()) }

func (w *Writer) Close() error {
	if w.encoder != nil {
		return w.encoder.Close()
	}
	return nil
}

// Exists reports whether the deploy root is present.
func Exists(fs afero.Fs, root string) bool {
	ok, err := afero.DirExists(fs, root)
	return err == nil && ok
}

// CopyMedia replaces <deploy>/media with a copy of mediaDir. A missing
// media directory copies nothing.
func CopyMedia(srcFs, destFs afero.Fs, mediaDir, deployDir string) (int, error) {
	if ok, _ := afero.DirExists(srcFs, mediaDir); !ok {
		return 0, nil
	}

	target := filepath.Join(deployDir, "media")
	if err := destFs.RemoveAll(target); err != nil && !os.IsNotExist(err) {
		return 0, fmt.Errorf("failed to remove old media: %w", err)
	}
	n, err := utils.CopyDirVFS(srcFs, destFs, mediaDir, target)
	if err != nil {
		return n, fmt.Errorf("failed to copy media: %w", err)
	}
	return n, nil
}
