package scaffold

import (
	"testing"

	"github.com/spf13/afero"
)

func TestRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := Run(fs, "/blog"); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	for _, path := range []string{
		"/blog/config.yaml",
		"/blog/about.md",
		"/blog/layout/index.html",
		"/blog/layout/partials/head.html",
		"/blog/layout/media/style.css",
		"/blog/posts/2026-01-01-hello-world.md",
		"/blog/pages/colophon.md",
	} {
		if ok, _ := afero.Exists(fs, path); !ok {
			t.Errorf("%s was not created", path)
		}
	}
}

func TestRun_ExistingDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/blog/notes.txt", []byte("mine"), 0644)

	if err := Run(fs, "/blog"); err == nil {
		t.Fatal("expected error for non-empty directory")
	}
	if ok, _ := afero.Exists(fs, "/blog/config.yaml"); ok {
		t.Error("existing directory was modified")
	}
}

func TestRun_EmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/blog", 0755)
	if err := Run(fs, "/blog"); err != nil {
		t.Errorf("Run() on empty dir failed: %v", err)
	}
}
