package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/Kush-Singh-26/agora/builder/errs"
)

func writeConfig(t *testing.T, fs afero.Fs, name, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, filepath.Join("/site", name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "config.yaml", "site_name: Test\n")

	cfg, err := Load(fs, "/site")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.SiteName != "Test" {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, "Test")
	}
	if cfg.PostsPerPage != 10 {
		t.Errorf("PostsPerPage = %d, want 10", cfg.PostsPerPage)
	}
	if cfg.DateFormat != "%B %d, %Y" {
		t.Errorf("DateFormat = %q", cfg.DateFormat)
	}
	if cfg.TextProcessor != "markdown" || cfg.Templates != "go" {
		t.Errorf("TextProcessor/Templates = %q/%q", cfg.TextProcessor, cfg.Templates)
	}
	if !cfg.AppendSlash || cfg.URLIncludeDay {
		t.Error("append_slash should default to true and url_include_day to false")
	}
	if cfg.DeployDir != "deploy" {
		t.Errorf("DeployDir = %q", cfg.DeployDir)
	}
	if cfg.InitialHeaderLevel != 2 {
		t.Errorf("InitialHeaderLevel = %d", cfg.InitialHeaderLevel)
	}
	if cfg.Workers < 1 || cfg.Workers > MaxWorkers {
		t.Errorf("Workers = %d, want within 1..%d", cfg.Workers, MaxWorkers)
	}
	if cfg.Settings["site_name"] != "Test" {
		t.Errorf("Settings[site_name] = %v", cfg.Settings["site_name"])
	}
	if _, ok := cfg.Settings["posts_per_page"]; !ok {
		t.Error("Settings should include defaults")
	}
}

func TestLoad_Overrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "config.yaml", `
posts_per_page: 2
url_include_day: true
append_slash: false
deploy_dir: public
sitemap_urls:
  - /extra/
initial_header_level: 9
workers: 500
my_custom_key: hello
`)

	cfg, err := Load(fs, "/site")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.PostsPerPage != 2 || !cfg.URLIncludeDay || cfg.AppendSlash {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if len(cfg.SitemapURLs) != 1 || cfg.SitemapURLs[0] != "/extra/" {
		t.Errorf("SitemapURLs = %v", cfg.SitemapURLs)
	}
	if cfg.InitialHeaderLevel != 6 {
		t.Errorf("InitialHeaderLevel = %d, want clamped to 6", cfg.InitialHeaderLevel)
	}
	if cfg.Workers != MaxWorkers {
		t.Errorf("Workers = %d, want clamped to %d", cfg.Workers, MaxWorkers)
	}
	if cfg.DeployPath() != filepath.Join("/site", "public") {
		t.Errorf("DeployPath() = %q", cfg.DeployPath())
	}
	if cfg.Settings["my_custom_key"] != "hello" {
		t.Error("unknown keys should reach the template settings")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGORA_POSTS_PER_PAGE", "3")

	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "config.yaml", "posts_per_page: 7\n")

	cfg, err := Load(fs, "/site")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PostsPerPage != 3 {
		t.Errorf("PostsPerPage = %d, want env override 3", cfg.PostsPerPage)
	}
}

func TestLoad_MissingConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = fs.MkdirAll("/site", 0755)

	_, err := Load(fs, "/site")

	var missing *errs.MissingSiteConfigError
	if !errors.As(err, &missing) {
		t.Fatalf("Load() error = %v, want MissingSiteConfigError", err)
	}
	if missing.Dir != "/site" {
		t.Errorf("Dir = %q", missing.Dir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"negative posts per page", "posts_per_page: -1\n", "posts_per_page"},
		{"unknown cache backend", "cache_backend: redis\n", "cache_backend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			writeConfig(t, fs, "config.yaml", tt.content)

			_, err := Load(fs, "/site")
			var cfgErr *errs.ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Load() error = %v, want ConfigurationError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
		})
	}
}

func TestLoad_JSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeConfig(t, fs, "config.json", `{"site_name": "JSON Site", "posts_per_page": 0}`)

	cfg, err := Load(fs, "/site")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.SiteName != "JSON Site" || cfg.PostsPerPage != 0 {
		t.Errorf("got %q / %d", cfg.SiteName, cfg.PostsPerPage)
	}
}

func TestCachePath(t *testing.T) {
	cfg := New("/site")
	if cfg.CachePath() != ".agora-cache.yaml" {
		t.Errorf("CachePath() = %q", cfg.CachePath())
	}

	cfg.CacheBackend = CacheBackendBolt
	if cfg.CachePath() != ".agora-cache.db" {
		t.Errorf("CachePath() = %q", cfg.CachePath())
	}
}

func TestConfigString(t *testing.T) {
	cfg := New("/site")
	cfg.Templates = "django"
	if got, want := cfg.String(), "/site (markdown, django templates)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
