package config

import (
	"runtime"

	"github.com/Kush-Singh-26/agora/builder/errs"
)

const (
	CacheBackendFile = "file"
	CacheBackendBolt = "bolt"

	MaxWorkers = 32
)

// Defaults lists every recognized key with its default value.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"author":         "",
		"site_name":      "",
		"url":            "",
		"posts_per_page": 10,
		"date_format":    "%B %d, %Y",

		"text_processor":       "markdown",
		"templates":            "go",
		"initial_header_level": 2,
		"inline_css":           false,
		"highlight_style":      "monokai",
		"punctuation":          false,
		"ligatures":            false,

		"append_slash":    true,
		"url_include_day": false,

		"skip_index":      false,
		"skip_feed":       false,
		"skip_sitemap":    false,
		"skip_categories": false,
		"skip_archives":   false,
		"skip_pagination": false,
		"skip_pages":      false,

		"sitemap_urls": []string{},
		"pages":        []string{},
		"deploy_dir":   "deploy",

		"cache_backend": CacheBackendFile,
		"cache_file":    ".agora-cache.yaml",
		"minify":        false,
		"precompress":   false,
		"workers":       0,
	}
}

// validate normalizes and clamps values. Only values that cannot be
// corrected are errors.
func (c *Config) validate() error {
	if c.PostsPerPage < 0 {
		return &errs.ConfigurationError{Path: c.ConfigFile, Field: "posts_per_page", Reason: "must be zero or positive"}
	}

	if c.InitialHeaderLevel < 1 {
		c.InitialHeaderLevel = 1
	}
	if c.InitialHeaderLevel > 6 {
		c.InitialHeaderLevel = 6
	}

	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Workers > MaxWorkers {
		c.Workers = MaxWorkers
	}

	if c.DeployDir == "" {
		c.DeployDir = "deploy"
	}
	if c.DateFormat == "" {
		c.DateFormat = "%B %d, %Y"
	}
	if c.HighlightStyle == "" {
		c.HighlightStyle = "monokai"
	}
	if c.CacheFile == "" {
		c.CacheFile = ".agora-cache.yaml"
	}

	switch c.CacheBackend {
	case "":
		c.CacheBackend = CacheBackendFile
	case CacheBackendFile, CacheBackendBolt:
	default:
		return &errs.ConfigurationError{Path: c.ConfigFile, Field: "cache_backend", Reason: "must be file or bolt"}
	}
	return nil
}
