// Package config loads the site configuration from <site>/config.<ext>.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/Kush-Singh-26/agora/builder/errs"
)

// EnvPrefix is prepended to upper-cased keys for environment overrides,
// e.g. AGORA_POSTS_PER_PAGE.
const EnvPrefix = "AGORA"

type Config struct {
	Author       string `mapstructure:"author"`
	SiteName     string `mapstructure:"site_name"`
	URL          string `mapstructure:"url"`
	PostsPerPage int    `mapstructure:"posts_per_page"`
	DateFormat   string `mapstructure:"date_format"`

	TextProcessor      string `mapstructure:"text_processor"`
	Templates          string `mapstructure:"templates"`
	InitialHeaderLevel int    `mapstructure:"initial_header_level"`
	InlineCSS          bool   `mapstructure:"inline_css"`
	HighlightStyle     string `mapstructure:"highlight_style"`
	Punctuation        bool   `mapstructure:"punctuation"`
	Ligatures          bool   `mapstructure:"ligatures"`

	AppendSlash   bool `mapstructure:"append_slash"`
	URLIncludeDay bool `mapstructure:"url_include_day"`

	SkipIndex      bool `mapstructure:"skip_index"`
	SkipFeed       bool `mapstructure:"skip_feed"`
	SkipSitemap    bool `mapstructure:"skip_sitemap"`
	SkipCategories bool `mapstructure:"skip_categories"`
	SkipArchives   bool `mapstructure:"skip_archives"`
	SkipPagination bool `mapstructure:"skip_pagination"`
	SkipPages      bool `mapstructure:"skip_pages"`

	SitemapURLs []string `mapstructure:"sitemap_urls"`
	Pages       []string `mapstructure:"pages"`
	DeployDir   string   `mapstructure:"deploy_dir"`

	CacheBackend string `mapstructure:"cache_backend"`
	CacheFile    string `mapstructure:"cache_file"`
	Minify       bool   `mapstructure:"minify"`
	Precompress  bool   `mapstructure:"precompress"`
	Workers      int    `mapstructure:"workers"`

	// Not read from the file.
	SiteDir      string                 `mapstructure:"-"`
	ConfigFile   string                 `mapstructure:"-"`
	Settings     map[string]interface{} `mapstructure:"-"`
	BuildVersion int64                  `mapstructure:"-"`
}

// Load reads <siteDir>/config.<ext> from fs, merging it over the defaults
// and AGORA_* environment variables.
func Load(fs afero.Fs, siteDir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}

	v.AddConfigPath(siteDir)
	v.SetConfigName("config")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil, &errs.MissingSiteConfigError{Dir: siteDir}
		}
		return nil, errs.Wrap(filepath.Join(siteDir, "config"), "failed to read site configuration", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errs.Wrap(v.ConfigFileUsed(), "unable to decode configuration", err)
	}

	cfg.SiteDir = siteDir
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.Settings = v.AllSettings()
	cfg.BuildVersion = time.Now().Unix()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// New returns a Config holding only the defaults, rooted at siteDir.
func New(siteDir string) *Config {
	v := viper.New()
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	cfg := &Config{}
	_ = v.Unmarshal(cfg)
	cfg.SiteDir = siteDir
	cfg.Settings = v.AllSettings()
	_ = cfg.validate()
	return cfg
}

func (c *Config) PostsDir() string  { return filepath.Join(c.SiteDir, "posts") }
func (c *Config) PagesDir() string  { return filepath.Join(c.SiteDir, "pages") }
func (c *Config) LayoutDir() string { return filepath.Join(c.SiteDir, "layout") }
func (c *Config) MediaDir() string  { return filepath.Join(c.LayoutDir(), "media") }

// DeployPath resolves deploy_dir against the site directory.
func (c *Config) DeployPath() string {
	if filepath.IsAbs(c.DeployDir) {
		return c.DeployDir
	}
	return filepath.Join(c.SiteDir, c.DeployDir)
}

// CachePath is relative to the working directory, not the site. The bolt
// backend keeps its database next to it with a .db suffix.
func (c *Config) CachePath() string {
	if c.CacheBackend == CacheBackendBolt {
		return strings.TrimSuffix(c.CacheFile, filepath.Ext(c.CacheFile)) + ".db"
	}
	return c.CacheFile
}

// BaseURL is url without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimSuffix(c.URL, "/")
}

func (c *Config) String() string {
	return fmt.Sprintf("%s (%s, %s templates)", c.SiteDir, c.TextProcessor, c.Templates)
}
