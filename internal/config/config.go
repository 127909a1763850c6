// Package config resolves settings for the site tools from defaults, an
// optional config file, DOCS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bull/docs-site-tools/internal/redirect"
)

// Config keys, also used as file keys and DOCS_<KEY> environment variables.
const (
	KeySiteDir           = "site_dir"
	KeySearchIndex       = "search_index"
	KeyLanguages         = "languages"
	KeyUseIndexLanguages = "use_index_languages"
	KeyDryRun            = "dry_run"
	KeyRedirects         = "redirects"
)

// DefaultConfigName is looked up as docs-tools.{yaml,json,toml} in the working directory.
const DefaultConfigName = "docs-tools"

// KnownLanguages are the translated subtrees published by the docs build.
var KnownLanguages = []string{"en", "de", "es", "fr", "it", "ja", "ko", "nl", "pl", "zh"}

// DefaultRedirects lists, in generation order, the top-level directories moved under each new section.
var DefaultRedirects = []redirect.Section{
	{Name: "basics", Directories: []string{"async", "client", "content", "environment", "errors", "logging", "routing", "validation"}},
	{Name: "advanced", Directories: []string{"apns", "commands", "files", "middleware", "queues", "server", "services", "sessions", "testing", "websockets"}},
	{Name: "getting-started", Directories: []string{"folder-structure", "hello-world", "spm", "xcode"}},
	{Name: "security", Directories: []string{"authentication", "crypto", "jwt", "passwords"}},
}

// Config is the resolved tool configuration.
type Config struct {
	SiteDir           string             `mapstructure:"site_dir"`            // Built site root
	SearchIndex       string             `mapstructure:"search_index"`        // Search index file
	Languages         []string           `mapstructure:"languages"`           // Codes excluded from the index
	UseIndexLanguages bool               `mapstructure:"use_index_languages"` // Also exclude config.lang codes
	DryRun            bool               `mapstructure:"dry_run"`
	Redirects         []redirect.Section `mapstructure:"redirects"` // Replaces the default table when set
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"site-dir":        KeySiteDir,
	"index":           KeySearchIndex,
	"languages":       KeyLanguages,
	"use-index-langs": KeyUseIndexLanguages,
	"dry-run":         KeyDryRun,
}

// Load resolves the configuration. An explicit configFile must exist; when it is
// empty, docs-tools.* in the working directory is used if present. Flags present
// in flags (see FlagKeys) override every other source when set by the user.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeySiteDir, "site")
	v.SetDefault(KeySearchIndex, "site/search/search_index.json")
	v.SetDefault(KeyLanguages, KnownLanguages)
	v.SetDefault(KeyUseIndexLanguages, false)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyRedirects, DefaultRedirects)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("DOCS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if cfg.SearchIndex == "" {
		return nil, fmt.Errorf("%s must not be empty", KeySearchIndex)
	}
	if cfg.SiteDir == "" {
		return nil, fmt.Errorf("%s must not be empty", KeySiteDir)
	}

	return cfg, nil
}
