package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-novelsite/internal/fileutil"
	"github.com/alnah/go-novelsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxSiteNameLength = 100
	MaxLangLength     = 35 // BCP 47 tags stay well under this
	MaxHolderLength   = 200
	MaxURLLength      = 2048
	MaxFamilyLength   = 100
	MaxAxesLength     = 200
	MaxLabelLength    = 50
	MaxTitleLength    = 200
	MaxFonts          = 8
)

// Navigation link policies.
const (
	LinksOrdinal  = "ordinal"
	LinksPosition = "position"
)

// LinkPolicies lists accepted navigation.links values.
var LinkPolicies = []string{LinksOrdinal, LinksPosition}

// Config holds all configuration for site generation.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Site       SiteConfig       `yaml:"site"`
	Navigation NavigationConfig `yaml:"navigation"`
	Index      IndexConfig      `yaml:"index"`
	Style      StyleConfig      `yaml:"style"`
}

// InputConfig defines the chapter source.
type InputConfig struct {
	Dir string `yaml:"dir"` // Directory of NN-title.md files (empty = must specify)
}

// OutputConfig defines the page destination.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Must already exist (empty = must specify)
}

// SiteConfig holds the constants baked into every page.
type SiteConfig struct {
	Name            string       `yaml:"name"`
	Lang            string       `yaml:"lang"`
	CopyrightYear   int          `yaml:"copyrightYear"`
	CopyrightHolder string       `yaml:"copyrightHolder"` // Empty = site name
	FontBaseURL     string       `yaml:"fontBaseURL"`
	FontStaticURL   string       `yaml:"fontStaticURL"`
	Fonts           []FontConfig `yaml:"fonts"`
	Stylesheet      string       `yaml:"stylesheet"`
	HomeHref        string       `yaml:"homeHref"`
	TOCHref         string       `yaml:"tocHref"`
	Labels          LabelsConfig `yaml:"labels"`
}

// FontConfig names one web font family and its axis list.
type FontConfig struct {
	Family string `yaml:"family"` // "Noto Serif SC"
	Axes   string `yaml:"axes"`   // "wght@400;600"
}

// LabelsConfig holds navigation link text.
type LabelsConfig struct {
	Prev string `yaml:"prev"`
	Next string `yaml:"next"`
	TOC  string `yaml:"toc"`
}

// NavigationConfig selects how prev/next targets are computed.
type NavigationConfig struct {
	Links string `yaml:"links"` // "ordinal" (default) or "position"
}

// IndexConfig controls the optional generated index page.
type IndexConfig struct {
	Enabled bool   `yaml:"enabled"`
	Intro   string `yaml:"intro"` // Markdown file rendered above the chapter list
	Title   string `yaml:"title"` // Heading above the chapter list (empty = TOC label)
}

// StyleConfig controls writing style.css next to the pages.
type StyleConfig struct {
	Write bool   `yaml:"write"`
	Path  string `yaml:"path"` // Custom CSS file (empty = embedded default)
}

// DefaultConfig returns the built-in site configuration:
// 先凑合, © 2026, Noto Serif SC + Crimson Pro from Google Fonts.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Name:          "先凑合",
			Lang:          "zh-CN",
			CopyrightYear: 2026,
			FontBaseURL:   "https://fonts.googleapis.com",
			FontStaticURL: "https://fonts.gstatic.com",
			Fonts: []FontConfig{
				{Family: "Noto Serif SC", Axes: "wght@400;600"},
				{Family: "Crimson Pro", Axes: "ital,wght@0,400;0,600;1,400"},
			},
			Stylesheet: "style.css",
			HomeHref:   "index.html",
			TOCHref:    "index.html#chapters",
			Labels: LabelsConfig{
				Prev: "← 上一章",
				Next: "下一章 →",
				TOC:  "目录",
			},
		},
		Navigation: NavigationConfig{Links: LinksOrdinal},
	}
}

// applyDefaults fills fields left empty in a loaded file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	setString(&c.Site.Name, def.Site.Name)
	setString(&c.Site.Lang, def.Site.Lang)
	setString(&c.Site.FontBaseURL, def.Site.FontBaseURL)
	setString(&c.Site.FontStaticURL, def.Site.FontStaticURL)
	setString(&c.Site.Stylesheet, def.Site.Stylesheet)
	setString(&c.Site.HomeHref, def.Site.HomeHref)
	setString(&c.Site.TOCHref, def.Site.TOCHref)
	setString(&c.Site.Labels.Prev, def.Site.Labels.Prev)
	setString(&c.Site.Labels.Next, def.Site.Labels.Next)
	setString(&c.Site.Labels.TOC, def.Site.Labels.TOC)
	setString(&c.Navigation.Links, def.Navigation.Links)
	if c.Site.CopyrightYear == 0 {
		c.Site.CopyrightYear = def.Site.CopyrightYear
	}
	if c.Site.Fonts == nil {
		c.Site.Fonts = def.Site.Fonts
	}
}

func setString(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for callers
// who build a Config in code.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.dir", c.Input.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"site.name", c.Site.Name, MaxSiteNameLength},
		{"site.lang", c.Site.Lang, MaxLangLength},
		{"site.copyrightHolder", c.Site.CopyrightHolder, MaxHolderLength},
		{"site.fontBaseURL", c.Site.FontBaseURL, MaxURLLength},
		{"site.fontStaticURL", c.Site.FontStaticURL, MaxURLLength},
		{"site.stylesheet", c.Site.Stylesheet, MaxURLLength},
		{"site.homeHref", c.Site.HomeHref, MaxURLLength},
		{"site.tocHref", c.Site.TOCHref, MaxURLLength},
		{"site.labels.prev", c.Site.Labels.Prev, MaxLabelLength},
		{"site.labels.next", c.Site.Labels.Next, MaxLabelLength},
		{"site.labels.toc", c.Site.Labels.TOC, MaxLabelLength},
		{"index.intro", c.Index.Intro, MaxPathLength},
		{"index.title", c.Index.Title, MaxTitleLength},
		{"style.path", c.Style.Path, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if len(c.Site.Fonts) > MaxFonts {
		return fmt.Errorf("%w: site.fonts: %d entries (max %d)", ErrInvalidValue, len(c.Site.Fonts), MaxFonts)
	}
	for i, font := range c.Site.Fonts {
		if font.Family == "" {
			return fmt.Errorf("%w: site.fonts[%d].family: required", ErrInvalidValue, i)
		}
		if err := validateFieldLength(fmt.Sprintf("site.fonts[%d].family", i), font.Family, MaxFamilyLength); err != nil {
			return err
		}
		if err := validateFieldLength(fmt.Sprintf("site.fonts[%d].axes", i), font.Axes, MaxAxesLength); err != nil {
			return err
		}
	}

	if c.Site.CopyrightYear < 0 || c.Site.CopyrightYear > 9999 {
		return fmt.Errorf("%w: site.copyrightYear: %d (must be between 0 and 9999)", ErrInvalidValue, c.Site.CopyrightYear)
	}

	if c.Navigation.Links != "" && !IsLinkPolicy(c.Navigation.Links) {
		return fmt.Errorf("%w: navigation.links: %q (must be %s)",
			ErrInvalidValue, c.Navigation.Links, strings.Join(LinkPolicies, " or "))
	}

	return nil
}

// IsLinkPolicy reports whether s names a known link policy (case-insensitive).
func IsLinkPolicy(s string) bool {
	for _, p := range LinkPolicies {
		if strings.EqualFold(s, p) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the locations tried for a config name, in order.
// Tries extensions .yaml then .yml, in the current directory then
// the user config directory (~/.config/go-novelsite/ on Linux).
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-novelsite", name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing search path for name.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
