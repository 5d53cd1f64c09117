package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-vocabfmt/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits for multi-tenant safety.
const (
	MaxURLLength         = 2048 // Browser limit
	MaxTenantIDLength    = 100
	MaxTokenLength       = 4096 // JWTs can be long
	MaxDurationLength    = 20   // "90s", "1m30s"
	MaxPhraseLength      = 200
	MaxPhrases           = 500
	MaxTitleLength       = 200
	MaxStyleLength       = 2048 // Name or path
	MaxDateLength        = 60   // "2025-12-31" or "auto:<format>"
	MaxTextLength        = 500  // Footer/free-form text
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0
)

// Config holds all configuration for vocabulary formatting and reports.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Format FormatConfig `yaml:"format"`
	Output OutputConfig `yaml:"output"`
	Report ReportConfig `yaml:"report"`
	Page   PageConfig   `yaml:"page"`
	Footer FooterConfig `yaml:"footer"`
}

// APIConfig defines the reasoning API endpoint.
type APIConfig struct {
	URL      string `yaml:"url"`
	TenantID string `yaml:"tenantID"`
	Token    string `yaml:"token,omitempty"` // VOCABFMT_API_TOKEN wins
	Timeout  string `yaml:"timeout"`         // Go duration, e.g. "60s"
}

// FormatConfig defines vocabulary formatting options.
type FormatConfig struct {
	ExtraPhrases   []string `yaml:"extraPhrases,omitempty"`
	KnownPhrases   []string `yaml:"knownPhrases,omitempty"` // Replaces the built-in list when set
	DashSeparators *bool    `yaml:"dashSeparators,omitempty"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = next to the input
}

// ReportConfig defines HTML/PDF report options.
type ReportConfig struct {
	Title     string `yaml:"title"`
	Style     string `yaml:"style"`     // Embedded style name, CSS file path, or inline CSS
	Date      string `yaml:"date"`      // "auto", "auto:<format>", or a literal date
	AssetPath string `yaml:"assetPath"` // Empty = embedded assets
}

// PageConfig defines PDF page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.5)
}

// FooterConfig defines PDF page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"`
	Text           string `yaml:"text"`
}

// DashSeparatorsEnabled reports whether "Term - definition" lines are
// treated as headings. Unset means enabled.
func (f FormatConfig) DashSeparatorsEnabled() bool {
	return f.DashSeparators == nil || *f.DashSeparators
}

// TimeoutDuration parses the API timeout. An empty value returns zero.
func (a APIConfig) TimeoutDuration() (time.Duration, error) {
	if a.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(a.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: api.timeout %q: %v", ErrInvalidValue, a.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: api.timeout must be positive, got %s", ErrInvalidValue, a.Timeout)
	}
	return d, nil
}

// Redacted returns a copy with the API token masked.
func (c *Config) Redacted() *Config {
	out := *c
	if out.API.Token != "" {
		out.API.Token = "********"
	}
	return &out
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := c.validateAPI(); err != nil {
		return err
	}
	if err := c.validateFormat(); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxStyleLength); err != nil {
		return err
	}

	if err := validateFieldLength("report.title", c.Report.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.style", c.Report.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.date", c.Report.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("report.assetPath", c.Report.AssetPath, MaxStyleLength); err != nil {
		return err
	}

	if err := c.validatePage(); err != nil {
		return err
	}
	return c.validateFooter()
}

func (c *Config) validateAPI() error {
	if err := validateFieldLength("api.url", c.API.URL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("api.tenantID", c.API.TenantID, MaxTenantIDLength); err != nil {
		return err
	}
	if err := validateFieldLength("api.token", c.API.Token, MaxTokenLength); err != nil {
		return err
	}
	if err := validateFieldLength("api.timeout", c.API.Timeout, MaxDurationLength); err != nil {
		return err
	}
	_, err := c.API.TimeoutDuration()
	return err
}

func (c *Config) validateFormat() error {
	if n := len(c.Format.ExtraPhrases) + len(c.Format.KnownPhrases); n > MaxPhrases {
		return fmt.Errorf("%w: format phrases (%d entries, max %d)", ErrFieldTooLong, n, MaxPhrases)
	}
	for i, p := range c.Format.ExtraPhrases {
		if err := validateFieldLength(fmt.Sprintf("format.extraPhrases[%d]", i), p, MaxPhraseLength); err != nil {
			return err
		}
	}
	for i, p := range c.Format.KnownPhrases {
		if err := validateFieldLength(fmt.Sprintf("format.knownPhrases[%d]", i), p, MaxPhraseLength); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validatePage() error {
	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}
	if c.Page.Size != "" {
		switch strings.ToLower(c.Page.Size) {
		case "letter", "a4", "legal":
		default:
			return fmt.Errorf("%w: page.size %q (must be letter, a4, or legal)", ErrInvalidValue, c.Page.Size)
		}
	}
	if c.Page.Orientation != "" {
		switch strings.ToLower(c.Page.Orientation) {
		case "portrait", "landscape":
		default:
			return fmt.Errorf("%w: page.orientation %q (must be portrait or landscape)", ErrInvalidValue, c.Page.Orientation)
		}
	}
	if c.Page.Margin != 0 && (c.Page.Margin < MinMargin || c.Page.Margin > MaxMargin) {
		return fmt.Errorf("%w: page.margin must be between %.2f and %.1f, got %.2f", ErrInvalidValue, MinMargin, MaxMargin, c.Page.Margin)
	}
	return nil
}

func (c *Config) validateFooter() error {
	if err := validateFieldLength("footer.date", c.Footer.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
		default:
			return fmt.Errorf("%w: footer.position %q (must be left, center, or right)", ErrInvalidValue, c.Footer.Position)
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: no API endpoint, embedded
// default style, letter portrait pages, footer disabled.
func DefaultConfig() *Config {
	return &Config{
		API:    APIConfig{TenantID: "talos", Timeout: "60s"},
		Report: ReportConfig{Date: "auto"},
		Page:   PageConfig{Size: "letter", Orientation: "portrait", Margin: 0.5},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		if !errors.Is(err, yamlutil.ErrNilData) {
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.API.TenantID == "" {
		c.API.TenantID = d.API.TenantID
	}
	if c.API.Timeout == "" {
		c.API.Timeout = d.API.Timeout
	}
	if c.Report.Date == "" {
		c.Report.Date = d.Report.Date
	}
	if c.Page.Size == "" {
		c.Page.Size = d.Page.Size
	}
	if c.Page.Orientation == "" {
		c.Page.Orientation = d.Page.Orientation
	}
	if c.Page.Margin == 0 {
		c.Page.Margin = d.Page.Margin
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-vocabfmt/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-vocabfmt", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
