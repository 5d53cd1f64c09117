package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/alnah/go-vocabfmt/internal/config"
)

// dotEnvFile is loaded from the working directory when present.
const dotEnvFile = ".env"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // VOCABFMT_CONFIG: config file name or path
	APIURL     string // VOCABFMT_API_URL: reasoning endpoint
	APIToken   string // VOCABFMT_API_TOKEN: bearer token
	TenantID   string // VOCABFMT_TENANT_ID: tenant header value
	Timeout    string // VOCABFMT_TIMEOUT: API and PDF timeout
	Style      string // VOCABFMT_STYLE: report style name, path, or CSS
	OutputDir  string // VOCABFMT_OUTPUT_DIR: default output directory
	PageSize   string // VOCABFMT_PAGE_SIZE: letter, a4, legal
	Workers    int    // VOCABFMT_WORKERS: parallel workers
}

// knownEnvVars lists valid VOCABFMT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"VOCABFMT_CONFIG":     true,
	"VOCABFMT_API_URL":    true,
	"VOCABFMT_API_TOKEN":  true,
	"VOCABFMT_TENANT_ID":  true,
	"VOCABFMT_TIMEOUT":    true,
	"VOCABFMT_STYLE":      true,
	"VOCABFMT_OUTPUT_DIR": true,
	"VOCABFMT_PAGE_SIZE":  true,
	"VOCABFMT_WORKERS":    true,
	"VOCABFMT_CONTAINER":  true, // read by doctor
}

// loadDotEnv loads variables from path into the process environment.
// Variables already set are kept. A missing file is not an error.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("VOCABFMT_CONFIG"),
		APIURL:     os.Getenv("VOCABFMT_API_URL"),
		APIToken:   os.Getenv("VOCABFMT_API_TOKEN"),
		TenantID:   os.Getenv("VOCABFMT_TENANT_ID"),
		Timeout:    os.Getenv("VOCABFMT_TIMEOUT"),
		Style:      os.Getenv("VOCABFMT_STYLE"),
		OutputDir:  os.Getenv("VOCABFMT_OUTPUT_DIR"),
		PageSize:   os.Getenv("VOCABFMT_PAGE_SIZE"),
	}

	if workers := os.Getenv("VOCABFMT_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized VOCABFMT_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "VOCABFMT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies set environment values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.APIURL != "" {
		cfg.API.URL = env.APIURL
	}
	if env.APIToken != "" {
		cfg.API.Token = env.APIToken
	}
	if env.TenantID != "" {
		cfg.API.TenantID = env.TenantID
	}
	if env.Timeout != "" {
		cfg.API.Timeout = env.Timeout
	}
	if env.Style != "" {
		cfg.Report.Style = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
}
