package main

import (
	"fmt"
	"time"

	vocabfmt "github.com/alnah/go-vocabfmt"
	"github.com/alnah/go-vocabfmt/internal/config"
)

// loadEffectiveConfig loads the config file named by flagPath (or
// VOCABFMT_CONFIG) and applies environment overrides.
func loadEffectiveConfig(flagPath string) (*config.Config, *envConfig, error) {
	envCfg := loadEnvConfig()

	path := flagPath
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, envCfg, nil
}

// mergePhraseFlags merges formatting flags into config. CLI phrases are
// added to the configured ones.
func mergePhraseFlags(f *phraseFlags, cfg *config.Config) {
	cfg.Format.ExtraPhrases = append(cfg.Format.ExtraPhrases, f.phrases...)
	if f.noDashSeparators {
		off := false
		cfg.Format.DashSeparators = &off
	}
}

// mergeReportFlags merges report flags into config. CLI values override config values.
func mergeReportFlags(f *reportFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.Report.Style = f.style
	}
	if f.assetPath != "" {
		cfg.Report.AssetPath = f.assetPath
	}
	if f.title != "" {
		cfg.Report.Title = f.title
	}
	if f.date != "" {
		cfg.Report.Date = f.date
	}

	if f.page.size != "" {
		cfg.Page.Size = f.page.size
	}
	if f.page.orientation != "" {
		cfg.Page.Orientation = f.page.orientation
	}
	if f.page.margin != 0 {
		cfg.Page.Margin = f.page.margin
	}

	// Any footer flag enables the footer
	if f.footer.position != "" {
		cfg.Footer.Enabled = true
		cfg.Footer.Position = f.footer.position
	}
	if f.footer.text != "" {
		cfg.Footer.Enabled = true
		cfg.Footer.Text = f.footer.text
	}
	if f.footer.pageNumber {
		cfg.Footer.Enabled = true
		cfg.Footer.ShowPageNumber = true
	}
}

// formatterOptions builds Formatter options from config.
func formatterOptions(cfg *config.Config) []vocabfmt.Option {
	opts := []vocabfmt.Option{
		vocabfmt.WithDashSeparators(cfg.Format.DashSeparatorsEnabled()),
	}
	if len(cfg.Format.ExtraPhrases) > 0 {
		opts = append(opts, vocabfmt.WithExtraPhrases(cfg.Format.ExtraPhrases...))
	}
	if len(cfg.Format.KnownPhrases) > 0 {
		opts = append(opts, vocabfmt.WithKnownPhrases(cfg.Format.KnownPhrases...))
	}
	return opts
}

// reporterOptions builds Reporter options from config.
func reporterOptions(cfg *config.Config, timeout time.Duration, env *Environment) []vocabfmt.Option {
	opts := formatterOptions(cfg)
	opts = append(opts,
		vocabfmt.WithStyle(cfg.Report.Style),
		vocabfmt.WithAssetPath(cfg.Report.AssetPath),
		vocabfmt.WithClock(env.Now),
	)
	if timeout > 0 {
		opts = append(opts, vocabfmt.WithTimeout(timeout))
	}
	return opts
}

// baseReportInput builds the report fields shared by every file of a run.
func baseReportInput(cfg *config.Config, f *reportFlags) vocabfmt.ReportInput {
	in := vocabfmt.ReportInput{
		Title:    cfg.Report.Title,
		Date:     cfg.Report.Date,
		Account:  f.account,
		Industry: f.industry,
		HTMLOnly: !f.pdf,
		Page: &vocabfmt.PageSettings{
			Size:        cfg.Page.Size,
			Orientation: cfg.Page.Orientation,
			Margin:      cfg.Page.Margin,
		},
	}
	if cfg.Footer.Enabled {
		in.Footer = &vocabfmt.Footer{
			Position:       cfg.Footer.Position,
			ShowPageNumber: cfg.Footer.ShowPageNumber,
			Date:           cfg.Footer.Date,
			Text:           cfg.Footer.Text,
		}
	}
	return in
}

// wantsReport reports whether a full document is requested.
func (f *reportFlags) wantsReport() bool {
	return f.report || f.pdf
}
