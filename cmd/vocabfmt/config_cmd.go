package main

import (
	"fmt"

	"github.com/alnah/go-vocabfmt/internal/yamlutil"
)

// runConfig prints the effective configuration with the token masked.
func runConfig(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	cfg, _, err := loadEffectiveConfig(flags.config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if !flags.quiet {
		warnUnknownEnvVars(env.Stderr)
	}

	data, err := yamlutil.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
