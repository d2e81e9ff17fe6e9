package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const EnvPrefix = "COMPANIES_"

// overrides only touches fields whose variable is set.
type overrides struct {
	Host       *string `env:"HOST"`
	Port       *int    `env:"PORT"`
	DataDir    *string `env:"DATA_DIR"`
	BaseURL    *string `env:"BASE_URL"`
	Slug       *string `env:"SLUG"`
	HideFilled *bool   `env:"HIDE_FILLED"`
	Permalinks *bool   `env:"PERMALINKS"`
}

// LoadDotEnv loads .env files into the process environment. Missing files are
// ignored; variables already set win.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return fmt.Errorf("load .env: %w", err)
		}
	}
	return nil
}

// ApplyEnv overlays COMPANIES_* variables onto cfg.
func ApplyEnv(cfg *Config) error {
	return applyEnv(cfg, env.Options{Prefix: EnvPrefix})
}

func applyEnv(cfg *Config, opts env.Options) error {
	var o overrides
	if err := env.ParseWithOptions(&o, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if o.Host != nil {
		cfg.App.Host = *o.Host
	}
	if o.Port != nil {
		cfg.App.Port = *o.Port
	}
	if o.DataDir != nil {
		cfg.App.DataDir = *o.DataDir
	}
	if o.BaseURL != nil {
		cfg.Site.BaseURL = strings.TrimSpace(*o.BaseURL)
	}
	if o.Slug != nil {
		cfg.Directory.Slug = *o.Slug
	}
	if o.HideFilled != nil {
		cfg.Directory.HideFilledPositions = *o.HideFilled
	}
	if o.Permalinks != nil {
		cfg.Directory.Permalinks = *o.Permalinks
	}
	return nil
}
