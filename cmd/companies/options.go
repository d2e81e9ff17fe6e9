package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"companies-engine/internal/config"
	"companies-engine/internal/logging"
	"companies-engine/internal/store"
)

const dbFileName = "companies.db"

type globalOptions struct {
	dataDir    string
	configPath string
	envFile    string
}

func (o *globalOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.dataDir, "data-dir", "", "data directory (default $COMPANIES_DATA_DIR or ./data)")
	fs.StringVarP(&o.configPath, "config", "c", "", "config file (default <data-dir>/config.yml)")
	fs.StringVar(&o.envFile, "env-file", ".env", "dotenv file loaded before reading COMPANIES_* variables")
}

func (o *globalOptions) loadEnv() error {
	if o.envFile == "" {
		return nil
	}
	return config.LoadDotEnv(o.envFile)
}

// loadConfig resolves the config file, overlays the environment and the
// --data-dir flag, and validates the result.
func (o *globalOptions) loadConfig(log *zap.Logger) (config.Config, string, error) {
	dataDir := o.dataDir
	if dataDir == "" {
		env := config.Default()
		if err := config.ApplyEnv(&env); err != nil {
			return config.Config{}, "", err
		}
		dataDir = env.App.DataDir
	}

	path := o.configPath
	if path == "" {
		var err error
		path, err = config.EnsureUserConfig(dataDir, "")
		if err != nil {
			return config.Config{}, "", fmt.Errorf("config bootstrap failed: %w", err)
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return config.Config{}, "", err
	}
	if o.dataDir != "" {
		cfg.App.DataDir = o.dataDir
	}

	cfg, vr := config.NormalizeAndValidate(cfg)
	for _, w := range vr.Warnings {
		log.Warn("config warning", zap.String("warning", w))
	}
	if !vr.OK() {
		return config.Config{}, "", config.Validate(cfg)
	}
	return cfg, path, nil
}

func newLogger() *zap.Logger {
	l, err := logging.NewLogger()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func openStore(cfg config.Config) (*store.DB, error) {
	if err := os.MkdirAll(cfg.App.DataDir, 0o755); err != nil {
		return nil, err
	}
	db, err := store.Open(filepath.Join(cfg.App.DataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := store.Migrate(db.Pool); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return db, nil
}
