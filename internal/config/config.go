package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type App struct {
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
	DataDir string `yaml:"data_dir"`
}

type Site struct {
	BaseURL        string `yaml:"base_url"`
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	TitleSeparator string `yaml:"title_separator"`
}

type Directory struct {
	Slug                string `yaml:"slug"`
	ShowLetters         bool   `yaml:"show_letters"`
	HideFilledPositions bool   `yaml:"hide_filled_positions"`
	Permalinks          bool   `yaml:"permalinks"`
	TrailingSlash       bool   `yaml:"trailing_slash"`
}

type Store struct {
	QueryTimeout time.Duration `yaml:"query_timeout"`
	CleanupAfter time.Duration `yaml:"cleanup_after"`
}

type Limits struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type Config struct {
	App       App       `yaml:"app"`
	Site      Site      `yaml:"site"`
	Directory Directory `yaml:"directory"`
	Store     Store     `yaml:"store"`
	Limits    Limits    `yaml:"limits"`
}

func Default() Config {
	return Config{
		App: App{Host: "127.0.0.1", Port: 38471, DataDir: "data"},
		Site: Site{
			BaseURL:        "http://127.0.0.1:38471",
			Name:           "Job Board",
			TitleSeparator: "-",
		},
		Directory: Directory{
			Slug:          "company",
			ShowLetters:   true,
			Permalinks:    true,
			TrailingSlash: true,
		},
		Store: Store{
			QueryTimeout: 5 * time.Second,
			CleanupAfter: 90 * 24 * time.Hour,
		},
		Limits: Limits{RequestsPerSecond: 20, Burst: 40},
	}
}

// Load reads a YAML file on top of Default, so keys missing from the file keep
// their defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
