package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAndValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
		check   func(*testing.T, Config)
	}{
		{
			name: "normalizes slug and base url",
			mutate: func(c *Config) {
				c.Directory.Slug = " /employer/ "
				c.Site.BaseURL = "https://site.test/jobs/"
				c.Site.TitleSeparator = ""
			},
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "employer", c.Directory.Slug)
				assert.Equal(t, "https://site.test/jobs", c.Site.BaseURL)
				assert.Equal(t, "-", c.Site.TitleSeparator)
			},
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.Site.BaseURL = "/jobs" },
			wantErr: "site.base_url must be an absolute URL",
		},
		{
			name:    "base url with query",
			mutate:  func(c *Config) { c.Site.BaseURL = "https://site.test/?p=1" },
			wantErr: "site.base_url must not carry a query or fragment",
		},
		{
			name:    "slug with separator",
			mutate:  func(c *Config) { c.Directory.Slug = "a/b" },
			wantErr: "directory.slug must be a single path segment",
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.Store.QueryTimeout = 0 },
			wantErr: "store.query_timeout must be > 0",
		},
		{
			name:    "limiter without burst",
			mutate:  func(c *Config) { c.Limits.Burst = 0 },
			wantErr: "limits.burst must be > 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			out, res := NormalizeAndValidate(cfg)
			if tt.wantErr != "" {
				assert.False(t, res.OK())
				assert.Contains(t, res.Errors[0], tt.wantErr)
				return
			}
			assert.True(t, res.OK(), "errors: %v", res.Errors)
			if tt.check != nil {
				tt.check(t, out)
			}
		})
	}
}

func TestNormalizeAndValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.Site.Name = ""
	cfg.Store.QueryTimeout = time.Minute

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Len(t, res.Warnings, 2)
}

func TestDisabledLimiterNeedsNoBurst(t *testing.T) {
	cfg := Default()
	cfg.Limits.RequestsPerSecond = 0
	cfg.Limits.Burst = 0

	_, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
}
