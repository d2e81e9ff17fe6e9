package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg with its findings.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.App.Host = strings.TrimSpace(out.App.Host)
	out.Site.BaseURL = strings.TrimRight(strings.TrimSpace(out.Site.BaseURL), "/")
	out.Site.Name = strings.TrimSpace(out.Site.Name)
	out.Site.TitleSeparator = strings.TrimSpace(out.Site.TitleSeparator)
	if out.Site.TitleSeparator == "" {
		out.Site.TitleSeparator = "-"
	}
	out.Directory.Slug = strings.Trim(strings.TrimSpace(out.Directory.Slug), "/")

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if strings.TrimSpace(out.App.DataDir) == "" {
		res.addErr("app.data_dir is required")
	}

	if out.Site.BaseURL == "" {
		res.addErr("site.base_url is required")
	} else if u, err := url.Parse(out.Site.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("site.base_url must be an absolute URL, got %q", out.Site.BaseURL)
	} else if u.RawQuery != "" || u.Fragment != "" {
		res.addErr("site.base_url must not carry a query or fragment")
	}
	if out.Site.Name == "" {
		res.addWarn("site.name is empty; page titles will only show the company.")
	}

	switch {
	case out.Directory.Slug == "":
		res.addErr("directory.slug is required")
	case strings.ContainsAny(out.Directory.Slug, "/?#&= "):
		res.addErr("directory.slug must be a single path segment, got %q", out.Directory.Slug)
	}

	if out.Store.QueryTimeout <= 0 {
		res.addErr("store.query_timeout must be > 0")
	} else if out.Store.QueryTimeout > 30*time.Second {
		res.addWarn("store.query_timeout is %s; directory requests may hang that long.", out.Store.QueryTimeout)
	}
	if out.Store.CleanupAfter < 0 {
		res.addErr("store.cleanup_after must be >= 0 (0 disables cleanup)")
	}

	if out.Limits.RequestsPerSecond < 0 {
		res.addErr("limits.requests_per_second must be >= 0 (0 disables limiting)")
	}
	if out.Limits.RequestsPerSecond > 0 && out.Limits.Burst <= 0 {
		res.addErr("limits.burst must be > 0 when limiting is enabled")
	}

	return out, res
}
