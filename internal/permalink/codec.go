// Package permalink turns company names into profile URLs and back.
package permalink

import (
	"html"
	"net/url"
	"strings"

	"companies-engine/internal/apperr"
)

const DefaultSlug = "company"

// Encode percent-encodes name as a single path segment. Every byte outside the
// unreserved set A-Z a-z 0-9 - _ . ~ is escaped, so "/", "?", "&" and spaces
// never survive raw into either permalink form.
func Encode(name string) string {
	// QueryEscape leaves only the unreserved set untouched and writes a space
	// as "+"; a literal "+" is already "%2B" at this point.
	return strings.ReplaceAll(url.QueryEscape(name), "+", "%20")
}

// Decode reverses Encode. "+" is kept literally.
func Decode(raw string) (string, error) {
	name, err := url.PathUnescape(raw)
	if err != nil {
		return "", apperr.MalformedIdentifier(raw, err)
	}
	return name, nil
}

// URLFunc builds a profile URL from the already encoded identifier.
type URLFunc func(baseURL, slug, encoded string) string

type Codec struct {
	BaseURL           string
	Slug              string
	PermalinksEnabled bool
	TrailingSlash     bool
	// URLFunc replaces the built-in URL shapes when set.
	URLFunc URLFunc
}

func New(baseURL, slug string, permalinks, trailingSlash bool) *Codec {
	return &Codec{
		BaseURL:           strings.TrimRight(baseURL, "/"),
		Slug:              NormalizeSlug(slug),
		PermalinksEnabled: permalinks,
		TrailingSlash:     trailingSlash,
	}
}

// ProfileURL returns the unescaped profile URL for name.
func (c *Codec) ProfileURL(name string) string {
	base := strings.TrimRight(c.BaseURL, "/")
	slug := NormalizeSlug(c.Slug)
	encoded := Encode(name)

	if c.URLFunc != nil {
		return c.URLFunc(base, slug, encoded)
	}
	if !c.PermalinksEnabled || isDotSegment(encoded) {
		return base + "/index.php?" + slug + "=" + encoded
	}
	u := base + "/" + slug + "/" + encoded
	if c.TrailingSlash {
		u += "/"
	}
	return u
}

// isDotSegment reports identifiers that clients and path cleaners would
// collapse as "." or ".." path segments.
func isDotSegment(encoded string) bool {
	return encoded == "." || encoded == ".."
}

// BuildProfileURL returns ProfileURL escaped for direct use in an HTML attribute.
func (c *Codec) BuildProfileURL(name string) string {
	return html.EscapeString(c.ProfileURL(name))
}

// BuildProfileURL builds an escaped profile URL without a configured Codec.
// Pretty URLs get no trailing slash here.
func BuildProfileURL(name string, permalinksEnabled bool, baseURL, slug string) string {
	return New(baseURL, slug, permalinksEnabled, false).BuildProfileURL(name)
}

// BasePath is the path component of the configured base URL, without a trailing slash.
func (c *Codec) BasePath() string {
	return BasePath(c.BaseURL)
}

func BasePath(baseURL string) string {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

func NormalizeSlug(slug string) string {
	slug = strings.Trim(strings.TrimSpace(slug), "/")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}
