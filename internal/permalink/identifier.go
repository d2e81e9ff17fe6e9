package permalink

import "strings"

// IdentifierFromPath extracts the raw identifier from an escaped request path
// shaped like {basePath}/{slug}/{identifier}. The identifier is greedy: it may
// itself contain "/". One trailing slash is dropped. ok is false when the path
// does not match or the identifier is empty.
func IdentifierFromPath(escapedPath, basePath, slug string) (raw string, ok bool) {
	prefix := strings.TrimRight(basePath, "/") + "/" + NormalizeSlug(slug) + "/"
	if !strings.HasPrefix(escapedPath, prefix) {
		return "", false
	}
	raw = strings.TrimPrefix(escapedPath, prefix)
	raw = strings.TrimSuffix(raw, "/")
	if raw == "" {
		return "", false
	}
	return raw, true
}

// IdentifierFromQuery returns the still-encoded value of the slug parameter in
// rawQuery. url.Values would decode it (and turn "+" into a space), so the raw
// pairs are scanned instead.
func IdentifierFromQuery(rawQuery, slug string) (raw string, ok bool) {
	key := NormalizeSlug(slug)
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if k != key {
			continue
		}
		if v == "" {
			return "", false
		}
		return v, true
	}
	return "", false
}
