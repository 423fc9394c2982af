package sanitizer

import (
	"strings"
)

// NormalizeURL forces HTTPS and lowercases the host. Path and query are kept
// as given; a trailing slash is dropped.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	rest := raw
	switch {
	case strings.HasPrefix(strings.ToLower(rest), "https://"):
		rest = rest[len("https://"):]
	case strings.HasPrefix(strings.ToLower(rest), "http://"):
		rest = rest[len("http://"):]
	case strings.Contains(rest, "://"):
		return raw
	}

	cut := strings.IndexAny(rest, "/?#")
	host, tail := rest, ""
	if cut >= 0 {
		host, tail = rest[:cut], rest[cut:]
	}
	if host == "" || strings.ContainsAny(host, " \t") {
		return raw
	}

	result := "https://" + strings.ToLower(host) + tail
	return strings.TrimSuffix(result, "/")
}
