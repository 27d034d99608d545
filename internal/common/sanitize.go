package common

import (
	"net/url"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripTags removes any markup from untrusted input before storage.
func StripTags(input string) string {
	return tagPattern.ReplaceAllString(input, "")
}

// SanitizeURL normalizes untrusted input into an absolute http(s) URL.
// Markup is stripped and whitespace trimmed first; a missing scheme defaults
// to https. Input that cannot be salvaged into an absolute URL comes back as
// an empty string, which callers treat the same as "not set" — malformed
// values are normalized, never rejected.
func SanitizeURL(input string) string {
	cleaned := strings.TrimSpace(StripTags(input))
	if cleaned == "" {
		return ""
	}
	if !strings.Contains(cleaned, "://") {
		cleaned = "https://" + cleaned
	}
	u, err := url.Parse(cleaned)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return u.String()
}
