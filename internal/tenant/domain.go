package tenant

import (
	"net/url"
	"strings"
)

// NormalizeDomain extracts a lowercased hostname from an arbitrary URL-like
// string, stripping any leading "www.". Parsing is best effort: on failure it
// degrades to a string split rather than returning an error, since domain
// detection is advisory.
func NormalizeDomain(urlLike string) string {
	s := strings.TrimSpace(strings.ToLower(urlLike))
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err == nil && u.Hostname() != "" {
		return strings.TrimPrefix(u.Hostname(), "www.")
	}
	// Fallback: strip scheme and www, take everything before the first slash.
	s = strings.TrimPrefix(strings.TrimPrefix(s, "https://"), "http://")
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return s
}

// domainsRelated reports whether two normalized domains should be treated as
// the same site for fuzzy identifier matching. Hyphens in the candidate are
// folded to dots first so slug-like inputs ("example-com") match "example.com".
// Beyond exact equality, a match is accepted when either domain contains the
// other's leading dot-delimited label. This trades precision for convenience
// with short env-derived identifiers; ambiguous matches resolve by list order.
func domainsRelated(candidate, target string) bool {
	candidate = strings.ReplaceAll(candidate, "-", ".")
	if candidate == "" || target == "" {
		return false
	}
	if candidate == target {
		return true
	}
	candLabel, _, _ := strings.Cut(candidate, ".")
	targetLabel, _, _ := strings.Cut(target, ".")
	if candLabel != "" && strings.Contains(target, candLabel) {
		return true
	}
	if targetLabel != "" && strings.Contains(candidate, targetLabel) {
		return true
	}
	return false
}
