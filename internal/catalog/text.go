package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cleanText folds non-breaking spaces, collapses whitespace runs and
// NFC-normalizes s.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFC.String(s)
}

// normalizeLocation drops empty and repeated comma-separated parts,
// comparing case-insensitively: "Boston, , boston,MA" -> "Boston, MA".
func normalizeLocation(loc string) string {
	loc = cleanText(loc)
	if loc == "" {
		return ""
	}

	seen := map[string]bool{}
	var out []string
	for _, p := range strings.Split(loc, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		k := strings.ToLower(p)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return strings.Join(out, ", ")
}
