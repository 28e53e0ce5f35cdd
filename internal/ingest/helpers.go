package ingest

import "strings"

// normalizeSpace collapses runs of whitespace into single spaces and trims.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// cleanText normalizes whitespace (alias for normalizeSpace).
func cleanText(s string) string {
	return normalizeSpace(s)
}

// NormalizeBRN strips everything but digits from a business registration
// number. Both lookup queries and stored ledger values go through this before
// comparison.
func NormalizeBRN(brn string) string {
	var b strings.Builder
	for _, r := range brn {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
