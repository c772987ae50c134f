// Package fuzzy wraps a Levenshtein-distance primitive into the
// normalized similarity score the join cascade's fuzzy-name branch uses.
// No edit-distance implementation appears anywhere in the teacher repo or
// the rest of the retrieval pack, so this is the one place the domain
// stack reaches beyond the pack — see DESIGN.md.
package fuzzy

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Similarity returns 1 - levenshtein(a, b) / max(|a|, |b|), measured in
// code points, per spec §4.6. Equal strings (including both-empty) return
// 1.0; one-empty returns 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 || lb == 0 {
		return 0.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	return 1.0 - float64(dist)/float64(maxLen)
}
