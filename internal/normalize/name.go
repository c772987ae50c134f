// Package normalize builds the comparison key used by the fuzzy join
// cascade from a raw display name, and assembles the canonical SoT and
// satellite records from mapped field values.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// suffixes is the closed set of trailing name suffixes stripped per spec
// §4.4.1 step 3.
var suffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
	"phd": true, "md": true, "dds": true, "esq": true, "cpa": true,
}

// middleInitialRE matches a single ASCII letter standing alone as a word
// (preceded by the start of the string or whitespace), followed by an
// optional '.' and then whitespace or the end of the string, per spec
// §4.4.1 step 4.
var middleInitialRE = regexp.MustCompile(`(?:^|\s)[A-Za-z]\.?(\s|$)`)

var whitespaceRunRE = regexp.MustCompile(`\s+`)

// Name runs the deterministic steps of spec §4.4.1 in order and returns the
// comparison key. Empty input returns empty output; the transformation is
// idempotent on its own output.
func Name(display string) string {
	if display == "" {
		return ""
	}

	// Step 1: lowercase and trim outer whitespace.
	s := strings.ToLower(strings.TrimSpace(display))

	// Step 2: strip diacritics via NFD decomposition, dropping non-spacing
	// marks (category Mn).
	s = stripDiacritics(s)

	// Step 3: strip trailing suffixes, preceded by a space or comma.
	s = stripSuffixes(s)

	// Step 4: remove middle initials.
	s = middleInitialRE.ReplaceAllString(s, " ")

	// Step 5: collapse whitespace runs.
	s = whitespaceRunRE.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Step 6: "Last, First" -> "First Last" when exactly one comma remains.
	if strings.Count(s, ",") == 1 {
		parts := strings.SplitN(s, ",", 2)
		last := strings.TrimSpace(parts[0])
		first := strings.TrimSpace(parts[1])
		s = strings.TrimSpace(first + " " + last)
	}

	// Step 7: final outer trim.
	s = strings.TrimSpace(s)

	// One pass can leave work for another (adjacent initials share a
	// separating space; the comma swap can move a suffix to the end), so
	// repeat until the key no longer changes.
	if s != display {
		return Name(s)
	}
	return s
}

func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stripSuffixes(s string) string {
	for {
		trimmed := false
		for suffix := range suffixes {
			// preceded by space or comma, and at end of string (after
			// trimming trailing punctuation/space around it).
			for _, sep := range []string{" ", ", ", ","} {
				candidate := sep + suffix
				if strings.HasSuffix(s, candidate) {
					s = strings.TrimSuffix(s, candidate)
					s = strings.TrimRight(s, " ,")
					trimmed = true
				}
			}
		}
		if !trimmed {
			break
		}
	}
	return s
}
