package columnmap

import (
	"sort"
	"strings"

	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// normalizeHeader lowercases and strips whitespace/underscores/hyphens, per
// spec §4.3 step 1.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, "_", "")
	h = strings.ReplaceAll(h, "-", "")
	h = strings.ReplaceAll(h, " ", "")
	return h
}

// Infer builds a header-index -> canonical-field mapping by inference only
// (no user map): exact alias match, then substring match, first-unused-
// target-wins at each stage, per spec §4.3 steps 2-4.
func Infer(headers []string) map[int]string {
	result := make(map[int]string, len(headers))
	assigned := make(map[string]bool, len(headers))

	// Pass 1: exact match.
	for i, h := range headers {
		norm := normalizeHeader(h)
		if field, ok := exactAliases[norm]; ok && !assigned[field] {
			result[i] = field
			assigned[field] = true
		}
	}

	// Pass 2: substring match, most-specific-first, for headers still
	// unmapped after pass 1.
	for i, h := range headers {
		if _, already := result[i]; already {
			continue
		}
		norm := normalizeHeader(h)
		for _, cand := range substringAliases {
			if assigned[cand.field] {
				continue
			}
			if strings.Contains(norm, cand.substr) {
				result[i] = cand.field
				assigned[cand.field] = true
				break
			}
		}
	}

	return result
}

// Apply resolves one RawRow into canonical field -> value. Inference always
// runs first as the baseline; a nonempty user ColumnMap's Direct entries
// then override inference for the sources they name, and Concat rules are
// layered on top, per spec §4.3 ("Direct entries override inference for
// named sources").
func Apply(row model.RawRow, userMap *model.ColumnMap) map[string]string {
	out := make(map[string]string, len(row.Headers))

	inferred := Infer(row.Headers)
	for i, field := range inferred {
		if i < len(row.Values) {
			out[field] = row.Values[i]
		}
	}

	if userMap.IsEmpty() {
		return out
	}

	// Direct entries: last-write-wins by source-header (CSV column) order,
	// per spec §4.3/§9 — callers who break the uniqueness invariant get the
	// later header's value, the engine does not flag it.
	for i, h := range row.Headers {
		if field, ok := userMap.Direct[h]; ok {
			if i < len(row.Values) {
				out[field] = row.Values[i]
			}
		}
	}

	// Concat entries: join nonempty source values in declared order.
	for _, rule := range userMap.Concat {
		var parts []string
		for _, src := range rule.SourceHeaders {
			v := row.Get(src)
			if v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) > 0 {
			out[rule.TargetField] = strings.Join(parts, rule.Separator)
		}
	}

	return out
}

// AdminInfo collects the raw-row values whose original header matches
// case-insensitive /admin/, sorted by header name and joined with "; ",
// per spec §4.4.2.
func AdminInfo(row model.RawRow) string {
	type pair struct{ header, value string }
	var hits []pair
	for i, h := range row.Headers {
		if !strings.Contains(strings.ToLower(h), "admin") {
			continue
		}
		if i >= len(row.Values) {
			continue
		}
		v := row.Values[i]
		if v == "" {
			continue
		}
		hits = append(hits, pair{h, v})
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].header < hits[j].header })

	values := make([]string, len(hits))
	for i, p := range hits {
		values[i] = p.value
	}
	return strings.Join(values, "; ")
}
