// Package sotindex builds and serializes the three-way Source-of-Truth
// index the join cascade matches satellite records against.
package sotindex

import (
	"sort"

	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// Index is the immutable-after-construction SoT directory described in
// spec §4.5. It exclusively owns its SoTRecords; callers reading through
// ByEmail/ByEmployeeID/ByName get shared/read-only references.
type Index struct {
	ByEmail      map[string]*model.SoTRecord
	ByEmployeeID map[string]*model.SoTRecord
	ByName       map[string][]*model.SoTRecord

	// Records is the original insertion-order record list, retained so the
	// index can be serialized (§4.5) and rebuilt with the same lookup
	// outcomes.
	Records []model.SoTRecord

	Stats model.IndexStats
}

// Build constructs an Index from an ordered sequence of SoTRecords,
// applying the first-occurrence-wins / insertion-order-preserved rules of
// spec §4.5.
func Build(records []model.SoTRecord) *Index {
	idx := &Index{
		ByEmail:      make(map[string]*model.SoTRecord),
		ByEmployeeID: make(map[string]*model.SoTRecord),
		ByName:       make(map[string][]*model.SoTRecord),
		Records:      records,
	}

	for i := range records {
		rec := &idx.Records[i]

		if rec.Email != "" {
			if _, exists := idx.ByEmail[rec.Email]; !exists {
				idx.ByEmail[rec.Email] = rec
			}
		}
		if rec.EmployeeID != "" {
			if _, exists := idx.ByEmployeeID[rec.EmployeeID]; !exists {
				idx.ByEmployeeID[rec.EmployeeID] = rec
			}
		}
		if rec.NormalizedName != "" {
			idx.ByName[rec.NormalizedName] = append(idx.ByName[rec.NormalizedName], rec)
		}

		idx.Stats.TotalRecords++
		if rec.EmploymentStatus == "terminated" {
			idx.Stats.Terminated++
		} else {
			idx.Stats.Active++
		}
	}
	idx.Stats.UniqueEmails = len(idx.ByEmail)

	return idx
}

// NameKeys returns the distinct normalized-name keys in sorted order, for
// deterministic broad-scan iteration during fuzzy matching (spec §4.6
// Determinism).
func (idx *Index) NameKeys() []string {
	keys := make([]string, 0, len(idx.ByName))
	for k := range idx.ByName {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
