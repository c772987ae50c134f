// Package conflict detects field-level divergence between a matched SoT
// record and its satellite counterpart. The SoT side is authoritative and
// is never considered "wrong" — every finding resolves with "sot_wins".
package conflict

import (
	"strings"

	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// fieldCheck describes one symmetric comparison: display_name is the only
// field spec'd by default (§4.7); department and manager are added per the
// Open Question in spec §9 inviting symmetric extension once the
// satellite side carries them.
type fieldCheck struct {
	name string
	sot  func(model.SoTRecord) string
	sat  func(model.SatelliteRecord) string
}

var checks = []fieldCheck{
	{
		name: "display_name",
		sot:  func(r model.SoTRecord) string { return r.DisplayName },
		sat:  func(r model.SatelliteRecord) string { return r.DisplayName },
	},
	{
		name: "department",
		sot:  func(r model.SoTRecord) string { return r.Department },
		sat:  func(r model.SatelliteRecord) string { return r.Department },
	},
	{
		name: "manager",
		sot:  func(r model.SoTRecord) string { return r.Manager },
		sat:  func(r model.SatelliteRecord) string { return r.Manager },
	},
}

// Detect compares a matched pair field by field and returns the conflicts
// found, per spec §4.7: compare trimmed, case-insensitive values only when
// both sides are nonempty; on divergence, emit a finding with resolution
// "sot_wins"; fields the satellite doesn't carry are skipped.
func Detect(sot model.SoTRecord, sat model.SatelliteRecord) []model.Conflict {
	var conflicts []model.Conflict

	for _, c := range checks {
		sotVal := strings.TrimSpace(c.sot(sot))
		satVal := strings.TrimSpace(c.sat(sat))
		if sotVal == "" || satVal == "" {
			continue
		}
		if !strings.EqualFold(sotVal, satVal) {
			conflicts = append(conflicts, model.Conflict{
				Field:          c.name,
				SoTValue:       sotVal,
				SatelliteValue: satVal,
				Resolution:     "sot_wins",
			})
		}
	}

	return conflicts
}
