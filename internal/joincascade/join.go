// Package joincascade implements the prioritized match cascade (exact
// email -> exact id -> fuzzy name -> orphan) described in spec §4.6.
package joincascade

import (
	"fmt"
	"sort"

	"github.com/lighthouse-iam/uar-engine/internal/fuzzy"
	"github.com/lighthouse-iam/uar-engine/internal/model"
	"github.com/lighthouse-iam/uar-engine/internal/normalize"
	"github.com/lighthouse-iam/uar-engine/internal/sotindex"
)

const (
	// matchThreshold (T) is the minimum similarity score accepted as a
	// fuzzy match.
	matchThreshold = 0.85
	// ambiguityGap (G) is the minimum separation between the best and
	// second-best fuzzy score required to call a clear winner.
	ambiguityGap = 0.10
	// unscoredCap (M) short-circuits scoring when an exact normalized-key
	// hit has more than this many candidates.
	unscoredCap = 10
)

// candidate pairs a distinct normalized-name key with the similarity score
// of the query against it, for the sort/gap logic shared by the exact-key
// and broad-search branches.
type candidate struct {
	key     string
	records []*model.SoTRecord
	score   float64
}

// Join runs the cascade over every satellite record against idx and
// returns the per-file JoinResult, in input-row order.
func Join(idx *sotindex.Index, satellites []model.SatelliteRecord, systemName string) model.JoinResult {
	result := model.JoinResult{SystemName: systemName}

	for _, sat := range satellites {
		matched, orphan := classify(idx, sat)
		result.Stats.Total++

		if matched != nil {
			result.Matched = append(result.Matched, *matched)
			switch matched.MatchType {
			case model.MatchExactEmail:
				result.Stats.ExactEmail++
			case model.MatchExactID:
				result.Stats.ExactID++
			case model.MatchFuzzyName:
				result.Stats.FuzzyName++
			case model.MatchFuzzyAmbiguous:
				result.Stats.FuzzyAmbiguous++
			}
			continue
		}

		result.Orphans = append(result.Orphans, *orphan)
		result.Stats.Orphans++
	}

	return result
}

func classify(idx *sotindex.Index, sat model.SatelliteRecord) (*model.Matched, *model.Orphan) {
	var attempted []string

	// 1. Exact email.
	if sat.Email != "" {
		attempted = append(attempted, fmt.Sprintf("email:%s", sat.Email))
		if rec, ok := idx.ByEmail[sat.Email]; ok {
			return &model.Matched{SoT: rec, Satellite: sat, MatchType: model.MatchExactEmail}, nil
		}
	}

	// 2. Exact id: the satellite's user_id is treated as a candidate
	// employee id, per spec §9's deliberate cross-check.
	if sat.UserID != "" {
		attempted = append(attempted, fmt.Sprintf("employeeId:%s", sat.UserID))
		if rec, ok := idx.ByEmployeeID[sat.UserID]; ok {
			return &model.Matched{SoT: rec, Satellite: sat, MatchType: model.MatchExactID}, nil
		}
	}

	// 3. Fuzzy name.
	if sat.DisplayName != "" {
		norm := normalize.Name(sat.DisplayName)
		attempted = append(attempted, fmt.Sprintf("name:%s", norm))

		if mt, rec, ok := fuzzyMatch(idx, norm); ok {
			return &model.Matched{SoT: rec, Satellite: sat, MatchType: mt}, nil
		}
	}

	// 4. Orphan.
	return nil, &model.Orphan{Satellite: sat, AttemptedKeys: attempted}
}

// fuzzyMatch implements the fuzzy procedure of spec §4.6, returning the
// bound SoT record and whether a match (fuzzy_name or fuzzy_ambiguous) was
// found at all.
func fuzzyMatch(idx *sotindex.Index, norm string) (model.MatchType, *model.SoTRecord, bool) {
	if recs, exact := idx.ByName[norm]; exact {
		if len(recs) > unscoredCap {
			return model.MatchFuzzyAmbiguous, recs[0], true
		}
		if len(recs) == 1 {
			if fuzzy.Similarity(norm, recs[0].NormalizedName) >= matchThreshold {
				return model.MatchFuzzyName, recs[0], true
			}
			return "", nil, false
		}
		return resolveCandidates(scoreAll(norm, []candidate{{key: norm, records: recs}}))
	}

	// Broad search: score against every distinct normalized name.
	var cands []candidate
	for _, key := range idx.NameKeys() {
		score := fuzzy.Similarity(norm, key)
		if score >= matchThreshold {
			cands = append(cands, candidate{key: key, records: idx.ByName[key], score: score})
		}
	}
	if len(cands) == 0 {
		return "", nil, false
	}
	if len(cands) == 1 {
		return model.MatchFuzzyName, cands[0].records[0], true
	}
	return resolveCandidates(cands)
}

// scoreAll scores every record within a single exact-key candidate group
// against norm, producing one candidate entry per record so the
// multi-winner/gap logic operates uniformly whether the group came from an
// exact-key hit (multiple records, same key) or a broad search (multiple
// keys).
func scoreAll(norm string, groups []candidate) []candidate {
	var out []candidate
	for _, g := range groups {
		for _, rec := range g.records {
			out = append(out, candidate{key: g.key, records: []*model.SoTRecord{rec}, score: fuzzy.Similarity(norm, rec.NormalizedName)})
		}
	}
	return out
}

// resolveCandidates sorts scored candidates descending (stable, so ties
// keep their insertion/traversal order per spec §4.6 Determinism) and
// applies the threshold/gap decision.
func resolveCandidates(cands []candidate) (model.MatchType, *model.SoTRecord, bool) {
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].score > cands[j].score })

	top := cands[0]
	if top.score < matchThreshold {
		return "", nil, false
	}
	if len(cands) == 1 {
		return model.MatchFuzzyName, top.records[0], true
	}

	second := cands[1]
	if top.score-second.score >= ambiguityGap {
		return model.MatchFuzzyName, top.records[0], true
	}
	return model.MatchFuzzyAmbiguous, top.records[0], true
}
