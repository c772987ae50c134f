// Package uarengine is the identity-resolution and risk-scoring engine for
// a User Access Review workflow (spec §1). Given one authoritative
// Source-of-Truth roster and one or more satellite exports, it parses,
// normalizes, indexes, joins, and scores records. The package is a pure
// transformation: it performs no I/O beyond consuming byte slices and
// returning result structures, and it emits no telemetry.
package uarengine

import (
	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// Public data-model aliases (spec §3). These are defined in internal/model
// so every pipeline stage can share them without an import cycle back to
// this façade package; the root package re-exports them as the stable
// public API.
type (
	RawRow          = model.RawRow
	ColumnMap       = model.ColumnMap
	ConcatRule      = model.ConcatRule
	SoTRecord       = model.SoTRecord
	SatelliteRecord = model.SatelliteRecord
	MatchType       = model.MatchType
	Conflict        = model.Conflict
	Matched         = model.Matched
	Orphan          = model.Orphan
	JoinStats       = model.JoinStats
	JoinResult      = model.JoinResult
	IndexStats      = model.IndexStats
	RiskLevel       = model.RiskLevel
	RiskFinding     = model.RiskFinding
)

const (
	MatchExactEmail     = model.MatchExactEmail
	MatchExactID        = model.MatchExactID
	MatchFuzzyName      = model.MatchFuzzyName
	MatchFuzzyAmbiguous = model.MatchFuzzyAmbiguous
	MatchOrphan         = model.MatchOrphan
	MatchNoAccess       = model.MatchNoAccess

	RiskCritical = model.RiskCritical
	RiskHigh     = model.RiskHigh
	RiskMedium   = model.RiskMedium
	RiskLow      = model.RiskLow
	RiskInfo     = model.RiskInfo
)
