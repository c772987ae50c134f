// Package model holds the canonical identity data shapes shared across the
// encoding, parsing, normalization, indexing, joining, and scoring stages.
// It exists as its own package (rather than living in the root package) so
// every internal stage can depend on the shapes without creating an import
// cycle back to the façade.
package model

// RawRow is an ordered sequence of (header, value) pairs produced by the
// CSV parser for one data row. Header order is significant for admin-field
// collection; value order is not.
type RawRow struct {
	Headers []string
	Values  []string
	// RowNumber is the 1-indexed data row number (header is row 0).
	RowNumber int
}

// Get returns the stored value for the given header (case-sensitive,
// first occurrence wins), or "" if the header isn't present in this row.
// It does not trim; rows built by the CSV parser already hold trimmed
// values.
func (r RawRow) Get(header string) string {
	for i, h := range r.Headers {
		if h == header {
			if i < len(r.Values) {
				return r.Values[i]
			}
			return ""
		}
	}
	return ""
}

// ConcatRule joins nonempty values from an ordered list of source headers
// with a separator into a single target field.
type ConcatRule struct {
	SourceHeaders []string
	Separator     string
	TargetField   string
}

// ColumnMap configures how RawRow headers map onto canonical field names.
// Direct holds source-header -> canonical-field-name entries (last write
// wins on duplicate canonical targets, per spec). Concat holds ordered
// multi-source join rules. A nil or empty ColumnMap means "use inference".
type ColumnMap struct {
	Direct map[string]string
	Concat []ConcatRule
}

func (c *ColumnMap) IsEmpty() bool {
	return c == nil || (len(c.Direct) == 0 && len(c.Concat) == 0)
}

// SoTRecord is the canonical identity built from one Source-of-Truth row.
type SoTRecord struct {
	CanonicalID      string
	EmployeeID       string
	DisplayName      string
	Email            string
	Department       string
	Manager          string
	EmploymentStatus string
	NormalizedName   string
	AdminInfo        string

	// RawHeaderOrder preserves the original header order of the row this
	// record was built from, for diagnostics only — it participates in no
	// lookup key.
	RawHeaderOrder []string
}

// SatelliteRecord is an observed-access row from a downstream system.
type SatelliteRecord struct {
	Email         string
	UserID        string
	DisplayName   string
	Department    string
	Manager       string
	Role          string
	Entitlement   string
	LastLogin     string
	AccountStatus string

	SourceFile string
	SourceRow  int

	// RowWarnings carries parser warnings (§4.2) scoped to the specific row
	// that produced this record.
	RowWarnings []string
}

// MatchType classifies how (or whether) a satellite row was tied to a SoT
// record. String values are stable per spec §6 and must never change.
type MatchType string

const (
	MatchExactEmail     MatchType = "exact_email"
	MatchExactID        MatchType = "exact_id"
	MatchFuzzyName      MatchType = "fuzzy_name"
	MatchFuzzyAmbiguous MatchType = "fuzzy_ambiguous"
	MatchOrphan         MatchType = "orphan"
	// MatchNoAccess is never emitted by the engine; it is reserved for the
	// external caller's report-merge step (spec §6).
	MatchNoAccess MatchType = "no_access"
)

// Conflict is a single field-level divergence between a SoT record and a
// matched satellite record. The authoritative (SoT) side always wins.
type Conflict struct {
	Field          string
	SoTValue       string
	SatelliteValue string
	Resolution     string // always "sot_wins"
}

// Matched is one successfully joined satellite row.
type Matched struct {
	SoT       *SoTRecord
	Satellite SatelliteRecord
	MatchType MatchType
	Conflicts []Conflict
	Risk      RiskFinding
}

// Orphan is a satellite row with no SoT match on any cascade level.
type Orphan struct {
	Satellite     SatelliteRecord
	AttemptedKeys []string
	Risk          RiskFinding
}

// JoinStats counts cascade outcomes for one satellite file.
type JoinStats struct {
	Total          int
	ExactEmail     int
	ExactID        int
	FuzzyName      int
	FuzzyAmbiguous int
	Orphans        int
}

// JoinResult is the per-satellite-file output of the join cascade.
type JoinResult struct {
	SystemName string
	Matched    []Matched
	Orphans    []Orphan
	Stats      JoinStats
	// Warnings carries every parser-level issue (spec §4.2/§7) of the file:
	// those of rows dropped entirely by a hard parse error, and also those
	// of padded/truncated rows, which additionally appear in the
	// RowWarnings of the record built from that row.
	Warnings []string
}

// IndexStats summarizes the records folded into a SoTIndex.
type IndexStats struct {
	TotalRecords int
	Active       int
	Terminated   int
	UniqueEmails int
}

// RiskLevel is an uppercase risk classification. String values are stable
// per spec §6.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
	RiskInfo     RiskLevel = "INFO"
)

// RiskFinding is the scored outcome for one matched pair or orphan.
type RiskFinding struct {
	Level RiskLevel
	Score int
	Rule  string
}
