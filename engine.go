package uarengine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lighthouse-iam/uar-engine/internal/conflict"
	"github.com/lighthouse-iam/uar-engine/internal/csvscan"
	uarencoding "github.com/lighthouse-iam/uar-engine/internal/encoding"
	"github.com/lighthouse-iam/uar-engine/internal/joincascade"
	"github.com/lighthouse-iam/uar-engine/internal/model"
	"github.com/lighthouse-iam/uar-engine/internal/normalize"
	"github.com/lighthouse-iam/uar-engine/internal/risk"
	"github.com/lighthouse-iam/uar-engine/internal/sotindex"
)

// Engine is a single worker-instance boundary (spec §5/§9): it owns at
// most one SoT index as process-wide state, uninitialized until ParseSoT
// or LoadIndex succeeds, and replaced wholesale by any later call. It is
// not safe for concurrent mutation (LoadIndex/ParseSoT racing with each
// other), but concurrent ParseSatellite calls after a load are safe since
// the index is read-only after construction (spec §5 Shared-resource
// policy). This mirrors the teacher's Deployable value type: a value
// constructed once, then queried through explicit methods, with a single
// piece of cached state (deployable.go's `uploaded map[DB]struct{}`, here
// a single *sotindex.Index).
type Engine struct {
	index *sotindex.Index
}

// New returns an uninitialized Engine.
func New() *Engine {
	return &Engine{}
}

// SoTParseResult is the success envelope of ParseSoT (spec §6).
type SoTParseResult struct {
	Stats           IndexStats
	SerializedIndex string
	Warnings        []string
}

// ParseSoT parses a Source-of-Truth CSV export, builds the index, and
// installs it on this Engine instance. columnMap may be nil (use
// inference). On success it also returns the index in serialized form so
// it can be shipped to another, memory-isolated Engine instance via
// LoadIndex.
func (e *Engine) ParseSoT(csvBytes []byte, colMap *ColumnMap) (SoTParseResult, error) {
	rows, warnings, _, err := scanRows(csvBytes)
	if err != nil {
		return SoTParseResult{}, err
	}

	records := make([]model.SoTRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, normalize.SoTRecord(row, colMap))
	}

	idx := sotindex.Build(records)

	serialized, err := idx.Serialize()
	if err != nil {
		return SoTParseResult{}, fmt.Errorf("serialize index: %w", err)
	}
	e.index = idx

	return SoTParseResult{
		Stats:           idx.Stats,
		SerializedIndex: serialized,
		Warnings:        warnings,
	}, nil
}

// LoadIndex installs a previously serialized index (§4.5 serialization
// contract) onto this Engine instance, for use in a fresh worker that
// cannot share memory with the instance that built it.
func (e *Engine) LoadIndex(serialized string) error {
	idx, err := sotindex.Deserialize(serialized)
	if err != nil {
		return wrapError(ErrDeserializeIndex, "%s", err)
	}
	e.index = idx
	return nil
}

// RiskOptions configures the risk scorer (spec §4.8). A zero value is
// valid: ProcessingTime defaults to time.Now(), and the dormancy/
// privileged-keyword fields default per risk.DefaultDormancyDays /
// risk.DefaultPrivilegedKeywords.
type RiskOptions struct {
	ProcessingTime     time.Time
	DormancyDays       int
	PrivilegedKeywords []string
}

// ParseSatellite parses one satellite CSV export, joins it against the
// previously loaded/built index, detects field conflicts, scores risk,
// and returns the per-file JoinResult (spec §4.6-§4.9). It requires that
// ParseSoT or LoadIndex already succeeded on this instance.
//
// ctx is honored cooperatively between satellite rows (spec §5 permits,
// but never requires, progress checks); a context.Background() is always
// a valid argument.
func (e *Engine) ParseSatellite(ctx context.Context, csvBytes []byte, systemName string, colMap *ColumnMap, opts *RiskOptions) (JoinResult, error) {
	if e.index == nil {
		return JoinResult{}, ErrPreconditionIndex
	}

	rows, warnings, rowWarnings, err := scanRows(csvBytes)
	if err != nil {
		return JoinResult{}, err
	}

	satellites := make([]model.SatelliteRecord, 0, len(rows))
	for _, row := range rows {
		if ctx.Err() != nil {
			return JoinResult{}, ctx.Err()
		}
		satellites = append(satellites, normalize.SatelliteRecord(row, colMap, systemName, rowWarnings[row.RowNumber]))
	}

	result := joincascade.Join(e.index, satellites, systemName)
	result.Warnings = warnings

	if opts == nil {
		opts = &RiskOptions{}
	}
	now := opts.ProcessingTime
	if now.IsZero() {
		now = time.Now()
	}

	for i := range result.Matched {
		m := &result.Matched[i]
		m.Conflicts = conflict.Detect(*m.SoT, m.Satellite)
		m.Risk = risk.Score(m.SoT, m.Satellite, m.MatchType, now, opts.DormancyDays, opts.PrivilegedKeywords)
	}
	for i := range result.Orphans {
		o := &result.Orphans[i]
		o.Risk = risk.Score(nil, o.Satellite, model.MatchOrphan, now, opts.DormancyDays, opts.PrivilegedKeywords)
	}

	return result, nil
}

// scanRows decodes raw bytes to UTF-8, scans them into RawRows, and
// translates parser failures into the taxonomy of spec §7. Alongside the
// flat, file-scoped warning list it also returns rowWarnings, the same
// warnings grouped by the data-row number (model.RawRow.RowNumber) that
// produced each one, so a row's own warnings can travel with the record
// built from it (spec §3's RowWarnings field).
func scanRows(raw []byte) (rows []model.RawRow, warnings []string, rowWarnings map[int][]string, err error) {
	utf8Bytes, _ := uarencoding.DetectAndDecode(raw)

	result, err := csvscan.Scan(utf8Bytes)
	if err != nil {
		switch {
		case errors.Is(err, csvscan.ErrEmptyFile):
			return nil, nil, nil, wrapError(ErrEmptyFile, "%s", err)
		case errors.Is(err, csvscan.ErrNoDataRows):
			return nil, nil, nil, wrapError(ErrNoDataRows, "%s", err)
		default:
			return nil, nil, nil, wrapError(ErrHeaderRead, "%s", err)
		}
	}

	warnings = make([]string, 0, len(result.Warnings))
	rowWarnings = make(map[int][]string, len(result.Warnings))
	for _, w := range result.Warnings {
		warnings = append(warnings, w.String())
		rowWarnings[w.Row] = append(rowWarnings[w.Row], w.Message)
	}

	return result.Rows, warnings, rowWarnings, nil
}

