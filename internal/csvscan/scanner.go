// Package csvscan provides a forgiving, RFC-4180-ish row iterator over an
// already-UTF-8 CSV byte slice. It tolerates ragged rows (padding or
// truncating against the header) and skips unreadable rows, collecting a
// warning for each rather than aborting — real enterprise CSV exports are
// full of small irregularities and the parser's job is to be a best-effort
// producer of records, not a strict validator.
package csvscan

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lighthouse-iam/uar-engine/internal/model"
)

// Sentinel errors distinguishing the hard-failure cases of Scan, so
// callers can classify via errors.Is instead of matching message text.
var (
	ErrEmptyFile  = errors.New("no header row")
	ErrHeaderRead = errors.New("failed to read header row")
	ErrNoDataRows = errors.New("header present but no usable data rows")
)

// Warning is a single non-fatal parse issue, positioned by data-row number
// (header is row 0, first data row is row 1).
type Warning struct {
	Row     int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}

// Result is the outcome of scanning one CSV document.
type Result struct {
	Header   []string
	Rows     []model.RawRow
	Warnings []Warning
}

// Scan parses UTF-8 CSV bytes into a header plus a list of RawRows, in the
// forgiving style described in spec §4.2. It fails only when there is no
// header row at all, or when no data row was kept (there were none, or
// every one was skipped as unreadable). Padded or truncated rows produce a
// warning but are kept.
func Scan(utf8Bytes []byte) (Result, error) {
	reader := csv.NewReader(strings.NewReader(string(utf8Bytes)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = false // we trim ourselves, including trailing whitespace

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Result{}, ErrEmptyFile
		}
		return Result{}, fmt.Errorf("%w: %s", ErrHeaderRead, err)
	}
	if len(header) == 0 {
		return Result{}, ErrEmptyFile
	}
	for i, h := range header {
		header[i] = trimField(h)
	}

	result := Result{Header: header}
	rowNum := 0

	for {
		rowNum++
		fields, err := reader.Read()
		if fields == nil && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			result.Warnings = append(result.Warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("unreadable row, skipped: %s", err),
			})
			continue
		}

		for i := range fields {
			fields[i] = trimField(fields[i])
		}

		if len(fields) < len(header) {
			result.Warnings = append(result.Warnings, Warning{
				Row: rowNum,
				Message: fmt.Sprintf("row %d has %d columns, expected %d; padding…",
					rowNum, len(fields), len(header)),
			})
			for len(fields) < len(header) {
				fields = append(fields, "")
			}
		} else if len(fields) > len(header) {
			result.Warnings = append(result.Warnings, Warning{
				Row: rowNum,
				Message: fmt.Sprintf("row %d has %d columns, expected %d; truncating…",
					rowNum, len(fields), len(header)),
			})
			fields = fields[:len(header)]
		}

		result.Rows = append(result.Rows, model.RawRow{
			Headers:   header,
			Values:    fields,
			RowNumber: rowNum,
		})
	}

	if len(result.Rows) == 0 {
		return result, ErrNoDataRows
	}

	return result, nil
}

func trimField(s string) string {
	return strings.Trim(s, " \t\r\n")
}
