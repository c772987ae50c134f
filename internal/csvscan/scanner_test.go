package csvscan

import (
	"errors"
	"testing"

	"github.com/lighthouse-iam/uar-engine/testsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_WellFormedCSV(t *testing.T) {
	raw := testsupport.CSV(
		[]string{"email", "name"},
		[][]string{{"a@x.com", "Alice"}, {"b@x.com", "Bob"}},
	)

	result, err := Scan(raw)

	require.NoError(t, err)
	assert.Equal(t, []string{"email", "name"}, result.Header)
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "a@x.com", result.Rows[0].Get("email"))
	assert.Empty(t, result.Warnings)
}

func TestScan_RaggedRowPaddedWithWarning(t *testing.T) {
	raw := "email,name,role\na@x.com,Alice\n"

	result, err := Scan([]byte(raw))

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "", result.Rows[0].Get("role"))
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "padding")
}

func TestScan_RaggedRowTruncatedWithWarning(t *testing.T) {
	raw := "email,name\na@x.com,Alice,extra\n"

	result, err := Scan([]byte(raw))

	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0].Message, "truncating")
}

func TestScan_EmptyFile(t *testing.T) {
	_, err := Scan([]byte(""))

	assert.True(t, errors.Is(err, ErrEmptyFile))
}

func TestScan_NoDataRows(t *testing.T) {
	_, err := Scan([]byte("email,name\n"))

	assert.True(t, errors.Is(err, ErrNoDataRows))
}

func TestScan_TrimsFields(t *testing.T) {
	raw := "email,name\n  a@x.com  , Alice \n"

	result, err := Scan([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", result.Rows[0].Get("email"))
	assert.Equal(t, "Alice", result.Rows[0].Get("name"))
}
