package sotindex

import (
	"testing"

	"github.com/lighthouse-iam/uar-engine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() []model.SoTRecord {
	return []model.SoTRecord{
		{CanonicalID: "a@x.com", Email: "a@x.com", EmployeeID: "E1", NormalizedName: "alice smith", EmploymentStatus: "active"},
		{CanonicalID: "b@x.com", Email: "b@x.com", EmployeeID: "E2", NormalizedName: "bob jones", EmploymentStatus: "terminated"},
		// Duplicate email: first occurrence wins.
		{CanonicalID: "a@x.com", Email: "a@x.com", EmployeeID: "E3", NormalizedName: "alice smith impostor", EmploymentStatus: "active"},
	}
}

func TestBuild_FirstOccurrenceWinsOnEmail(t *testing.T) {
	idx := Build(sample())

	rec, ok := idx.ByEmail["a@x.com"]
	require.True(t, ok)
	assert.Equal(t, "E1", rec.EmployeeID)
}

func TestBuild_Stats(t *testing.T) {
	idx := Build(sample())

	assert.Equal(t, 3, idx.Stats.TotalRecords)
	assert.Equal(t, 1, idx.Stats.Terminated)
	assert.Equal(t, 2, idx.Stats.Active)
	assert.Equal(t, 2, idx.Stats.UniqueEmails)
}

func TestBuild_ByNamePreservesAllOccurrences(t *testing.T) {
	recs := append(sample(), model.SoTRecord{CanonicalID: "E4", EmployeeID: "E4", NormalizedName: "alice smith", EmploymentStatus: "active"})
	idx := Build(recs)

	require.Len(t, idx.ByName["alice smith"], 2)
	assert.Equal(t, "E1", idx.ByName["alice smith"][0].EmployeeID)
	assert.Equal(t, "E4", idx.ByName["alice smith"][1].EmployeeID)
}

func TestNameKeys_SortedAndDistinct(t *testing.T) {
	idx := Build(sample())

	keys := idx.NameKeys()

	assert.Equal(t, []string{"alice smith", "alice smith impostor", "bob jones"}, keys)
}

func TestSerializeDeserialize_RoundTrip(t *testing.T) {
	idx := Build(sample())

	wire, err := idx.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(wire)
	require.NoError(t, err)

	assert.Equal(t, idx.Stats, restored.Stats)
	rec, ok := restored.ByEmail["a@x.com"]
	require.True(t, ok)
	assert.Equal(t, "E1", rec.EmployeeID)
	assert.Equal(t, idx.NameKeys(), restored.NameKeys())
}
