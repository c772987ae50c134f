package joincascade

import (
	"testing"

	"github.com/lighthouse-iam/uar-engine/internal/model"
	"github.com/lighthouse-iam/uar-engine/internal/sotindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildIndex(recs ...model.SoTRecord) *sotindex.Index {
	return sotindex.Build(recs)
}

func TestClassify_ExactEmailWins(t *testing.T) {
	idx := buildIndex(model.SoTRecord{Email: "a@x.com", EmployeeID: "E1", NormalizedName: "alice smith"})
	sat := model.SatelliteRecord{Email: "a@x.com", UserID: "nomatch", DisplayName: "someone else"}

	matched, orphan := classify(idx, sat)

	require.NotNil(t, matched)
	assert.Nil(t, orphan)
	assert.Equal(t, model.MatchExactEmail, matched.MatchType)
}

func TestClassify_ExactIDChecksSatelliteUserIDAgainstEmployeeID(t *testing.T) {
	idx := buildIndex(model.SoTRecord{EmployeeID: "E42", NormalizedName: "bob jones"})
	sat := model.SatelliteRecord{UserID: "E42", DisplayName: "unrelated"}

	matched, orphan := classify(idx, sat)

	require.NotNil(t, matched)
	assert.Nil(t, orphan)
	assert.Equal(t, model.MatchExactID, matched.MatchType)
}

func TestClassify_FuzzyNameClearWinner(t *testing.T) {
	idx := buildIndex(
		model.SoTRecord{NormalizedName: "katherine johnson"},
		model.SoTRecord{NormalizedName: "bob jones"},
	)
	sat := model.SatelliteRecord{DisplayName: "Katherine Johnsen"}

	matched, orphan := classify(idx, sat)

	require.NotNil(t, matched)
	assert.Nil(t, orphan)
	assert.Equal(t, model.MatchFuzzyName, matched.MatchType)
}

func TestClassify_FuzzyAmbiguousWhenTiedWithinGap(t *testing.T) {
	idx := buildIndex(
		model.SoTRecord{NormalizedName: "jon smith"},
		model.SoTRecord{NormalizedName: "john smith"},
	)
	sat := model.SatelliteRecord{DisplayName: "jomn smith"}

	matched, orphan := classify(idx, sat)

	require.NotNil(t, matched)
	assert.Nil(t, orphan)
	assert.Equal(t, model.MatchFuzzyAmbiguous, matched.MatchType)
}

func TestClassify_OrphanWhenNoMatch(t *testing.T) {
	idx := buildIndex(model.SoTRecord{Email: "a@x.com", NormalizedName: "alice smith"})
	sat := model.SatelliteRecord{Email: "nobody@x.com", DisplayName: "completely different person"}

	matched, orphan := classify(idx, sat)

	assert.Nil(t, matched)
	require.NotNil(t, orphan)
	assert.NotEmpty(t, orphan.AttemptedKeys)
}

func TestJoin_TalliesStats(t *testing.T) {
	idx := buildIndex(model.SoTRecord{Email: "a@x.com", NormalizedName: "alice smith"})
	satellites := []model.SatelliteRecord{
		{Email: "a@x.com"},
		{Email: "nobody@x.com", DisplayName: "nobody at all"},
	}

	result := Join(idx, satellites, "okta")

	assert.Equal(t, "okta", result.SystemName)
	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 1, result.Stats.ExactEmail)
	assert.Equal(t, 1, result.Stats.Orphans)
}
