package conflict

import (
	"testing"

	"github.com/lighthouse-iam/uar-engine/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_NoConflictWhenEqualIgnoringCaseAndSpace(t *testing.T) {
	sot := model.SoTRecord{DisplayName: "Alice Smith", Department: "Engineering"}
	sat := model.SatelliteRecord{DisplayName: " alice smith ", Department: "ENGINEERING"}

	got := Detect(sot, sat)

	assert.Empty(t, got)
}

func TestDetect_FlagsDivergentDisplayName(t *testing.T) {
	sot := model.SoTRecord{DisplayName: "Alice Smith"}
	sat := model.SatelliteRecord{DisplayName: "Alicia Smith"}

	got := Detect(sot, sat)

	require.Len(t, got, 1)
	assert.Equal(t, "display_name", got[0].Field)
	assert.Equal(t, "sot_wins", got[0].Resolution)
}

func TestDetect_SkipsFieldWhenEitherSideEmpty(t *testing.T) {
	sot := model.SoTRecord{Department: "Engineering"}
	sat := model.SatelliteRecord{Department: ""}

	got := Detect(sot, sat)

	assert.Empty(t, got)
}

func TestDetect_FlagsDivergentManager(t *testing.T) {
	sot := model.SoTRecord{Manager: "Carol Lee"}
	sat := model.SatelliteRecord{Manager: "Dave Lee"}

	got := Detect(sot, sat)

	require.Len(t, got, 1)
	assert.Equal(t, "manager", got[0].Field)
}
