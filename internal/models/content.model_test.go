package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowsCyclePhase(t *testing.T) {
	agnostic := &ContentItem{}
	for _, phase := range []CyclePhase{
		CyclePhaseMenstrual,
		CyclePhaseFollicular,
		CyclePhaseOvulatory,
		CyclePhaseLuteal,
	} {
		assert.True(t, agnostic.AllowsCyclePhase(phase), "empty phase set should be phase-agnostic")
	}

	lutealOnly := &ContentItem{CyclePhases: []CyclePhase{CyclePhaseLuteal}}
	assert.True(t, lutealOnly.AllowsCyclePhase(CyclePhaseLuteal))
	assert.False(t, lutealOnly.AllowsCyclePhase(CyclePhaseFollicular))
}

func TestAllowsPregnancyIsStrict(t *testing.T) {
	testCases := []struct {
		name     string
		statuses []string
		allowed  bool
	}{
		{"no statuses", nil, false},
		{"exact tag", []string{"pregnant"}, true},
		{"among others", []string{"postpartum", "pregnant"}, true},
		{"near miss", []string{"pregnancy-safe", "prenatal"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := &ContentItem{PregnancyStatuses: tc.statuses}
			assert.Equal(t, tc.allowed, item.AllowsPregnancy())
		})
	}
}

func TestAllowsTrimester(t *testing.T) {
	unrestricted := &ContentItem{}
	assert.True(t, unrestricted.AllowsTrimester(1))
	assert.True(t, unrestricted.AllowsTrimester(3))

	restricted := &ContentItem{Trimesters: []int{1, 2}}
	assert.True(t, restricted.AllowsTrimester(2))
	assert.False(t, restricted.AllowsTrimester(3))
}

func TestIsTridoshic(t *testing.T) {
	assert.False(t, (&ContentItem{}).IsTridoshic())
	assert.False(t, (&ContentItem{Doshas: []Dosha{DoshaVata, DoshaPitta}}).IsTridoshic())
	assert.True(
		t,
		(&ContentItem{Doshas: []Dosha{DoshaVata, DoshaPitta, DoshaKapha}}).IsTridoshic(),
	)
}

func TestLifeStageClassification(t *testing.T) {
	assert.True(t, LifeStageCycleChanges.IsInBetween())
	assert.True(t, LifeStagePeriMenopause.IsInBetween())
	assert.False(t, LifeStageRegularCycle.IsInBetween())
	assert.False(t, LifeStageMenopause.IsInBetween())

	assert.True(t, LifeStageRegularCycle.IsCycling())
	assert.False(t, LifeStageCycleChanges.IsCycling())

	assert.True(t, LifeStagePregnancy.IsPregnancy())
	assert.False(t, LifeStagePostpartum.IsPregnancy())
}
