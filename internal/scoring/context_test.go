package scoring

import (
	"testing"

	"lunara/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewProfileContextDerivesInBetween(t *testing.T) {
	testCases := []struct {
		stage     models.LifeStage
		inBetween bool
	}{
		{models.LifeStageRegularCycle, false},
		{models.LifeStageCycleChanges, true},
		{models.LifeStagePeriMenopause, true},
		{models.LifeStageMenopause, false},
		{models.LifeStagePregnancy, false},
		{models.LifeStagePostpartum, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.stage), func(t *testing.T) {
			profile := &models.WellnessProfile{LifeStage: stagePtr(tc.stage)}
			ctx := NewProfileContext(profile)
			assert.Equal(t, tc.inBetween, ctx.IsInBetweenPhase)
		})
	}
}

func TestNewProfileContextNilLifeStage(t *testing.T) {
	ctx := NewProfileContext(&models.WellnessProfile{})
	assert.False(t, ctx.IsInBetweenPhase)
	assert.Nil(t, ctx.LifeStage)
	assert.Nil(t, ctx.PregnancyTrimester)
}

func TestNewProfileContextDropsTrimesterOutsidePregnancy(t *testing.T) {
	profile := &models.WellnessProfile{
		LifeStage:          stagePtr(models.LifeStageMenopause),
		PregnancyTrimester: intPtr(2),
	}

	ctx := NewProfileContext(profile)
	assert.Nil(t, ctx.PregnancyTrimester)

	profile.LifeStage = stagePtr(models.LifeStagePregnancy)
	ctx = NewProfileContext(profile)
	assert.NotNil(t, ctx.PregnancyTrimester)
	assert.Equal(t, 2, *ctx.PregnancyTrimester)
}

func TestNewProfileContextDropsRedundantSecondaryDosha(t *testing.T) {
	profile := &models.WellnessProfile{
		PrimaryDosha:   doshaPtr(models.DoshaPitta),
		SecondaryDosha: doshaPtr(models.DoshaPitta),
	}

	ctx := NewProfileContext(profile)
	assert.Nil(t, ctx.SecondaryDosha)

	profile.SecondaryDosha = doshaPtr(models.DoshaKapha)
	ctx = NewProfileContext(profile)
	assert.NotNil(t, ctx.SecondaryDosha)
}
