package services

import (
	"testing"

	. "lunara/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPregnancyStatus(t *testing.T) {
	testCases := []struct {
		name     string
		stage    *LifeStage
		expected *string
	}{
		{"nil stage", nil, nil},
		{"pregnancy", stagePtr(LifeStagePregnancy), stringPtr("pregnant")},
		{"postpartum", stagePtr(LifeStagePostpartum), stringPtr("postpartum")},
		{"regular cycle", stagePtr(LifeStageRegularCycle), nil},
		{"menopause", stagePtr(LifeStageMenopause), nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := pregnancyStatus(tc.stage)
			if tc.expected == nil {
				assert.Nil(t, result)
				return
			}
			assert.NotNil(t, result)
			assert.Equal(t, *tc.expected, *result)
		})
	}
}

func stagePtr(s LifeStage) *LifeStage {
	return &s
}

func stringPtr(s string) *string {
	return &s
}
