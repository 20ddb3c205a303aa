package scoring

import (
	"testing"

	"lunara/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func doshaPtr(d models.Dosha) *models.Dosha {
	return &d
}

func stagePtr(s models.LifeStage) *models.LifeStage {
	return &s
}

func difficultyPtr(d models.DifficultyLevel) *models.DifficultyLevel {
	return &d
}

func stringPtr(s string) *string {
	return &s
}

func testItem(title string, contentType models.ContentType) *models.ContentItem {
	item := &models.ContentItem{
		Title:       title,
		ContentType: contentType,
		IsActive:    true,
	}
	item.ID = uuid.New()
	return item
}

func TestScoreIsDeterministic(t *testing.T) {
	item := testItem("Gentle Evening Wind Down", models.ContentTypeYoga)
	item.Description = stringPtr("A calming, grounding practice for the nervous system.")
	item.Tags = []string{"restorative", "slow"}
	item.Doshas = []models.Dosha{models.DoshaVata}

	ctx := ProfileContext{
		PrimaryDosha:     doshaPtr(models.DoshaVata),
		LifeStage:        stagePtr(models.LifeStageCycleChanges),
		IsInBetweenPhase: true,
	}

	first := Score(item, ctx)
	for range 10 {
		assert.Equal(t, first, Score(item, ctx))
	}
}

func TestScoreDoshaAffinity(t *testing.T) {
	testCases := []struct {
		name      string
		doshas    []models.Dosha
		primary   *models.Dosha
		secondary *models.Dosha
		expected  float64
	}{
		{
			name:     "primary match",
			doshas:   []models.Dosha{models.DoshaVata},
			primary:  doshaPtr(models.DoshaVata),
			expected: 3.0,
		},
		{
			name:      "secondary match only",
			doshas:    []models.Dosha{models.DoshaPitta},
			primary:   doshaPtr(models.DoshaVata),
			secondary: doshaPtr(models.DoshaPitta),
			expected:  1.0,
		},
		{
			name:      "primary and secondary match",
			doshas:    []models.Dosha{models.DoshaVata, models.DoshaPitta},
			primary:   doshaPtr(models.DoshaVata),
			secondary: doshaPtr(models.DoshaPitta),
			expected:  4.0,
		},
		{
			name:     "tridoshic with primary match",
			doshas:   []models.Dosha{models.DoshaVata, models.DoshaPitta, models.DoshaKapha},
			primary:  doshaPtr(models.DoshaVata),
			expected: 3.5,
		},
		{
			name:     "no profile doshas",
			doshas:   []models.Dosha{models.DoshaVata},
			expected: 0.0,
		},
		{
			name:     "no item doshas",
			primary:  doshaPtr(models.DoshaVata),
			expected: 0.0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := testItem("Neutral Practice", models.ContentTypeYoga)
			item.Doshas = tc.doshas

			ctx := ProfileContext{
				PrimaryDosha:   tc.primary,
				SecondaryDosha: tc.secondary,
			}

			assert.Equal(t, tc.expected, Score(item, ctx))
		})
	}
}

func TestScoreKeywordsOnlyApplyInBetween(t *testing.T) {
	item := testItem("Gentle Restorative Calming Flow", models.ContentTypeYoga)
	item.Doshas = []models.Dosha{models.DoshaVata}
	item.DifficultyLevel = difficultyPtr(models.DifficultyGentle)

	ctx := ProfileContext{
		PrimaryDosha: doshaPtr(models.DoshaVata),
		LifeStage:    stagePtr(models.LifeStageRegularCycle),
	}

	// Outside a transitional stage only dosha affinity contributes.
	assert.Equal(t, 3.0, Score(item, ctx))

	ctx.LifeStage = stagePtr(models.LifeStageCycleChanges)
	ctx.IsInBetweenPhase = true

	assert.Greater(t, Score(item, ctx), 3.0)
}

func TestScoreInBetweenComponents(t *testing.T) {
	ctx := ProfileContext{
		LifeStage:        stagePtr(models.LifeStagePeriMenopause),
		IsInBetweenPhase: true,
	}

	t.Run("meditation gets restorative bonus", func(t *testing.T) {
		item := testItem("Quiet Sit", models.ContentTypeMeditation)
		assert.Equal(t, 3.0, Score(item, ctx))
	})

	t.Run("breathwork gets restorative bonus", func(t *testing.T) {
		item := testItem("Box Breathing", models.ContentTypeBreathwork)
		assert.Equal(t, 3.0, Score(item, ctx))
	})

	t.Run("gentle keyword counts once per term", func(t *testing.T) {
		// "yin" is a gentle keyword: +2.
		item := testItem("Yin Reset", models.ContentTypeArticle)
		assert.Equal(t, 2.0, Score(item, ctx))
	})

	t.Run("grounding stacks with gentle pass", func(t *testing.T) {
		// "calming" is both a gentle keyword (+2) and a grounding
		// keyword (+4).
		item := testItem("Calming Read", models.ContentTypeArticle)
		assert.Equal(t, 6.0, Score(item, ctx))
	})

	t.Run("difficulty adjustments", func(t *testing.T) {
		beginner := testItem("Neutral Read", models.ContentTypeArticle)
		beginner.DifficultyLevel = difficultyPtr(models.DifficultyBeginner)
		assert.Equal(t, 4.0, Score(beginner, ctx))

		intermediate := testItem("Neutral Read", models.ContentTypeArticle)
		intermediate.DifficultyLevel = difficultyPtr(models.DifficultyIntermediate)
		assert.Equal(t, -2.0, Score(intermediate, ctx))
	})

	t.Run("single intensity keyword dominates", func(t *testing.T) {
		item := testItem("Bootcamp Basics", models.ContentTypeArticle)
		assert.Equal(t, -8.0, Score(item, ctx))
	})

	t.Run("focus areas add per match", func(t *testing.T) {
		item := testItem("Sleep and Stress", models.ContentTypeArticle)
		item.Tags = []string{"sleep", "stress"}

		focused := ctx
		focused.FocusAreas = []string{"sleep", "stress", "fertility"}
		assert.Equal(t, 6.0, Score(item, focused))
	})
}

func TestScoreGentleVersusIntenseContrast(t *testing.T) {
	ctx := ProfileContext{
		PrimaryDosha:     doshaPtr(models.DoshaVata),
		LifeStage:        stagePtr(models.LifeStageCycleChanges),
		IsInBetweenPhase: true,
	}

	gentle := testItem("Gentle Evening Wind Down", models.ContentTypeYoga)
	gentle.Description = stringPtr("A calming, grounding practice for the nervous system.")
	gentle.Tags = []string{"restorative", "slow"}
	gentle.Doshas = []models.Dosha{models.DoshaVata}
	gentle.DifficultyLevel = difficultyPtr(models.DifficultyGentle)

	intense := testItem("Power Hot Sculpt", models.ContentTypeYoga)
	intense.Tags = []string{"intense", "vigorous"}
	intense.Doshas = []models.Dosha{models.DoshaVata}
	intense.DifficultyLevel = difficultyPtr(models.DifficultyAdvanced)

	gentleScore := Score(gentle, ctx)
	intenseScore := Score(intense, ctx)

	assert.Greater(t, gentleScore, 10.0)
	assert.Less(t, intenseScore, 0.0)
	assert.Greater(t, gentleScore, intenseScore)
}

func TestPersonalizedScoreFeelingTags(t *testing.T) {
	item := testItem("For Anxious Days", models.ContentTypeMeditation)
	item.Tags = []string{"anxious", "overwhelmed"}

	ctx := ProfileContext{
		RecentFeelingTags: []string{"Anxious", "anxious", "tired", "overwhelmed"},
	}

	// Duplicate feelings count once; unmatched feelings contribute nothing.
	assert.Equal(t, 4.0, PersonalizedScore(item, ctx))

	// Without feeling history the personalized score equals the base score.
	ctx.RecentFeelingTags = nil
	assert.Equal(t, Score(item, ctx), PersonalizedScore(item, ctx))
}
