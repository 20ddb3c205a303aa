package scoring

import (
	"testing"

	"lunara/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int {
	return &i
}

func phasePtr(p models.CyclePhase) *models.CyclePhase {
	return &p
}

func TestSelectDiversityLeadsTheSet(t *testing.T) {
	yogaBest := testItem("Gentle Flow", models.ContentTypeYoga)
	yogaBest.Doshas = []models.Dosha{models.DoshaVata}
	yogaOther := testItem("Other Flow", models.ContentTypeYoga)
	meditation := testItem("Quiet Sit", models.ContentTypeMeditation)
	nutrition := testItem("Warming Meal", models.ContentTypeNutrition)
	article := testItem("Cycle Basics", models.ContentTypeArticle)
	breathwork := testItem("Box Breathing", models.ContentTypeBreathwork)

	catalog := []*models.ContentItem{
		yogaOther, breathwork, article, nutrition, meditation, yogaBest,
	}

	ctx := ProfileContext{PrimaryDosha: doshaPtr(models.DoshaVata)}

	selected := Select(catalog, ctx, MaxRecommendations)

	assert.Len(t, selected, 6)
	// One item per core type first, best scoring item of the type winning.
	assert.Equal(t, yogaBest.ID, selected[0])
	assert.Equal(t, meditation.ID, selected[1])
	assert.Equal(t, nutrition.ID, selected[2])
	assert.Equal(t, article.ID, selected[3])

	seen := make(map[uuid.UUID]bool)
	for _, id := range selected {
		assert.False(t, seen[id], "duplicate recommendation %s", id)
		seen[id] = true
	}
}

func TestSelectRespectsMax(t *testing.T) {
	catalog := []*models.ContentItem{}
	for range 20 {
		catalog = append(catalog, testItem("Filler", models.ContentTypeYoga))
	}

	assert.Len(t, Select(catalog, ProfileContext{}, 6), 6)
	assert.Len(t, Select(catalog, ProfileContext{}, 3), 3)
	assert.Empty(t, Select(catalog, ProfileContext{}, 0))
	assert.NotNil(t, Select(catalog, ProfileContext{}, 0))
}

func TestSelectEmptyCatalog(t *testing.T) {
	selected := Select(nil, ProfileContext{}, MaxRecommendations)
	assert.NotNil(t, selected)
	assert.Empty(t, selected)
}

func TestSelectPregnancyGate(t *testing.T) {
	safe := testItem("Prenatal Restorative", models.ContentTypeYoga)
	safe.PregnancyStatuses = []string{models.PregnancyStatusPregnant}

	secondTrimesterOnly := testItem("Second Trimester Strength", models.ContentTypeYoga)
	secondTrimesterOnly.PregnancyStatuses = []string{models.PregnancyStatusPregnant}
	secondTrimesterOnly.Trimesters = []int{2}

	untagged := testItem("Power Flow", models.ContentTypeYoga)
	inactive := testItem("Archived Prenatal", models.ContentTypeYoga)
	inactive.PregnancyStatuses = []string{models.PregnancyStatusPregnant}
	inactive.IsActive = false

	catalog := []*models.ContentItem{safe, secondTrimesterOnly, untagged, inactive}

	ctx := ProfileContext{
		LifeStage:          stagePtr(models.LifeStagePregnancy),
		PregnancyTrimester: intPtr(3),
	}

	selected := Select(catalog, ctx, MaxRecommendations)

	// Only the explicitly tagged, trimester-compatible, active item survives.
	assert.Equal(t, []uuid.UUID{safe.ID}, selected)
}

func TestSelectPregnancyNoSafeContent(t *testing.T) {
	catalog := []*models.ContentItem{
		testItem("Power Flow", models.ContentTypeYoga),
		testItem("HIIT Burn", models.ContentTypeYoga),
	}

	ctx := ProfileContext{LifeStage: stagePtr(models.LifeStagePregnancy)}

	selected := Select(catalog, ctx, MaxRecommendations)
	assert.NotNil(t, selected)
	assert.Empty(t, selected)
}

func TestSelectCyclePhaseGate(t *testing.T) {
	lutealItem := testItem("Yin for Deep Rest", models.ContentTypeYoga)
	lutealItem.CyclePhases = []models.CyclePhase{models.CyclePhaseLuteal}

	follicularItem := testItem("Morning Energizer", models.ContentTypeYoga)
	follicularItem.CyclePhases = []models.CyclePhase{models.CyclePhaseFollicular}

	agnostic := testItem("Anytime Meditation", models.ContentTypeMeditation)

	catalog := []*models.ContentItem{lutealItem, follicularItem, agnostic}

	ctx := ProfileContext{
		LifeStage:  stagePtr(models.LifeStageRegularCycle),
		CyclePhase: phasePtr(models.CyclePhaseLuteal),
	}

	selected := Select(catalog, ctx, MaxRecommendations)

	assert.Contains(t, selected, lutealItem.ID)
	assert.Contains(t, selected, agnostic.ID)
	assert.NotContains(t, selected, follicularItem.ID)
}

func TestSelectInBetweenIgnoresCyclePhaseGate(t *testing.T) {
	follicularItem := testItem("Morning Energizer", models.ContentTypeYoga)
	follicularItem.CyclePhases = []models.CyclePhase{models.CyclePhaseFollicular}

	ctx := ProfileContext{
		LifeStage:        stagePtr(models.LifeStageCycleChanges),
		CyclePhase:       phasePtr(models.CyclePhaseLuteal),
		IsInBetweenPhase: true,
	}

	selected := Select([]*models.ContentItem{follicularItem}, ctx, MaxRecommendations)
	assert.Contains(t, selected, follicularItem.ID)
}

func TestSelectStableOrderOnTies(t *testing.T) {
	first := testItem("First Article", models.ContentTypeArticle)
	second := testItem("Second Article", models.ContentTypeArticle)
	third := testItem("Third Article", models.ContentTypeArticle)

	catalog := []*models.ContentItem{first, second, third}

	selected := Select(catalog, ProfileContext{}, MaxRecommendations)

	// All scores are equal, so catalog order must be preserved.
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, selected)
}
