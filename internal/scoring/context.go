package scoring

import (
	"time"

	"lunara/internal/models"
)

// DefaultCyclePhase is used for a cycling user with no recorded cycle entry.
// Follicular is the neutral "fresh start" assumption; keep it stable, ranking
// output depends on it.
const DefaultCyclePhase = models.CyclePhaseFollicular

// FeelingWindow bounds how far back check-ins feed the personalized path.
const FeelingWindow = 30 * 24 * time.Hour

// ProfileContext is everything the scorer needs to know about a user,
// resolved fresh for every scoring pass and passed by value. It is never
// cached across requests.
type ProfileContext struct {
	PrimaryDosha       *models.Dosha
	SecondaryDosha     *models.Dosha
	LifeStage          *models.LifeStage
	CyclePhase         *models.CyclePhase
	PregnancyTrimester *int
	FocusAreas         []string
	IsInBetweenPhase   bool

	// RecentFeelingTags is ordered most recent first and only biases the
	// personalized path, never the daily scorer.
	RecentFeelingTags []string
}

// NewProfileContext derives a scoring context from a stored wellness profile.
// A trimester is meaningless outside pregnancy and is dropped rather than
// trusted; a secondary dosha equal to the primary carries no extra signal and
// is dropped the same way. CyclePhase and RecentFeelingTags come from
// activity history and are filled in by the caller.
func NewProfileContext(profile *models.WellnessProfile) ProfileContext {
	ctx := ProfileContext{
		PrimaryDosha:   profile.PrimaryDosha,
		SecondaryDosha: profile.SecondaryDosha,
		LifeStage:      profile.LifeStage,
		FocusAreas:     profile.FocusAreas,
	}

	if profile.LifeStage != nil {
		ctx.IsInBetweenPhase = profile.LifeStage.IsInBetween()
		if profile.LifeStage.IsPregnancy() {
			ctx.PregnancyTrimester = profile.PregnancyTrimester
		}
	}

	if ctx.PrimaryDosha != nil && ctx.SecondaryDosha != nil &&
		*ctx.PrimaryDosha == *ctx.SecondaryDosha {
		ctx.SecondaryDosha = nil
	}

	return ctx
}

func (ctx ProfileContext) isPregnant() bool {
	return ctx.LifeStage != nil && ctx.LifeStage.IsPregnancy()
}

func (ctx ProfileContext) isCycling() bool {
	return ctx.LifeStage != nil && ctx.LifeStage.IsCycling()
}
