package scoring

import (
	"sort"

	"lunara/internal/models"

	"github.com/google/uuid"
)

// MaxRecommendations is the default bound on a daily recommendation set.
const MaxRecommendations = 6

// diversityOrder is the fixed pass order for the one-per-type pick. Yoga
// leads because it is the app's anchor content; breathwork competes in the
// backfill only.
var diversityOrder = []models.ContentType{
	models.ContentTypeYoga,
	models.ContentTypeMeditation,
	models.ContentTypeNutrition,
	models.ContentTypeArticle,
}

type scoredItem struct {
	item  *models.ContentItem
	score float64
}

// Select ranks the eligible candidates for the context and returns an
// ordered, deduplicated list of at most max content IDs: first the best item
// of each core content type, then the best remaining items by score.
//
// An empty result is a valid outcome, not an error.
func Select(candidates []*models.ContentItem, ctx ProfileContext, max int) []uuid.UUID {
	return selectWith(candidates, ctx, max, Score)
}

// SelectPersonalized is Select with the feeling-biased scorer.
func SelectPersonalized(
	candidates []*models.ContentItem,
	ctx ProfileContext,
	max int,
) []uuid.UUID {
	return selectWith(candidates, ctx, max, PersonalizedScore)
}

func selectWith(
	candidates []*models.ContentItem,
	ctx ProfileContext,
	max int,
	score func(*models.ContentItem, ProfileContext) float64,
) []uuid.UUID {
	if max <= 0 {
		return []uuid.UUID{}
	}

	eligible := filterCandidates(candidates, ctx)

	scored := make([]scoredItem, 0, len(eligible))
	for _, item := range eligible {
		scored = append(scored, scoredItem{item: item, score: score(item, ctx)})
	}

	// Stable sort keeps catalog order between equal scores, so output is
	// deterministic and testable.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	selected := make([]uuid.UUID, 0, max)
	used := make(map[uuid.UUID]bool, max)

	for _, contentType := range diversityOrder {
		if len(selected) >= max {
			break
		}
		for _, candidate := range scored {
			if candidate.item.ContentType != contentType || used[candidate.item.ID] {
				continue
			}
			selected = append(selected, candidate.item.ID)
			used[candidate.item.ID] = true
			break
		}
	}

	for _, candidate := range scored {
		if len(selected) >= max {
			break
		}
		if used[candidate.item.ID] {
			continue
		}
		selected = append(selected, candidate.item.ID)
		used[candidate.item.ID] = true
	}

	return selected
}

// filterCandidates applies the hard gates that run before any scoring:
// active items only; during pregnancy only items explicitly tagged safe for
// it (and for the current trimester); during a normal cycle only items
// aligned with the current phase. Pregnancy is an exclusion gate rather than
// a ranking signal because a falsely recommended practice is unacceptable.
func filterCandidates(
	candidates []*models.ContentItem,
	ctx ProfileContext,
) []*models.ContentItem {
	eligible := make([]*models.ContentItem, 0, len(candidates))

	for _, item := range candidates {
		if item == nil || !item.IsActive {
			continue
		}

		if ctx.isPregnant() {
			if !item.AllowsPregnancy() {
				continue
			}
			if ctx.PregnancyTrimester != nil && !item.AllowsTrimester(*ctx.PregnancyTrimester) {
				continue
			}
		} else if !ctx.IsInBetweenPhase && ctx.isCycling() && ctx.CyclePhase != nil {
			if !item.AllowsCyclePhase(*ctx.CyclePhase) {
				continue
			}
		}

		eligible = append(eligible, item)
	}

	return eligible
}
