package scoring

import (
	"strings"

	"lunara/internal/models"
)

// Score rates how well a single content item suits the resolved profile
// context. Pure and total: the same inputs always produce the same score,
// missing optional fields contribute nothing, and negative scores are valid
// ordering input, never clamped.
//
// The keyword passes only apply during an in-between life stage; outside of
// one, only dosha affinity contributes.
func Score(item *models.ContentItem, ctx ProfileContext) float64 {
	score := 0.0

	if ctx.PrimaryDosha != nil && item.HasDosha(*ctx.PrimaryDosha) {
		score += primaryDoshaBonus
	}
	if ctx.SecondaryDosha != nil && item.HasDosha(*ctx.SecondaryDosha) {
		if ctx.PrimaryDosha == nil || *ctx.SecondaryDosha != *ctx.PrimaryDosha {
			score += secondaryDoshaBonus
		}
	}
	if item.IsTridoshic() {
		score += tridoshicBonus
	}

	if !ctx.IsInBetweenPhase {
		return score
	}

	corpus := searchCorpus(item)

	for _, keyword := range gentleKeywords {
		if strings.Contains(corpus, keyword) {
			score += gentleKeywordBonus
		}
	}
	for _, keyword := range intensityKeywords {
		if strings.Contains(corpus, keyword) {
			score += intensityKeywordPenalty
		}
	}

	if item.DifficultyLevel != nil {
		switch *item.DifficultyLevel {
		case models.DifficultyBeginner, models.DifficultyGentle:
			score += easyDifficultyBonus
		case models.DifficultyAdvanced:
			score += advancedDifficultyPenalty
		case models.DifficultyIntermediate:
			score += intermediateDifficultyPenalty
		}
	}

	if item.ContentType == models.ContentTypeMeditation ||
		item.ContentType == models.ContentTypeBreathwork ||
		strings.Contains(corpus, "restorative") {
		score += restorativeContentBonus
	}

	// Stacks with the gentle pass above; see groundingKeywords.
	for _, keyword := range groundingKeywords {
		if strings.Contains(corpus, keyword) {
			score += groundingCorpusBonus
			break
		}
	}

	for _, focus := range ctx.FocusAreas {
		if matchesFocusArea(item, corpus, focus) {
			score += focusAreaBonus
		}
	}

	return score
}

// PersonalizedScore layers the user's recent self-reported feelings on top of
// the daily score. Only the on-demand personalized path uses it; the daily
// record is always generated with Score.
func PersonalizedScore(item *models.ContentItem, ctx ProfileContext) float64 {
	score := Score(item, ctx)
	if len(ctx.RecentFeelingTags) == 0 {
		return score
	}

	corpus := searchCorpus(item)
	seen := make(map[string]bool, len(ctx.RecentFeelingTags))
	for _, tag := range ctx.RecentFeelingTags {
		feeling := strings.ToLower(strings.TrimSpace(tag))
		if feeling == "" || seen[feeling] {
			continue
		}
		seen[feeling] = true
		if strings.Contains(corpus, feeling) {
			score += feelingTagBonus
		}
	}

	return score
}

// searchCorpus builds the case-insensitive haystack for keyword matching:
// title, description, and tags joined.
func searchCorpus(item *models.ContentItem) string {
	parts := make([]string, 0, len(item.Tags)+2)
	parts = append(parts, item.Title)
	if item.Description != nil {
		parts = append(parts, *item.Description)
	}
	parts = append(parts, item.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// matchesFocusArea counts a focus area when it appears as a substring of the
// corpus or matches a tag exactly. Unknown tags simply never match.
func matchesFocusArea(item *models.ContentItem, corpus, focus string) bool {
	needle := strings.ToLower(strings.TrimSpace(focus))
	if needle == "" {
		return false
	}
	if strings.Contains(corpus, needle) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.EqualFold(strings.TrimSpace(tag), needle) {
			return true
		}
	}
	return false
}
