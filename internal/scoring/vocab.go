package scoring

// Scoring weights. These used to live inline at every call site of the
// original scorer; any change here shifts ranking output, so treat them as
// product-owned configuration.
const (
	primaryDoshaBonus   = 3.0
	secondaryDoshaBonus = 1.0
	tridoshicBonus      = 0.5

	gentleKeywordBonus      = 2.0
	intensityKeywordPenalty = -8.0

	easyDifficultyBonus           = 4.0
	advancedDifficultyPenalty     = -5.0
	intermediateDifficultyPenalty = -2.0

	restorativeContentBonus = 3.0
	groundingCorpusBonus    = 4.0
	focusAreaBonus          = 3.0

	feelingTagBonus = 2.0
)

// gentleKeywords is the stabilizing vocabulary rewarded during transitional
// life stages. Closed list; matching is case-insensitive substring, each
// matched term counts once.
var gentleKeywords = []string{
	"gentle",
	"restorative",
	"calming",
	"grounding",
	"nervous system",
	"soothing",
	"slow",
	"relaxing",
	"beginner friendly",
	"yin",
}

// intensityKeywords carries a deliberately dominant penalty: a single match
// is enough to push an item out of contention during transitional stages.
var intensityKeywords = []string{
	"intense",
	"advanced",
	"power",
	"hot",
	"vigorous",
	"weight loss",
	"high-intensity",
	"hiit",
	"sculpt",
	"bootcamp",
}

// groundingKeywords overlaps gentleKeywords on purpose. A match here stacks
// with the gentle pass, so nervous-system content is rewarded twice. Do not
// deduplicate without product sign-off; it changes ranking outcomes.
var groundingKeywords = []string{
	"nervous system",
	"calming",
	"grounding",
}
