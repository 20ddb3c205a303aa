package models

import (
	"gorm.io/datatypes"
)

type ContentType string

const (
	ContentTypeYoga       ContentType = "yoga"
	ContentTypeMeditation ContentType = "meditation"
	ContentTypeNutrition  ContentType = "nutrition"
	ContentTypeArticle    ContentType = "article"
	ContentTypeBreathwork ContentType = "breathwork"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyGentle       DifficultyLevel = "gentle"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

type CyclePhase string

const (
	CyclePhaseMenstrual  CyclePhase = "menstrual"
	CyclePhaseFollicular CyclePhase = "follicular"
	CyclePhaseOvulatory  CyclePhase = "ovulatory"
	CyclePhaseLuteal     CyclePhase = "luteal"
)

// PregnancyStatusPregnant is the catalog tag an item must carry to be
// recommendable during pregnancy. Absence excludes the item outright.
const PregnancyStatusPregnant = "pregnant"

// ContentItem is a catalog entry. The catalog is maintained by admins and is
// read-only to the recommendation engine.
type ContentItem struct {
	BaseUUIDModel
	Title             string                          `gorm:"type:text;not null"  json:"title"`
	Description       *string                         `gorm:"type:text"           json:"description"`
	ContentType       ContentType                     `gorm:"type:varchar(20);not null;index" json:"contentType"`
	DifficultyLevel   *DifficultyLevel                `gorm:"type:varchar(20)"    json:"difficultyLevel"`
	DurationMinutes   *int                            `gorm:"type:int"            json:"durationMinutes"`
	Tags              datatypes.JSONSlice[string]     `gorm:"type:jsonb"          json:"tags"`
	Doshas            datatypes.JSONSlice[Dosha]      `gorm:"type:jsonb"          json:"doshas"`
	CyclePhases       datatypes.JSONSlice[CyclePhase] `gorm:"type:jsonb"          json:"cyclePhases"`
	PregnancyStatuses datatypes.JSONSlice[string]     `gorm:"type:jsonb"          json:"pregnancyStatuses"`
	Trimesters        datatypes.JSONSlice[int]        `gorm:"type:jsonb"          json:"trimesters"`
	IsActive          bool                            `gorm:"type:bool;default:true;index" json:"isActive"`
}

func (c *ContentItem) HasDosha(d Dosha) bool {
	for _, have := range c.Doshas {
		if have == d {
			return true
		}
	}
	return false
}

// IsTridoshic reports whether the item suits all three doshas.
func (c *ContentItem) IsTridoshic() bool {
	for _, d := range AllDoshas {
		if !c.HasDosha(d) {
			return false
		}
	}
	return true
}

// AllowsCyclePhase treats an empty phase set as phase-agnostic content.
func (c *ContentItem) AllowsCyclePhase(phase CyclePhase) bool {
	if len(c.CyclePhases) == 0 {
		return true
	}
	for _, p := range c.CyclePhases {
		if p == phase {
			return true
		}
	}
	return false
}

func (c *ContentItem) AllowsPregnancy() bool {
	for _, s := range c.PregnancyStatuses {
		if s == PregnancyStatusPregnant {
			return true
		}
	}
	return false
}

// AllowsTrimester treats an empty trimester set as applicable to all
// trimesters; a declared set excludes trimesters not listed.
func (c *ContentItem) AllowsTrimester(trimester int) bool {
	if len(c.Trimesters) == 0 {
		return true
	}
	for _, t := range c.Trimesters {
		if t == trimester {
			return true
		}
	}
	return false
}
