package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Dosha string

const (
	DoshaVata  Dosha = "vata"
	DoshaPitta Dosha = "pitta"
	DoshaKapha Dosha = "kapha"
)

// AllDoshas is the closed set of constitution types.
var AllDoshas = []Dosha{DoshaVata, DoshaPitta, DoshaKapha}

type LifeStage string

const (
	LifeStageRegularCycle  LifeStage = "regular_cycle"
	LifeStageCycleChanges  LifeStage = "cycle_changes"
	LifeStagePeriMenopause LifeStage = "peri_menopause_transition"
	LifeStageMenopause     LifeStage = "menopause"
	LifeStagePregnancy     LifeStage = "pregnancy"
	LifeStagePostpartum    LifeStage = "postpartum"
)

// IsInBetween reports whether the stage is one of the transitional stages
// where hormones are shifting and intense practices are contraindicated.
func (s LifeStage) IsInBetween() bool {
	return s == LifeStageCycleChanges || s == LifeStagePeriMenopause
}

// IsCycling reports whether the stage implies an active menstrual cycle that
// recommendations should align to.
func (s LifeStage) IsCycling() bool {
	return s == LifeStageRegularCycle
}

func (s LifeStage) IsPregnancy() bool {
	return s == LifeStagePregnancy
}

// WellnessProfile holds the onboarding results for a user: constitution,
// life stage, and the focus areas they selected. One per user.
type WellnessProfile struct {
	BaseUUIDModel
	UserID             uuid.UUID                    `gorm:"type:uuid;not null;uniqueIndex" json:"userId"`
	PrimaryDosha       *Dosha                       `gorm:"type:varchar(10)"               json:"primaryDosha"`
	SecondaryDosha     *Dosha                       `gorm:"type:varchar(10)"               json:"secondaryDosha"`
	LifeStage          *LifeStage                   `gorm:"type:varchar(30)"               json:"lifeStage"`
	PregnancyTrimester *int                         `gorm:"type:int"                       json:"pregnancyTrimester"`
	FocusAreas         datatypes.JSONSlice[string]  `gorm:"type:jsonb"                     json:"focusAreas"`
}
