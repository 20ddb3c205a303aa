package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DailyRecommendation is the persisted output of one recommendation pass:
// an ordered list of content IDs plus the context it was generated under.
// One record per user per date, replaced on regeneration.
type DailyRecommendation struct {
	BaseUUIDModel
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_user_date,composite:0" json:"userId"`
	User            User                        `gorm:"foreignKey:UserID" json:"-"`
	Date            time.Time                   `gorm:"type:date;not null;uniqueIndex:idx_user_date,composite:1" json:"date"`
	ContentIDs      datatypes.JSONSlice[string] `gorm:"type:jsonb"        json:"contentIds"`
	CyclePhase      *CyclePhase                 `gorm:"type:varchar(20)"  json:"cyclePhase"`
	PregnancyStatus *string                     `gorm:"type:varchar(20)"  json:"pregnancyStatus"`
	GeneratedAt     time.Time                   `gorm:"type:timestamp;not null" json:"generatedAt"`
}
