package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CheckIn is a self-reported journal entry: how the user feels right now,
// as a set of feeling tags plus an optional free-text note.
type CheckIn struct {
	BaseUUIDModel
	UserID      uuid.UUID                   `gorm:"type:uuid;not null;index:idx_checkin_user_time,composite:0" json:"userId"`
	User        User                        `gorm:"foreignKey:UserID"  json:"-"`
	FeelingTags datatypes.JSONSlice[string] `gorm:"type:jsonb"         json:"feelingTags"`
	Note        string                      `gorm:"type:text"          json:"note"`
	CheckedInAt time.Time                   `gorm:"type:timestamp;not null;index:idx_checkin_user_time,composite:1" json:"checkedInAt"`
}
