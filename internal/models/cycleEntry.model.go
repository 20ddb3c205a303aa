package models

import (
	"time"

	"github.com/google/uuid"
)

// CycleEntry records a user-reported cycle phase. The most recent entry is
// what the recommendation engine aligns content to.
type CycleEntry struct {
	BaseUUIDModel
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_cycle_user_time,composite:0" json:"userId"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Phase      CyclePhase `gorm:"type:varchar(20);not null" json:"phase"`
	RecordedAt time.Time  `gorm:"type:timestamp;not null;index:idx_cycle_user_time,composite:1" json:"recordedAt"`
}
