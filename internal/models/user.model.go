package models

import (
	"time"
)

type User struct {
	BaseUUIDModel
	FirstName    string     `gorm:"type:text"               json:"firstName"`
	LastName     string     `gorm:"type:text"               json:"lastName"`
	DisplayName  string     `gorm:"type:text"               json:"displayName"`
	Email        string     `gorm:"type:text;uniqueIndex"   json:"email"`
	PasswordHash string     `gorm:"type:text"               json:"-"`
	IsAdmin      bool       `gorm:"type:bool;default:false" json:"isAdmin"`
	IsActive     bool       `gorm:"type:bool;default:true"  json:"isActive"`
	LastLoginAt  *time.Time `gorm:"type:timestamp"          json:"lastLoginAt,omitempty"`

	WellnessProfile *WellnessProfile `gorm:"foreignKey:UserID" json:"wellnessProfile,omitempty"`
}

// UserProfile is the public view of a user returned by the API.
type UserProfile struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	DisplayName string     `json:"displayName"`
	Email       string     `json:"email"`
	IsAdmin     bool       `json:"isAdmin"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	Onboarded   bool       `json:"onboarded"`
}

func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:          u.ID.String(),
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		IsAdmin:     u.IsAdmin,
		IsActive:    u.IsActive,
		LastLoginAt: u.LastLoginAt,
		Onboarded:   u.WellnessProfile != nil,
	}
}

func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}
