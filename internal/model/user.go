package model

import "time"

type BusinessType string

const (
	BusinessTypeLandscapeArchitect BusinessType = "landscape_architect"
	BusinessTypeDeveloper          BusinessType = "developer"
	BusinessTypeDemolition         BusinessType = "demolition"
	BusinessTypeEnthusiast         BusinessType = "enthusiast"
	BusinessTypeOther              BusinessType = "other"
)

// User is created lazily on a principal's first authenticated interaction,
// keyed by the external auth provider's subject id.
type User struct {
	ID           string        `gorm:"primaryKey;size:26"`
	Auth0ID      string        `gorm:"column:auth0_id;size:128;not null;uniqueIndex"`
	Email        string        `gorm:"size:255;index"`
	Name         string        `gorm:"size:200"`
	Phone        string        `gorm:"size:32"`
	BusinessName string        `gorm:"size:200"`
	BusinessType *BusinessType `gorm:"size:32"`
	IsAdmin      bool          `gorm:"not null;default:false"`
	CreatedAt    time.Time     `gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
