package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email           string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash    string `json:"-"`
	Nickname        string `gorm:"not null" json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
	// Legacy single-slot OAuth columns. The SocialAccount list is
	// authoritative; these are populated at first OAuth sign-in only.
	OAuthProvider string `gorm:"column:oauth_provider" json:"oauth_provider,omitempty"`
	OAuthID       string `gorm:"column:oauth_id" json:"oauth_id,omitempty"`
	IsAdmin       bool   `gorm:"default:false" json:"is_admin"`

	SocialAccounts   []SocialAccount       `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RefreshTokens    []RefreshToken        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	DetectionResults []DetectionResult     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	IngredientInputs []UserIngredientInput `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type SocialAccount struct {
	gorm.Model
	Provider string `gorm:"uniqueIndex:idx_provider_oauth_id;not null" json:"provider"`
	OAuthID  string `gorm:"column:oauth_id;uniqueIndex:idx_provider_oauth_id;not null" json:"oauth_id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
}
