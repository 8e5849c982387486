package models

import "gorm.io/gorm"

type DetectionResult struct {
	gorm.Model
	UserID     uint    `gorm:"not null;index" json:"user_id"`
	FoodID     uint    `gorm:"not null;index" json:"food_id"`
	ImagePath  string  `gorm:"not null" json:"image_path"`
	Confidence float64 `gorm:"not null" json:"confidence"`

	Food Food `json:"food,omitempty"`
}

type Review struct {
	gorm.Model
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	FoodID  uint   `gorm:"not null;index" json:"food_id"`
	Content string `gorm:"type:text;not null" json:"content"`
	Rating  int    `gorm:"not null" json:"rating"`

	Food Food `json:"food,omitempty"`
}

type Bookmark struct {
	gorm.Model
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`

	Recipe Recipe `json:"recipe,omitempty"`
}

type UserLog struct {
	gorm.Model
	UserID     uint   `gorm:"not null;index" json:"user_id"`
	Action     string `gorm:"not null" json:"action"`
	TargetID   uint   `gorm:"not null" json:"target_id"`
	TargetType string `gorm:"not null" json:"target_type"`
	Meta       string `gorm:"type:text" json:"meta,omitempty"`
}
