package models

import "gorm.io/gorm"

type Food struct {
	gorm.Model
	Name        string `gorm:"not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`

	Recipes []Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Recipe struct {
	gorm.Model
	FoodID     uint   `gorm:"not null;index" json:"food_id"`
	SourceType string `gorm:"not null" json:"source_type"`
	Title      string `json:"title"`
	// Comma-separated required ingredients, e.g. "김치, 돼지고기, 두부".
	Ingredients  string `gorm:"type:text" json:"ingredients"`
	Instructions string `gorm:"type:text" json:"instructions"`
	SourceDetail string `gorm:"type:text" json:"source_detail"`

	Steps []RecipeStep `gorm:"constraint:OnDelete:CASCADE" json:"steps,omitempty"`
}

type RecipeStep struct {
	gorm.Model
	RecipeID    uint   `gorm:"not null;index" json:"recipe_id"`
	StepOrder   int    `gorm:"not null" json:"step_order"`
	Description string `gorm:"type:text;not null" json:"description"`
	ImageURL    string `json:"image_url"`
}
