package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// UintSlice stores a list of ids as a JSON column, portable across
// postgres and the sqlite test driver.
type UintSlice []uint

func (s UintSlice) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *UintSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("unsupported type for UintSlice: %T", value)
	}
}

// UserIngredientInput is immutable after creation; MatchedFoodIDs is the
// match set computed at submission time, not a live view.
type UserIngredientInput struct {
	gorm.Model
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	InputText      string    `gorm:"type:text;not null" json:"input_text"`
	MatchedFoodIDs UintSlice `gorm:"type:text" json:"matched_food_ids"`
}

type UserIngredientInputRecipe struct {
	gorm.Model
	InputID  uint `gorm:"not null;index" json:"input_id"`
	RecipeID uint `gorm:"not null" json:"recipe_id"`
	Rank     int  `json:"rank"`
}
