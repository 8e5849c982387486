package services

import (
	"strings"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"gorm.io/gorm"
)

type MatchingService struct {
	db *gorm.DB
}

func NewMatchingService(db *gorm.DB) *MatchingService {
	return &MatchingService{db: db}
}

// SplitIngredients tokenizes a comma-separated ingredient string: trim
// whitespace, drop empty tokens. Matching elsewhere is exact and
// case-sensitive.
func SplitIngredients(inputText string) []string {
	var tokens []string
	for _, raw := range strings.Split(inputText, ",") {
		if t := strings.TrimSpace(raw); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// MatchFoods returns the ids of every Food whose name exactly equals one
// of the input tokens.
func (s *MatchingService) MatchFoods(inputText string) ([]uint, error) {
	tokens := SplitIngredients(inputText)
	if len(tokens) == 0 {
		return nil, nil
	}

	var foods []models.Food
	if err := s.db.Where("name IN ?", tokens).Find(&foods).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(foods))
	for _, f := range foods {
		ids = append(ids, f.ID)
	}
	return ids, nil
}

// GetInput fetches one ingredient input scoped to its owner; another
// user's record looks identical to a missing one.
func (s *MatchingService) GetInput(inputID, ownerID uint) (*models.UserIngredientInput, error) {
	var input models.UserIngredientInput
	err := s.db.Where("id = ? AND user_id = ?", inputID, ownerID).First(&input).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &input, nil
}

// CreateIngredientInput persists the raw text together with the match set
// computed now. The cached ids are not recomputed if food names change.
func (s *MatchingService) CreateIngredientInput(userID uint, inputText string) (*models.UserIngredientInput, error) {
	matched, err := s.MatchFoods(inputText)
	if err != nil {
		return nil, err
	}

	input := models.UserIngredientInput{
		UserID:         userID,
		InputText:      inputText,
		MatchedFoodIDs: matched,
	}
	if err := s.db.Create(&input).Error; err != nil {
		return nil, err
	}
	return &input, nil
}
