package services

import (
	"errors"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrNoMatchedFoods = errors.New("no matched foods for this input")
	ErrNoRecipes      = errors.New("no recipes found")
)

type RecommendService struct {
	db *gorm.DB
}

func NewRecommendService(db *gorm.DB) *RecommendService {
	return &RecommendService{db: db}
}

// ByFood returns every recipe registered for one food.
func (s *RecommendService) ByFood(foodID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := s.db.Where("food_id = ?", foodID).Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// ByDetection recommends recipes for the food a detection identified.
// A zero ownerID skips the ownership filter (public variant); otherwise a
// record owned by another user is indistinguishable from a missing one.
func (s *RecommendService) ByDetection(detectionID, ownerID uint) ([]models.Recipe, error) {
	q := s.db.Where("id = ?", detectionID)
	if ownerID != 0 {
		q = q.Where("user_id = ?", ownerID)
	}

	var detection models.DetectionResult
	if err := q.First(&detection).Error; err != nil {
		return nil, ErrNotFound
	}

	return s.ByFood(detection.FoodID)
}

// ByIngredientInput recommends recipes for all foods matched by an
// ingredient input. Ownership semantics as in ByDetection.
func (s *RecommendService) ByIngredientInput(inputID, ownerID uint) ([]models.Recipe, error) {
	input, err := s.findInput(inputID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(input.MatchedFoodIDs) == 0 {
		return nil, ErrNoMatchedFoods
	}

	var recipes []models.Recipe
	if err := s.db.Where("food_id IN ?", []uint(input.MatchedFoodIDs)).Find(&recipes).Error; err != nil {
		return nil, err
	}
	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}
	return recipes, nil
}

// StrictByIngredientInput keeps a candidate recipe only when every
// ingredient the user listed appears among the recipe's own ingredients.
// A recipe without ingredient text never qualifies. An empty result is a
// normal outcome here, not an error; the other variants differ on purpose.
func (s *RecommendService) StrictByIngredientInput(inputID, ownerID uint) ([]models.Recipe, error) {
	input, err := s.findInput(inputID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(input.MatchedFoodIDs) == 0 {
		return nil, ErrNoMatchedFoods
	}

	var candidates []models.Recipe
	if err := s.db.Where("food_id IN ?", []uint(input.MatchedFoodIDs)).Find(&candidates).Error; err != nil {
		return nil, err
	}

	userTokens := SplitIngredients(input.InputText)

	kept := make([]models.Recipe, 0, len(candidates))
	for _, recipe := range candidates {
		if recipe.Ingredients == "" {
			continue
		}
		recipeSet := map[string]struct{}{}
		for _, t := range SplitIngredients(recipe.Ingredients) {
			recipeSet[t] = struct{}{}
		}
		contained := true
		for _, t := range userTokens {
			if _, ok := recipeSet[t]; !ok {
				contained = false
				break
			}
		}
		if contained {
			kept = append(kept, recipe)
		}
	}
	return kept, nil
}

func (s *RecommendService) findInput(inputID, ownerID uint) (*models.UserIngredientInput, error) {
	q := s.db.Where("id = ?", inputID)
	if ownerID != 0 {
		q = q.Where("user_id = ?", ownerID)
	}

	var input models.UserIngredientInput
	if err := q.First(&input).Error; err != nil {
		return nil, ErrNotFound
	}
	return &input, nil
}

// SaveRecommendations persists ranked input→recipe mappings, rank order
// following the given slice (1-based, smaller is better).
func (s *RecommendService) SaveRecommendations(inputID uint, recipes []models.Recipe) error {
	for i, r := range recipes {
		row := models.UserIngredientInputRecipe{
			InputID:  inputID,
			RecipeID: r.ID,
			Rank:     i + 1,
		}
		if err := s.db.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

// RecommendationsForInput lists saved mappings for an input the owner can
// see, best rank first.
func (s *RecommendService) RecommendationsForInput(inputID, ownerID uint) ([]models.UserIngredientInputRecipe, error) {
	if _, err := s.findInput(inputID, ownerID); err != nil {
		return nil, err
	}

	var rows []models.UserIngredientInputRecipe
	if err := s.db.Where("input_id = ?", inputID).Order("rank asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRecipes
	}
	return rows, nil
}
