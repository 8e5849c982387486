package services

import (
	"testing"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/stretchr/testify/require"
)

func TestStrictContainment(t *testing.T) {
	db := setupTestDB(t)
	matching := NewMatchingService(db)
	recommend := NewRecommendService(db)

	food := models.Food{Name: "김치"}
	require.NoError(t, db.Create(&food).Error)

	stew := models.Recipe{FoodID: food.ID, SourceType: "manual", Title: "김치찌개",
		Ingredients: "김치, 돼지고기, 두부"}
	require.NoError(t, db.Create(&stew).Error)

	// User's set is a subset of the recipe's: included.
	input, err := matching.CreateIngredientInput(1, "김치, 돼지고기")
	require.NoError(t, err)
	kept, err := recommend.StrictByIngredientInput(input.ID, 1)
	require.NoError(t, err)
	require.Len(t, kept, 1)
	require.Equal(t, stew.ID, kept[0].ID)

	// "설탕" is absent from the recipe: excluded, empty result, no error.
	input2, err := matching.CreateIngredientInput(1, "김치, 돼지고기, 설탕")
	require.NoError(t, err)
	kept, err = recommend.StrictByIngredientInput(input2.ID, 1)
	require.NoError(t, err)
	require.Empty(t, kept)
}

func TestStrictExcludesRecipesWithoutIngredients(t *testing.T) {
	db := setupTestDB(t)
	matching := NewMatchingService(db)
	recommend := NewRecommendService(db)

	food := models.Food{Name: "김치"}
	require.NoError(t, db.Create(&food).Error)
	require.NoError(t, db.Create(&models.Recipe{FoodID: food.ID, SourceType: "manual"}).Error)

	input, err := matching.CreateIngredientInput(1, "김치")
	require.NoError(t, err)

	kept, err := recommend.StrictByIngredientInput(input.ID, 1)
	require.NoError(t, err)
	require.Empty(t, kept)
}

func TestByIngredientInputVariants(t *testing.T) {
	db := setupTestDB(t)
	matching := NewMatchingService(db)
	recommend := NewRecommendService(db)

	food := models.Food{Name: "마늘"}
	require.NoError(t, db.Create(&food).Error)
	recipe := models.Recipe{FoodID: food.ID, SourceType: "manual", Ingredients: "마늘, 기름"}
	require.NoError(t, db.Create(&recipe).Error)

	input, err := matching.CreateIngredientInput(7, "마늘")
	require.NoError(t, err)

	// Public variant ignores ownership.
	recipes, err := recommend.ByIngredientInput(input.ID, 0)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	// Private variant hides other users' records as NotFound.
	_, err = recommend.ByIngredientInput(input.ID, 99)
	require.ErrorIs(t, err, ErrNotFound)

	// Input with no matched foods.
	empty, err := matching.CreateIngredientInput(7, "존재하지않는재료")
	require.NoError(t, err)
	_, err = recommend.ByIngredientInput(empty.ID, 7)
	require.ErrorIs(t, err, ErrNoMatchedFoods)

	// Missing input id.
	_, err = recommend.ByIngredientInput(99999, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestByDetection(t *testing.T) {
	db := setupTestDB(t)
	recommend := NewRecommendService(db)

	food := models.Food{Name: "된장찌개"}
	require.NoError(t, db.Create(&food).Error)
	detection := models.DetectionResult{UserID: 3, FoodID: food.ID, ImagePath: "p.jpg", Confidence: 0.9}
	require.NoError(t, db.Create(&detection).Error)

	// A detected food without recipes.
	_, err := recommend.ByDetection(detection.ID, 0)
	require.ErrorIs(t, err, ErrNoRecipes)

	recipe := models.Recipe{FoodID: food.ID, SourceType: "manual", Ingredients: "된장, 두부"}
	require.NoError(t, db.Create(&recipe).Error)

	recipes, err := recommend.ByDetection(detection.ID, 0)
	require.NoError(t, err)
	require.Len(t, recipes, 1)

	// Owner sees it; another user gets NotFound.
	_, err = recommend.ByDetection(detection.ID, 3)
	require.NoError(t, err)
	_, err = recommend.ByDetection(detection.ID, 4)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = recommend.ByDetection(424242, 0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSaveAndListRecommendations(t *testing.T) {
	db := setupTestDB(t)
	matching := NewMatchingService(db)
	recommend := NewRecommendService(db)

	food := models.Food{Name: "김치"}
	require.NoError(t, db.Create(&food).Error)
	r1 := models.Recipe{FoodID: food.ID, SourceType: "manual", Ingredients: "김치"}
	r2 := models.Recipe{FoodID: food.ID, SourceType: "manual", Ingredients: "김치, 두부"}
	require.NoError(t, db.Create(&r1).Error)
	require.NoError(t, db.Create(&r2).Error)

	input, err := matching.CreateIngredientInput(5, "김치")
	require.NoError(t, err)

	require.NoError(t, recommend.SaveRecommendations(input.ID, []models.Recipe{r2, r1}))

	rows, err := recommend.RecommendationsForInput(input.ID, 5)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 1, rows[0].Rank)
	require.Equal(t, r2.ID, rows[0].RecipeID)

	_, err = recommend.RecommendationsForInput(input.ID, 6)
	require.ErrorIs(t, err, ErrNotFound)
}
