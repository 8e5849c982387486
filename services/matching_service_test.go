package services

import (
	"testing"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/stretchr/testify/require"
)

func TestMatchFoodsWhitespaceInsensitive(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMatchingService(db)

	for _, name := range []string{"김치", "돼지고기", "마늘", "두부"} {
		require.NoError(t, db.Create(&models.Food{Name: name}).Error)
	}

	messy, err := svc.MatchFoods("김치, 돼지고기, , 마늘 ")
	require.NoError(t, err)
	clean, err := svc.MatchFoods("김치,돼지고기,마늘")
	require.NoError(t, err)

	require.ElementsMatch(t, clean, messy)
	require.Len(t, messy, 3)
}

func TestMatchFoodsExactOnly(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMatchingService(db)

	require.NoError(t, db.Create(&models.Food{Name: "김치찌개"}).Error)
	require.NoError(t, db.Create(&models.Food{Name: "김치"}).Error)

	// "김치" must not match "김치찌개" by substring.
	ids, err := svc.MatchFoods("김치")
	require.NoError(t, err)
	require.Len(t, ids, 1)

	var food models.Food
	require.NoError(t, db.First(&food, ids[0]).Error)
	require.Equal(t, "김치", food.Name)
}

func TestCreateIngredientInputCachesMatches(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMatchingService(db)

	kimchi := models.Food{Name: "김치"}
	require.NoError(t, db.Create(&kimchi).Error)

	input, err := svc.CreateIngredientInput(1, "김치, 설탕")
	require.NoError(t, err)
	require.Equal(t, []uint{kimchi.ID}, []uint(input.MatchedFoodIDs))

	// Renaming the food later must not change the cached match set.
	require.NoError(t, db.Model(&kimchi).Update("name", "묵은지").Error)

	var reloaded models.UserIngredientInput
	require.NoError(t, db.First(&reloaded, input.ID).Error)
	require.Equal(t, []uint{kimchi.ID}, []uint(reloaded.MatchedFoodIDs))
}

func TestGetInputScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMatchingService(db)

	input, err := svc.CreateIngredientInput(1, "김치")
	require.NoError(t, err)

	_, err = svc.GetInput(input.ID, 1)
	require.NoError(t, err)

	// Another user's lookup is indistinguishable from a missing record.
	_, err = svc.GetInput(input.ID, 2)
	require.ErrorIs(t, err, ErrNotFound)
}
