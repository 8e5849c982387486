package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RecipeController struct {
	db *gorm.DB
}

func NewRecipeController(db *gorm.DB) *RecipeController {
	return &RecipeController{db: db}
}

type RecipeCreate struct {
	FoodID       uint   `json:"food_id" binding:"required"`
	SourceType   string `json:"source_type" binding:"required"`
	Title        string `json:"title"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	SourceDetail string `json:"source_detail"`
}

func (ctl *RecipeController) Create(c *gin.Context) {
	var input RecipeCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var food models.Food
	if err := ctl.db.First(&food, input.FoodID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	recipe := models.Recipe{
		FoodID:       input.FoodID,
		SourceType:   input.SourceType,
		Title:        input.Title,
		Ingredients:  input.Ingredients,
		Instructions: input.Instructions,
		SourceDetail: input.SourceDetail,
	}
	if err := ctl.db.Create(&recipe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe"})
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// Get returns one recipe with its steps in display order.
func (ctl *RecipeController) Get(c *gin.Context) {
	var recipe models.Recipe
	err := ctl.db.Preload("Steps", func(db *gorm.DB) *gorm.DB {
		return db.Order("step_order asc")
	}).First(&recipe, paramUint(c, "id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.JSON(http.StatusOK, recipe)
}

type RecipeStepCreate struct {
	RecipeID    uint   `json:"recipe_id" binding:"required"`
	StepOrder   int    `json:"step_order" binding:"required,min=1"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"image_url"`
}

func (ctl *RecipeController) CreateStep(c *gin.Context) {
	var input RecipeStepCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recipe models.Recipe
	if err := ctl.db.First(&recipe, input.RecipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	step := models.RecipeStep{
		RecipeID:    input.RecipeID,
		StepOrder:   input.StepOrder,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if err := ctl.db.Create(&step).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create recipe step"})
		return
	}
	c.JSON(http.StatusCreated, step)
}
