package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
)

type IngredientInputController struct {
	matching  *services.MatchingService
	recommend *services.RecommendService
}

func NewIngredientInputController(matching *services.MatchingService, recommend *services.RecommendService) *IngredientInputController {
	return &IngredientInputController{matching: matching, recommend: recommend}
}

type IngredientInputCreate struct {
	InputText string `json:"input_text" binding:"required"`
}

func (ctl *IngredientInputController) Create(c *gin.Context) {
	var input IngredientInputCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := ctl.matching.CreateIngredientInput(middlewares.CurrentUserID(c), input.InputText)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save ingredient input"})
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (ctl *IngredientInputController) Get(c *gin.Context) {
	record, err := ctl.matching.GetInput(paramUint(c, "id"), middlewares.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "ingredient input not found or access denied"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Mappings lists the saved ranked recipe mappings for one of the caller's
// inputs, best rank first.
func (ctl *IngredientInputController) Mappings(c *gin.Context) {
	inputID := paramUint(c, "id")
	rows, err := ctl.recommend.RecommendationsForInput(inputID, middlewares.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "ingredient input not found"})
			return
		}
		if errors.Is(err, services.ErrNoRecipes) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no recommended recipes for this input"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func paramUint(c *gin.Context, name string) uint {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}
