package controllers

import (
	"errors"
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
)

type RecommendController struct {
	recommend *services.RecommendService
}

func NewRecommendController(recommend *services.RecommendService) *RecommendController {
	return &RecommendController{recommend: recommend}
}

func (ctl *RecommendController) respond(c *gin.Context, recipes interface{}, err error) {
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
		case errors.Is(err, services.ErrNoMatchedFoods):
			c.JSON(http.StatusBadRequest, gin.H{"error": "no matched foods for this input"})
		case errors.Is(err, services.ErrNoRecipes):
			c.JSON(http.StatusNotFound, gin.H{"error": "no recipes found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "recommendation failed"})
		}
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// ByFood recommends every recipe registered for a food id.
func (ctl *RecommendController) ByFood(c *gin.Context) {
	recipes, err := ctl.recommend.ByFood(paramUint(c, "foodID"))
	ctl.respond(c, recipes, err)
}

func (ctl *RecommendController) ByDetection(c *gin.Context) {
	recipes, err := ctl.recommend.ByDetection(paramUint(c, "id"), 0)
	ctl.respond(c, recipes, err)
}

func (ctl *RecommendController) ByIngredientInput(c *gin.Context) {
	recipes, err := ctl.recommend.ByIngredientInput(paramUint(c, "id"), 0)
	ctl.respond(c, recipes, err)
}

func (ctl *RecommendController) MyByDetection(c *gin.Context) {
	recipes, err := ctl.recommend.ByDetection(paramUint(c, "id"), middlewares.CurrentUserID(c))
	ctl.respond(c, recipes, err)
}

func (ctl *RecommendController) MyByIngredientInput(c *gin.Context) {
	recipes, err := ctl.recommend.ByIngredientInput(paramUint(c, "id"), middlewares.CurrentUserID(c))
	ctl.respond(c, recipes, err)
}

// MyStrict applies the complete-containment filter. An empty list is a
// normal response, not a 404.
func (ctl *RecommendController) MyStrict(c *gin.Context) {
	recipes, err := ctl.recommend.StrictByIngredientInput(paramUint(c, "id"), middlewares.CurrentUserID(c))
	ctl.respond(c, recipes, err)
}
