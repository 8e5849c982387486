package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewController struct {
	db *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{db: db}
}

type ReviewCreate struct {
	FoodID  uint   `json:"food_id" binding:"required"`
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

func (ctl *ReviewController) Create(c *gin.Context) {
	var input ReviewCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{
		UserID:  middlewares.CurrentUserID(c),
		FoodID:  input.FoodID,
		Content: input.Content,
		Rating:  input.Rating,
	}
	if err := ctl.db.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (ctl *ReviewController) ListMine(c *gin.Context) {
	var reviews []models.Review
	err := ctl.db.Where("user_id = ?", middlewares.CurrentUserID(c)).
		Order("created_at desc").Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (ctl *ReviewController) ListForFood(c *gin.Context) {
	var reviews []models.Review
	err := ctl.db.Where("food_id = ?", paramUint(c, "id")).
		Order("created_at desc").Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
