package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"
	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HomeController struct {
	db      *gorm.DB
	ranking *services.RankingService
}

func NewHomeController(db *gorm.DB, ranking *services.RankingService) *HomeController {
	return &HomeController{db: db, ranking: ranking}
}

// PopularSearches reports today's top-10 snapshot with trend deltas
// against the previous window.
func (ctl *HomeController) PopularSearches(c *gin.Context) {
	period := c.DefaultQuery("period", services.PeriodDay)

	rankings, err := ctl.ranking.PopularSearches(period, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrUnknownPeriod) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "period must be day or week"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": period, "rankings": rankings})
}

type SearchLogCreate struct {
	Keyword string `json:"keyword" binding:"required"`
}

func (ctl *HomeController) LogSearch(c *gin.Context) {
	var input SearchLogCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *uint
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	if err := ctl.ranking.LogSearch(input.Keyword, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log search"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "logged"})
}

// RecommendedFood picks a random food with its average rating for the
// home screen.
func (ctl *HomeController) RecommendedFood(c *gin.Context) {
	var food models.Food
	if err := ctl.db.Order("RANDOM()").First(&food).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no food found"})
		return
	}

	var avg float64
	ctl.db.Model(&models.Review{}).
		Where("food_id = ?", food.ID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg)

	c.JSON(http.StatusOK, gin.H{
		"date": time.Now().UTC().Format("2006-01-02"),
		"food": gin.H{
			"id":          food.ID,
			"name":        food.Name,
			"description": food.Description,
			"image_url":   food.ImageURL,
			"rating":      avg,
		},
	})
}
