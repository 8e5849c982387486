package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MypageController struct {
	db *gorm.DB
}

func NewMypageController(db *gorm.DB) *MypageController {
	return &MypageController{db: db}
}

// Summary bundles the caller's bookmarks, latest five detections and
// reviews for the mypage screen.
func (ctl *MypageController) Summary(c *gin.Context) {
	userID := middlewares.CurrentUserID(c)

	var bookmarks []models.Bookmark
	if err := ctl.db.Preload("Recipe").Where("user_id = ?", userID).Find(&bookmarks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	var detections []models.DetectionResult
	err := ctl.db.Preload("Food").Where("user_id = ?", userID).
		Order("created_at desc").Limit(5).Find(&detections).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	var reviews []models.Review
	if err := ctl.db.Preload("Food").Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bookmarks":         bookmarks,
		"detection_results": detections,
		"reviews":           reviews,
	})
}
