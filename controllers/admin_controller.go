package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

func (ctl *AdminController) ListUsers(c *gin.Context) {
	var users []models.User
	if err := ctl.db.Order("id asc").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctl *AdminController) ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := ctl.db.Order("created_at desc").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// Stats returns simple entity counts for the dashboard.
func (ctl *AdminController) Stats(c *gin.Context) {
	counts := gin.H{}
	for name, model := range map[string]interface{}{
		"users":             &models.User{},
		"foods":             &models.Food{},
		"recipes":           &models.Recipe{},
		"reviews":           &models.Review{},
		"detection_results": &models.DetectionResult{},
	} {
		var n int64
		if err := ctl.db.Model(model).Count(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
			return
		}
		counts[name] = n
	}
	c.JSON(http.StatusOK, counts)
}
