package controllers

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/models"
	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DetectionController struct {
	db         *gorm.DB
	classifier *services.ClassifierService
}

func NewDetectionController(db *gorm.DB, classifier *services.ClassifierService) *DetectionController {
	return &DetectionController{db: db, classifier: classifier}
}

type DetectionCreate struct {
	FoodID     uint    `json:"food_id" binding:"required"`
	ImagePath  string  `json:"image_path" binding:"required"`
	Confidence float64 `json:"confidence" binding:"required"`
}

// Create records an already-classified detection for the caller.
func (ctl *DetectionController) Create(c *gin.Context) {
	var input DetectionCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := models.DetectionResult{
		UserID:     middlewares.CurrentUserID(c),
		FoodID:     input.FoodID,
		ImagePath:  input.ImagePath,
		Confidence: input.Confidence,
	}
	if err := ctl.db.Create(&result).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save detection result"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

type DetectionUpload struct {
	Image string `json:"image" binding:"required"` // data:<mime>;base64,<data>
}

// Upload runs the external classifier on an uploaded image, stores the
// image and the best detection.
func (ctl *DetectionController) Upload(c *gin.Context) {
	var input DetectionUpload
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parts := strings.Split(input.Image, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image data URI"})
		return
	}
	imageBytes, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 image"})
		return
	}

	result, err := ctl.classifier.DetectAndStore(c.Request.Context(), middlewares.CurrentUserID(c), input.Image, imageBytes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUnknownFood):
			c.JSON(http.StatusNotFound, gin.H{"error": "no registered food detected"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "detection failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (ctl *DetectionController) ListMine(c *gin.Context) {
	var results []models.DetectionResult
	err := ctl.db.Where("user_id = ?", middlewares.CurrentUserID(c)).
		Order("created_at desc").Find(&results).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	if len(results) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no detection results found"})
		return
	}
	c.JSON(http.StatusOK, results)
}
