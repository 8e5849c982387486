package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserLogController struct {
	db *gorm.DB
}

func NewUserLogController(db *gorm.DB) *UserLogController {
	return &UserLogController{db: db}
}

type UserLogCreate struct {
	Action     string `json:"action" binding:"required"`
	TargetID   uint   `json:"target_id" binding:"required"`
	TargetType string `json:"target_type" binding:"required"`
	Meta       string `json:"meta"`
}

func (ctl *UserLogController) Create(c *gin.Context) {
	var input UserLogCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log := models.UserLog{
		UserID:     middlewares.CurrentUserID(c),
		Action:     input.Action,
		TargetID:   input.TargetID,
		TargetType: input.TargetType,
		Meta:       input.Meta,
	}
	if err := ctl.db.Create(&log).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create log"})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func (ctl *UserLogController) ListMine(c *gin.Context) {
	var logs []models.UserLog
	err := ctl.db.Where("user_id = ?", middlewares.CurrentUserID(c)).
		Order("created_at desc").Find(&logs).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, logs)
}
