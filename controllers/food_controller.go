package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FoodController struct {
	db *gorm.DB
}

func NewFoodController(db *gorm.DB) *FoodController {
	return &FoodController{db: db}
}

type FoodCreate struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func (ctl *FoodController) Create(c *gin.Context) {
	var input FoodCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food := models.Food{Name: input.Name, Description: input.Description, ImageURL: input.ImageURL}
	if err := ctl.db.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (ctl *FoodController) List(c *gin.Context) {
	var foods []models.Food
	if err := ctl.db.Find(&foods).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (ctl *FoodController) Get(c *gin.Context) {
	var food models.Food
	if err := ctl.db.First(&food, paramUint(c, "id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, food)
}
