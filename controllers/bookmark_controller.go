package controllers

import (
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookmarkController struct {
	db *gorm.DB
}

func NewBookmarkController(db *gorm.DB) *BookmarkController {
	return &BookmarkController{db: db}
}

type BookmarkCreate struct {
	RecipeID uint `json:"recipe_id" binding:"required"`
}

func (ctl *BookmarkController) Create(c *gin.Context) {
	var input BookmarkCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var recipe models.Recipe
	if err := ctl.db.First(&recipe, input.RecipeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}

	bookmark := models.Bookmark{UserID: middlewares.CurrentUserID(c), RecipeID: input.RecipeID}
	if err := ctl.db.Create(&bookmark).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "already bookmarked"})
		return
	}
	c.JSON(http.StatusCreated, bookmark)
}

func (ctl *BookmarkController) Delete(c *gin.Context) {
	res := ctl.db.Unscoped().
		Where("id = ? AND user_id = ?", paramUint(c, "id"), middlewares.CurrentUserID(c)).
		Delete(&models.Bookmark{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bookmark removed"})
}

func (ctl *BookmarkController) ListMine(c *gin.Context) {
	var bookmarks []models.Bookmark
	err := ctl.db.Preload("Recipe").
		Where("user_id = ?", middlewares.CurrentUserID(c)).
		Find(&bookmarks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, bookmarks)
}
