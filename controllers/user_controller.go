package controllers

import (
	"errors"
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/middlewares"
	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

type ProfileUpdate struct {
	Nickname        string `json:"nickname"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var input ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(middlewares.CurrentUserID(c), input.Nickname, input.ProfileImageURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "profile update failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctl *UserController) DeleteAccount(c *gin.Context) {
	if err := ctl.users.DeleteAccount(middlewares.CurrentUserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

func (ctl *UserController) UnlinkSocial(c *gin.Context) {
	provider := c.Param("provider")
	err := ctl.users.UnlinkSocial(middlewares.CurrentUserID(c), provider)
	if err != nil {
		if errors.Is(err, services.ErrSocialLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no social account linked for provider"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unlink failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "social account unlinked"})
}
