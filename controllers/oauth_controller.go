package controllers

import (
	"errors"
	"net/http"

	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const oauthStateCookie = "oauth_state"

type OAuthController struct {
	oauth *services.OAuthService
	auth  *services.AuthService
}

func NewOAuthController(oauth *services.OAuthService, auth *services.AuthService) *OAuthController {
	return &OAuthController{oauth: oauth, auth: auth}
}

// Login redirects to the provider's authorization endpoint with a random
// state bound to a short-lived cookie.
func (ctl *OAuthController) Login(c *gin.Context) {
	provider := c.Param("provider")
	state := uuid.NewString()

	url, err := ctl.oauth.AuthCodeURL(provider, state)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		return
	}

	c.SetCookie(oauthStateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback completes the authorization-code flow: verify state, exchange
// the code for a normalized profile, resolve the local account and issue
// a session.
func (ctl *OAuthController) Callback(c *gin.Context) {
	provider := c.Param("provider")
	code := c.Query("code")
	state := c.Query("state")

	cookieState, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	profile, err := ctl.oauth.ExchangeProfile(c.Request.Context(), provider, code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownProvider):
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown provider"})
		case errors.Is(err, services.ErrIncompleteProfile):
			c.JSON(http.StatusBadRequest, gin.H{"error": "provider profile missing id or email"})
		case errors.Is(err, services.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "oauth callback failed"})
		}
		return
	}

	user, err := ctl.oauth.ResolveOAuthUser(profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "account resolution failed"})
		return
	}

	refresh, err := ctl.auth.IssueRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}
	access, err := ctl.auth.Rotate(refresh)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"token_type":    "bearer",
	})
}
