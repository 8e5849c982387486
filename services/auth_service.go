package services

import (
	"errors"
	"strings"
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"
	"github.com/MINJiwonJiwon/capstone-snapncook/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const refreshTokenTTL = 7 * 24 * time.Hour

var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrInvalidToken      = errors.New("invalid or expired refresh token")
	ErrSessionCreation   = errors.New("failed to create session")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Signup(email, password, nickname string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hashed,
		Nickname:     nickname,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Two concurrent signups with the same email race past the read
		// check; the unique index is the final arbiter.
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login returns an access token only after the refresh token row is
// durable, so the client never holds a session it cannot refresh.
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredential
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	refresh, err := s.IssueRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	access, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) IssueRefreshToken(userID uint) (string, error) {
	token := uuid.NewString()
	row := models.RefreshToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(refreshTokenTTL),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return "", ErrSessionCreation
	}
	return token, nil
}

// VerifyRefreshToken succeeds only for a stored token that is neither
// revoked nor expired.
func (s *AuthService) VerifyRefreshToken(token string) (uint, error) {
	var row models.RefreshToken
	err := s.db.Where("token = ? AND revoked = ? AND expires_at > ?",
		token, false, time.Now().UTC()).First(&row).Error
	if err != nil {
		return 0, ErrInvalidToken
	}
	return row.UserID, nil
}

// Rotate issues a new access token for a valid refresh token. The refresh
// token itself is reused until expiry or logout.
func (s *AuthService) Rotate(token string) (string, error) {
	userID, err := s.VerifyRefreshToken(token)
	if err != nil {
		return "", err
	}
	return utils.GenerateJWT(userID)
}

// Revoke marks the token revoked. Revoking a missing or already-revoked
// token is a no-op, matching logout semantics.
func (s *AuthService) Revoke(token string) error {
	return s.db.Model(&models.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

// DeleteExpiredRefreshTokens reclaims storage for rows past expiry,
// revoked or not. Invoked by the scheduler.
func (s *AuthService) DeleteExpiredRefreshTokens(now time.Time) (int64, error) {
	res := s.db.Unscoped().
		Where("expires_at < ?", now).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Driver-specific fallbacks for postgres and the sqlite test driver.
	return strings.Contains(err.Error(), "duplicate key") ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
