package services

import (
	"testing"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"
	"github.com/MINJiwonJiwon/capstone-snapncook/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func googleProfile(email, id string) OAuthProfile {
	return OAuthProfile{
		Email:           email,
		Nickname:        "tester",
		ProfileImageURL: "https://img.example.com/p.png",
		Provider:        "google",
		OAuthID:         id,
	}
}

func TestResolveOAuthUserIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOAuthService(db, zerolog.Nop())

	first, err := svc.ResolveOAuthUser(googleProfile("a@x.com", "g-123"))
	require.NoError(t, err)
	second, err := svc.ResolveOAuthUser(googleProfile("a@x.com", "g-123"))
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var userCount, socialCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.SocialAccount{}).Count(&socialCount).Error)
	require.EqualValues(t, 1, userCount)
	require.EqualValues(t, 1, socialCount)
}

func TestResolveOAuthUserConvergesOnEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOAuthService(db, zerolog.Nop())

	// Password signup first.
	hashed, err := utils.HashPassword("password123")
	require.NoError(t, err)
	original := models.User{Email: "a@x.com", PasswordHash: hashed, Nickname: "pw-user"}
	require.NoError(t, db.Create(&original).Error)

	// A different provider arrives with the same email.
	profile := OAuthProfile{
		Email:    "a@x.com",
		Nickname: "kakao-user",
		Provider: "kakao",
		OAuthID:  "k-9",
	}
	resolved, err := svc.ResolveOAuthUser(profile)
	require.NoError(t, err)
	require.Equal(t, original.ID, resolved.ID)

	var social models.SocialAccount
	require.NoError(t, db.Where("provider = ? AND oauth_id = ?", "kakao", "k-9").First(&social).Error)
	require.Equal(t, original.ID, social.UserID)

	// Resolving again does not duplicate the link.
	_, err = svc.ResolveOAuthUser(profile)
	require.NoError(t, err)
	var socialCount int64
	require.NoError(t, db.Model(&models.SocialAccount{}).Count(&socialCount).Error)
	require.EqualValues(t, 1, socialCount)
}

func TestResolveOAuthUserTwoProvidersOneAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOAuthService(db, zerolog.Nop())

	fromGoogle, err := svc.ResolveOAuthUser(googleProfile("a@x.com", "g-1"))
	require.NoError(t, err)

	fromNaver, err := svc.ResolveOAuthUser(OAuthProfile{
		Email:    "a@x.com",
		Nickname: "naver-user",
		Provider: "naver",
		OAuthID:  "n-1",
	})
	require.NoError(t, err)
	require.Equal(t, fromGoogle.ID, fromNaver.ID)

	var userCount, socialCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.NoError(t, db.Model(&models.SocialAccount{}).Count(&socialCount).Error)
	require.EqualValues(t, 1, userCount)
	require.EqualValues(t, 2, socialCount)
}

func TestResolveOAuthUserRejectsIncompleteProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := NewOAuthService(db, zerolog.Nop())

	_, err := svc.ResolveOAuthUser(OAuthProfile{Provider: "google", OAuthID: "g-1"})
	require.ErrorIs(t, err, ErrIncompleteProfile)

	_, err = svc.ResolveOAuthUser(OAuthProfile{Provider: "google", Email: "a@x.com"})
	require.ErrorIs(t, err, ErrIncompleteProfile)
}

func TestNormalizeKakaoFallbacks(t *testing.T) {
	raw := []byte(`{"id": 12345, "kakao_account": {"profile": {}}}`)
	profile, err := normalizeKakao(raw)
	require.NoError(t, err)
	require.Equal(t, "kakao_12345@example.com", profile.Email)
	require.Equal(t, "카카오유저", profile.Nickname)
	require.Equal(t, "12345", profile.OAuthID)
}

func TestNormalizeNaverNestedResponse(t *testing.T) {
	raw := []byte(`{"response": {"id": "n-77", "email": "n@x.com", "name": "네이버사람", "profile_image": "https://img/n.png"}}`)
	profile, err := normalizeNaver(raw)
	require.NoError(t, err)
	require.Equal(t, "n-77", profile.OAuthID)
	require.Equal(t, "n@x.com", profile.Email)
	require.Equal(t, "네이버사람", profile.Nickname)
}
