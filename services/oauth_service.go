package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

var (
	ErrUnknownProvider   = errors.New("unknown oauth provider")
	ErrIncompleteProfile = errors.New("oauth profile missing email or id")
	ErrUpstream          = errors.New("upstream provider error")
)

// OAuthProfile is the normalized shape every provider is mapped into
// before account resolution.
type OAuthProfile struct {
	Email           string
	Nickname        string
	ProfileImageURL string
	Provider        string
	OAuthID         string
}

// providerConfig describes one provider: its oauth2 endpoints plus the
// mapping from its raw userinfo JSON to the normalized profile. The three
// integrations differ only in this record.
type providerConfig struct {
	name        string
	oauth       *oauth2.Config
	userinfoURL string
	normalize   func(raw []byte) (OAuthProfile, error)
}

type OAuthService struct {
	db        *gorm.DB
	providers map[string]providerConfig
	client    *http.Client
	log       zerolog.Logger
}

func NewOAuthService(db *gorm.DB, logger zerolog.Logger) *OAuthService {
	s := &OAuthService{
		db:        db,
		providers: map[string]providerConfig{},
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       logger,
	}

	s.register(providerConfig{
		name: "google",
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://accounts.google.com/o/oauth2/auth",
				TokenURL: "https://oauth2.googleapis.com/token",
			},
		},
		userinfoURL: "https://www.googleapis.com/oauth2/v1/userinfo",
		normalize:   normalizeGoogle,
	})

	s.register(providerConfig{
		name: "kakao",
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("KAKAO_CLIENT_ID"),
			ClientSecret: os.Getenv("KAKAO_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("KAKAO_REDIRECT_URI"),
			Scopes:       []string{"profile_nickname", "profile_image", "account_email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://kauth.kakao.com/oauth/authorize",
				TokenURL: "https://kauth.kakao.com/oauth/token",
			},
		},
		userinfoURL: "https://kapi.kakao.com/v2/user/me",
		normalize:   normalizeKakao,
	})

	s.register(providerConfig{
		name: "naver",
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("NAVER_CLIENT_ID"),
			ClientSecret: os.Getenv("NAVER_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("NAVER_REDIRECT_URI"),
			Scopes:       []string{"profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://nid.naver.com/oauth2.0/authorize",
				TokenURL: "https://nid.naver.com/oauth2.0/token",
			},
		},
		userinfoURL: "https://openapi.naver.com/v1/nid/me",
		normalize:   normalizeNaver,
	})

	return s
}

func (s *OAuthService) register(p providerConfig) {
	s.providers[p.name] = p
}

// AuthCodeURL returns the provider's authorization redirect URL.
func (s *OAuthService) AuthCodeURL(provider, state string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", ErrUnknownProvider
	}
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

// ExchangeProfile trades the authorization code for the provider's
// userinfo and normalizes it. Transport and provider errors surface as
// ErrUpstream with the raw detail attached.
func (s *OAuthService) ExchangeProfile(ctx context.Context, provider, code string) (OAuthProfile, error) {
	p, ok := s.providers[provider]
	if !ok {
		return OAuthProfile{}, ErrUnknownProvider
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.client)
	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("%w: exchanging code with %s: %v", ErrUpstream, provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userinfoURL, nil)
	if err != nil {
		return OAuthProfile{}, err
	}
	token.SetAuthHeader(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("%w: calling %s userinfo: %v", ErrUpstream, provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("%w: reading %s userinfo: %v", ErrUpstream, provider, err)
	}
	if resp.StatusCode != http.StatusOK {
		return OAuthProfile{}, fmt.Errorf("%w: %s userinfo returned %d: %s",
			ErrUpstream, provider, resp.StatusCode, string(body))
	}

	profile, err := p.normalize(body)
	if err != nil {
		return OAuthProfile{}, fmt.Errorf("%w: decoding %s userinfo: %v", ErrUpstream, provider, err)
	}
	if profile.Email == "" || profile.OAuthID == "" {
		return OAuthProfile{}, ErrIncompleteProfile
	}
	return profile, nil
}

func normalizeGoogle(raw []byte) (OAuthProfile, error) {
	var v struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return OAuthProfile{}, err
	}
	return OAuthProfile{
		Email:           v.Email,
		Nickname:        v.Name,
		ProfileImageURL: v.Picture,
		Provider:        "google",
		OAuthID:         v.ID,
	}, nil
}

func normalizeKakao(raw []byte) (OAuthProfile, error) {
	var v struct {
		ID      json.Number `json:"id"`
		Account struct {
			Email   string `json:"email"`
			Profile struct {
				Nickname        string `json:"nickname"`
				ProfileImageURL string `json:"profile_image_url"`
			} `json:"profile"`
		} `json:"kakao_account"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return OAuthProfile{}, err
	}
	id := v.ID.String()
	email := v.Account.Email
	if email == "" {
		// Kakao may withhold the email depending on consent.
		email = fmt.Sprintf("kakao_%s@example.com", id)
	}
	nickname := v.Account.Profile.Nickname
	if nickname == "" {
		nickname = "카카오유저"
	}
	return OAuthProfile{
		Email:           email,
		Nickname:        nickname,
		ProfileImageURL: v.Account.Profile.ProfileImageURL,
		Provider:        "kakao",
		OAuthID:         id,
	}, nil
}

func normalizeNaver(raw []byte) (OAuthProfile, error) {
	var v struct {
		Response struct {
			ID           string `json:"id"`
			Email        string `json:"email"`
			Name         string `json:"name"`
			ProfileImage string `json:"profile_image"`
		} `json:"response"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return OAuthProfile{}, err
	}
	name := v.Response.Name
	if name == "" {
		name = "네이버유저"
	}
	return OAuthProfile{
		Email:           v.Response.Email,
		Nickname:        name,
		ProfileImageURL: v.Response.ProfileImage,
		Provider:        "naver",
		OAuthID:         v.Response.ID,
	}, nil
}

// ResolveOAuthUser maps a normalized profile to exactly one local user:
//  1. an existing social link wins,
//  2. an existing user with the same email is silently auto-linked,
//  3. otherwise a new user plus social link is created.
//
// Callers must reject profiles missing email or oauth id before invoking.
func (s *OAuthService) ResolveOAuthUser(p OAuthProfile) (*models.User, error) {
	if p.Email == "" || p.OAuthID == "" {
		return nil, ErrIncompleteProfile
	}

	user, err := s.resolveOnce(p)
	if err != nil && isUniqueViolation(err) {
		// Lost the first-login race to a concurrent request; the unique
		// index on (provider, oauth_id) is the arbiter. Re-resolve once.
		s.log.Warn().Str("provider", p.Provider).Msg("oauth resolve raced, retrying lookup")
		return s.resolveOnce(p)
	}
	return user, err
}

func (s *OAuthService) resolveOnce(p OAuthProfile) (*models.User, error) {
	// 1. Returning OAuth user: social link already exists.
	var social models.SocialAccount
	err := s.db.Where("provider = ? AND oauth_id = ?", p.Provider, p.OAuthID).
		First(&social).Error
	if err == nil {
		var user models.User
		if err := s.db.First(&user, social.UserID).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. Same email, different provider: auto-link to the existing account.
	var emailUser models.User
	err = s.db.Where("email = ?", p.Email).First(&emailUser).Error
	if err == nil {
		var existing models.SocialAccount
		linkErr := s.db.Where("user_id = ? AND provider = ?", emailUser.ID, p.Provider).
			First(&existing).Error
		if errors.Is(linkErr, gorm.ErrRecordNotFound) {
			link := models.SocialAccount{
				Provider: p.Provider,
				OAuthID:  p.OAuthID,
				UserID:   emailUser.ID,
			}
			if err := s.db.Create(&link).Error; err != nil {
				return nil, err
			}
			s.log.Info().Str("provider", p.Provider).Uint("user_id", emailUser.ID).
				Msg("linked social account to existing user")
		} else if linkErr != nil {
			return nil, linkErr
		}
		return &emailUser, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 3. First sign-in: create user and social link together.
	user := models.User{
		Email:           p.Email,
		Nickname:        p.Nickname,
		ProfileImageURL: p.ProfileImageURL,
		OAuthProvider:   p.Provider,
		OAuthID:         p.OAuthID,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		link := models.SocialAccount{
			Provider: p.Provider,
			OAuthID:  p.OAuthID,
			UserID:   user.ID,
		}
		return tx.Create(&link).Error
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("provider", p.Provider).Uint("user_id", user.ID).
		Msg("created user from oauth profile")
	return &user, nil
}
