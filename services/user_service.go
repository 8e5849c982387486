package services

import (
	"errors"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"gorm.io/gorm"
)

var ErrSocialLinkNotFound = errors.New("no social account linked for provider")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, nickname, profileImageURL string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if nickname != "" {
		user.Nickname = nickname
	}
	if profileImageURL != "" {
		user.ProfileImageURL = profileImageURL
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the user and everything they own. Hard deletes,
// matching the account-closure cascade.
func (s *UserService) DeleteAccount(userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, owned := range []interface{}{
			&models.RefreshToken{},
			&models.SocialAccount{},
			&models.DetectionResult{},
			&models.Review{},
			&models.Bookmark{},
			&models.UserLog{},
		} {
			if err := tx.Unscoped().Where("user_id = ?", userID).Delete(owned).Error; err != nil {
				return err
			}
		}
		var inputs []models.UserIngredientInput
		if err := tx.Where("user_id = ?", userID).Find(&inputs).Error; err != nil {
			return err
		}
		for _, in := range inputs {
			if err := tx.Unscoped().Where("input_id = ?", in.ID).
				Delete(&models.UserIngredientInputRecipe{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Unscoped().Where("user_id = ?", userID).
			Delete(&models.UserIngredientInput{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, userID).Error
	})
}

// UnlinkSocial removes the social link for one provider. The authoritative
// record is the SocialAccount row; the legacy denormalized columns on User
// are cleared when they reference the removed provider.
func (s *UserService) UnlinkSocial(userID uint, provider string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Unscoped().
			Where("user_id = ? AND provider = ?", userID, provider).
			Delete(&models.SocialAccount{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSocialLinkNotFound
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}
		if user.OAuthProvider == provider {
			return tx.Model(&user).
				Updates(map[string]interface{}{"oauth_provider": "", "oauth_id": ""}).Error
		}
		return nil
	})
}
