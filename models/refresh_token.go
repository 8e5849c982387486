package models

import (
	"time"

	"gorm.io/gorm"
)

// RefreshToken is usable only while Revoked is false and ExpiresAt is in
// the future. Revocation is monotonic; expired rows are swept by the
// scheduler as a cleanup concern, not a correctness one.
type RefreshToken struct {
	gorm.Model
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
}
