package models

import (
	"time"

	"gorm.io/gorm"
)

// SearchLog is an append-only event per search query.
type SearchLog struct {
	gorm.Model
	Keyword string `gorm:"not null;index" json:"keyword"`
	UserID  *uint  `json:"user_id,omitempty"`
}

// SearchRanking is a materialized top-10 snapshot for one period window.
// Rank 1 is best.
type SearchRanking struct {
	gorm.Model
	Keyword string    `gorm:"not null" json:"keyword"`
	Rank    int       `gorm:"not null" json:"rank"`
	Count   int64     `gorm:"not null" json:"count"`
	Period  string    `gorm:"not null;index:idx_period_date" json:"period"`
	Date    time.Time `gorm:"not null;index:idx_period_date" json:"date"`
}
