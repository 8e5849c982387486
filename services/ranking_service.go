package services

import (
	"errors"
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const (
	PeriodDay  = "day"
	PeriodWeek = "week"

	rankingTopN = 10
)

var ErrUnknownPeriod = errors.New("unknown ranking period")

type RankingService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewRankingService(db *gorm.DB, logger zerolog.Logger) *RankingService {
	return &RankingService{db: db, log: logger}
}

// LogSearch appends one search event.
func (s *RankingService) LogSearch(keyword string, userID *uint) error {
	return s.db.Create(&models.SearchLog{Keyword: keyword, UserID: userID}).Error
}

func periodWindow(period string, today time.Time) (start, end time.Time, err error) {
	end = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	switch period {
	case PeriodDay:
		start = end.AddDate(0, 0, -1)
	case PeriodWeek:
		start = end.AddDate(0, 0, -7)
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
	return start, end, nil
}

func previousSnapshotDate(period string, today time.Time) time.Time {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if period == PeriodWeek {
		return day.AddDate(0, 0, -7)
	}
	return day.AddDate(0, 0, -1)
}

type keywordCount struct {
	Keyword string
	Count   int64
}

// AggregateSearchRankings materializes the top-10 keyword snapshot for the
// half-open window [start, end) ending at today 00:00 UTC. Re-running for
// the same period and date replaces the prior snapshot.
func (s *RankingService) AggregateSearchRankings(period string, today time.Time) error {
	start, end, err := periodWindow(period, today)
	if err != nil {
		return err
	}

	var counts []keywordCount
	err = s.db.Model(&models.SearchLog{}).
		Select("keyword, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Group("keyword").
		Order("count DESC").
		Limit(rankingTopN).
		Scan(&counts).Error
	if err != nil {
		return err
	}

	date := end
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("period = ? AND date = ?", period, date).
			Delete(&models.SearchRanking{}).Error; err != nil {
			return err
		}
		for i, kc := range counts {
			row := models.SearchRanking{
				Keyword: kc.Keyword,
				Rank:    i + 1,
				Count:   kc.Count,
				Period:  period,
				Date:    date,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		s.log.Info().Str("period", period).Time("date", date).
			Int("keywords", len(counts)).Msg("search ranking snapshot written")
		return nil
	})
}

type RankingEntry struct {
	Rank         int    `json:"rank"`
	Keyword      string `json:"keyword"`
	PreviousRank *int   `json:"previous_rank"`
	Trend        string `json:"trend"`
}

// PopularSearches returns today's snapshot with the trend against the
// previous window. Rank 1 is best, so a numerically higher previous rank
// means the keyword improved ("up").
func (s *RankingService) PopularSearches(period string, today time.Time) ([]RankingEntry, error) {
	if period != PeriodDay && period != PeriodWeek {
		return nil, ErrUnknownPeriod
	}

	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	prevDate := previousSnapshotDate(period, today)

	var current []models.SearchRanking
	err := s.db.Where("period = ? AND date = ?", period, date).
		Order("rank asc").Find(&current).Error
	if err != nil {
		return nil, err
	}

	var previous []models.SearchRanking
	err = s.db.Where("period = ? AND date = ?", period, prevDate).
		Find(&previous).Error
	if err != nil {
		return nil, err
	}
	prevRanks := make(map[string]int, len(previous))
	for _, p := range previous {
		prevRanks[p.Keyword] = p.Rank
	}

	entries := make([]RankingEntry, 0, len(current))
	for _, r := range current {
		entry := RankingEntry{Rank: r.Rank, Keyword: r.Keyword}
		if prev, ok := prevRanks[r.Keyword]; ok {
			p := prev
			entry.PreviousRank = &p
			switch {
			case prev > r.Rank:
				entry.Trend = "up"
			case prev < r.Rank:
				entry.Trend = "down"
			default:
				entry.Trend = "same"
			}
		} else {
			entry.Trend = "new"
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
