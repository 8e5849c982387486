package services

import (
	"testing"
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestAggregateAndTrend(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRankingService(db, zerolog.Nop())

	today := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	inWindow := time.Date(2025, 6, 9, 12, 0, 0, 0, time.UTC)

	// apple 5+2=7, banana 3 within yesterday's window.
	logs := []struct {
		keyword string
		n       int
	}{
		{"apple", 5}, {"banana", 3}, {"apple", 2},
	}
	for _, l := range logs {
		for i := 0; i < l.n; i++ {
			row := models.SearchLog{Keyword: l.keyword}
			row.CreatedAt = inWindow
			require.NoError(t, db.Create(&row).Error)
		}
	}
	// Outside the half-open window: same-day-as-run and older logs.
	outside := models.SearchLog{Keyword: "apple"}
	outside.CreatedAt = today
	require.NoError(t, db.Create(&outside).Error)
	old := models.SearchLog{Keyword: "apple"}
	old.CreatedAt = inWindow.AddDate(0, 0, -3)
	require.NoError(t, db.Create(&old).Error)

	require.NoError(t, svc.AggregateSearchRankings(PeriodDay, today))

	var snapshot []models.SearchRanking
	require.NoError(t, db.Where("period = ?", PeriodDay).Order("rank asc").Find(&snapshot).Error)
	require.Len(t, snapshot, 2)
	require.Equal(t, "apple", snapshot[0].Keyword)
	require.Equal(t, 1, snapshot[0].Rank)
	require.EqualValues(t, 7, snapshot[0].Count)
	require.Equal(t, "banana", snapshot[1].Keyword)
	require.Equal(t, 2, snapshot[1].Rank)
	require.EqualValues(t, 3, snapshot[1].Count)

	// Yesterday's snapshot had banana at rank 1, apple absent.
	prevDate := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.SearchRanking{
		Keyword: "banana", Rank: 1, Count: 9, Period: PeriodDay, Date: prevDate,
	}).Error)

	entries, err := svc.PopularSearches(PeriodDay, today)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "apple", entries[0].Keyword)
	require.Equal(t, "new", entries[0].Trend)
	require.Nil(t, entries[0].PreviousRank)

	require.Equal(t, "banana", entries[1].Keyword)
	require.Equal(t, "down", entries[1].Trend)
	require.NotNil(t, entries[1].PreviousRank)
	require.Equal(t, 1, *entries[1].PreviousRank)
}

func TestAggregateRerunReplacesSnapshot(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRankingService(db, zerolog.Nop())

	today := time.Date(2025, 6, 10, 0, 30, 0, 0, time.UTC)
	row := models.SearchLog{Keyword: "kimchi"}
	row.CreatedAt = today.AddDate(0, 0, -1)
	require.NoError(t, db.Create(&row).Error)

	require.NoError(t, svc.AggregateSearchRankings(PeriodDay, today))
	require.NoError(t, svc.AggregateSearchRankings(PeriodDay, today))

	var count int64
	require.NoError(t, db.Model(&models.SearchRanking{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestAggregateTopTenCutoff(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRankingService(db, zerolog.Nop())

	today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	inWindow := today.AddDate(0, 0, -1).Add(6 * time.Hour)

	// 12 keywords with descending frequency; only 10 may survive.
	keywords := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}
	for i, kw := range keywords {
		for n := 0; n < len(keywords)-i; n++ {
			row := models.SearchLog{Keyword: kw}
			row.CreatedAt = inWindow
			require.NoError(t, db.Create(&row).Error)
		}
	}

	require.NoError(t, svc.AggregateSearchRankings(PeriodDay, today))

	var snapshot []models.SearchRanking
	require.NoError(t, db.Order("rank asc").Find(&snapshot).Error)
	require.Len(t, snapshot, 10)
	require.Equal(t, "a", snapshot[0].Keyword)
	require.Equal(t, 10, snapshot[9].Rank)
}

func TestUnknownPeriodRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRankingService(db, zerolog.Nop())

	require.ErrorIs(t, svc.AggregateSearchRankings("month", time.Now().UTC()), ErrUnknownPeriod)
	_, err := svc.PopularSearches("month", time.Now().UTC())
	require.ErrorIs(t, err, ErrUnknownPeriod)
}
