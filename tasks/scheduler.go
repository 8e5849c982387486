package tasks

import (
	"time"

	"github.com/MINJiwonJiwon/capstone-snapncook/services"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Scheduler owns the background jobs: the expired refresh-token sweep and
// the search-ranking snapshots. Constructed once at startup; Stop cancels
// pending timers. A failed run is logged and skipped, the next scheduled
// invocation is the retry.
type Scheduler struct {
	cron    *cron.Cron
	auth    *services.AuthService
	ranking *services.RankingService
	log     zerolog.Logger
}

func NewScheduler(db *gorm.DB, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithLocation(time.UTC)),
		auth:    services.NewAuthService(db),
		ranking: services.NewRankingService(db, logger),
		log:     logger,
	}
}

func (s *Scheduler) Start() error {
	// Daily snapshot just after midnight, weekly on Monday, token sweep
	// at 03:00, all UTC.
	if _, err := s.cron.AddFunc("5 0 * * *", func() {
		s.runAggregation(services.PeriodDay)
	}); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("10 0 * * 1", func() {
		s.runAggregation(services.PeriodWeek)
	}); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("0 3 * * *", s.runTokenSweep); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runAggregation(period string) {
	if err := s.ranking.AggregateSearchRankings(period, time.Now().UTC()); err != nil {
		s.log.Error().Err(err).Str("period", period).Msg("search ranking aggregation failed")
	}
}

func (s *Scheduler) runTokenSweep() {
	count, err := s.auth.DeleteExpiredRefreshTokens(time.Now().UTC())
	if err != nil {
		s.log.Error().Err(err).Msg("expired refresh token sweep failed")
		return
	}
	s.log.Info().Int64("deleted", count).Msg("expired refresh tokens deleted")
}
