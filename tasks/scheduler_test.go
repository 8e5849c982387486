package tasks

import (
	"fmt"
	"testing"

	"github.com/MINJiwonJiwon/capstone-snapncook/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSchedulerStartStop(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	s := NewScheduler(db, zerolog.Nop())
	if err := s.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if got := len(s.cron.Entries()); got != 3 {
		t.Fatalf("expected 3 scheduled jobs, got %d", got)
	}
	s.Stop()
}
