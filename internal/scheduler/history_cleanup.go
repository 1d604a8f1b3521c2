package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// MoveJournal is the retention side of the move history.
type MoveJournal interface {
	DeleteOldMoves(olderThan time.Time) (int64, error)
}

type HistoryCleanupConfig struct {
	Enabled       bool
	RetentionDays int
	Schedule      string // Cron format: "0 3 * * *" = daily at 03:00
}

// HistoryCleanupScheduler periodically prunes the move journal
type HistoryCleanupScheduler struct {
	journal MoveJournal
	config  HistoryCleanupConfig
	now     func() time.Time

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
}

// ValidateCronSchedule checks a five-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := newParser().Parse(schedule)
	return err
}

// NewHistoryCleanupScheduler creates a new scheduler instance
func NewHistoryCleanupScheduler(journal MoveJournal, config HistoryCleanupConfig) *HistoryCleanupScheduler {
	return &HistoryCleanupScheduler{
		journal: journal,
		config:  config,
		now:     time.Now,
		cron:    cron.New(cron.WithParser(newParser())),
	}
}

// Start begins the scheduler if history cleanup is enabled
func (s *HistoryCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("History cleanup scheduler: disabled")
		return nil
	}

	if s.config.RetentionDays <= 0 {
		log.Printf("History cleanup scheduler: retention not configured, skipping")
		return nil
	}

	if err := ValidateCronSchedule(s.config.Schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.config.Schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("History cleanup scheduler: started with schedule '%s', keeping %d days",
		s.config.Schedule, s.config.RetentionDays)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *HistoryCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("History cleanup scheduler: stopped")
}

func (s *HistoryCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next cleanup will occur
func (s *HistoryCleanupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunNow deletes journal entries older than the retention window and
// returns how many were removed.
func (s *HistoryCleanupScheduler) RunNow() (int64, error) {
	cutoff := s.now().AddDate(0, 0, -s.config.RetentionDays)
	deleted, err := s.journal.DeleteOldMoves(cutoff)
	if err != nil {
		log.Printf("History cleanup: failed: %v", err)
		return 0, err
	}
	log.Printf("History cleanup: removed %d moves older than %s", deleted, cutoff.Format(time.RFC3339))
	return deleted, nil
}
