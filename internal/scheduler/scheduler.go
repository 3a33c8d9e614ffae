package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"StockScreener/internal/model"
	"StockScreener/internal/notifier"
	"StockScreener/internal/recorder"
	"StockScreener/internal/screener"
)

// Scheduler drives the daily screening run.
type Scheduler struct {
	Cron     *cron.Cron
	Runner   *screener.Runner
	Universe []model.Symbol
	Notifier *notifier.WebhookNotifier
	Recorder recorder.Recorder
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner *screener.Runner, universe []model.Symbol, n *notifier.WebhookNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Runner:   runner,
		Universe: universe,
		Notifier: n,
		Recorder: rec,
		Ctx:      ctx,
	}
}

// RegisterAll registers the daily screening task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyScreen); err != nil {
		return fmt.Errorf("register daily screen: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the screening task immediately (for manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyScreen()
}

func (s *Scheduler) dailyScreen() {
	runID := uuid.NewString()
	log.Printf("[INFO] screening run %s: %d symbols", runID, len(s.Universe))

	results, stats, err := s.Runner.Scan(s.Ctx, s.Universe)
	if err != nil {
		log.Printf("[ERROR] screening run %s: %v", runID, err)
		s.trySend(fmt.Sprintf("❌ screening run failed: %v", err))
		return
	}
	log.Printf("[INFO] run %s complete: %d scanned, %d matched, %d skipped",
		runID, stats.Scanned, stats.Matched, stats.Skipped)

	s.trySend(notifier.FormatReport(results, stats))

	if err := s.Recorder.RecordRun(&recorder.ScreenRun{
		ID:      runID,
		Stats:   stats,
		Results: results,
	}); err != nil {
		log.Printf("[ERROR] record run %s: %v", runID, err)
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
