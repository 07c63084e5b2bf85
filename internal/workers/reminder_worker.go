package workers

import (
	"context"
	"fmt"
	"time"

	"scholar_backend/internal/email"
	"scholar_backend/internal/logger"
	"scholar_backend/internal/models"
	"scholar_backend/internal/repositories"

	"gorm.io/gorm"
)

// ReminderWorker periodically scans for pending deadlines due within
// the next 24 hours and emails their owners. It only reads rows; it
// never changes deadline state, so a failed send simply retries on the
// next tick.
type ReminderWorker struct {
	db           *gorm.DB
	deadlineRepo repositories.DeadlineRepository
	provider     email.Provider
	interval     time.Duration
}

func NewReminderWorker(db *gorm.DB, deadlineRepo repositories.DeadlineRepository, provider email.Provider, interval time.Duration) *ReminderWorker {
	return &ReminderWorker{
		db:           db,
		deadlineRepo: deadlineRepo,
		provider:     provider,
		interval:     interval,
	}
}

// Start runs the scan loop until the context is cancelled.
func (w *ReminderWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ReminderWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder worker stopped")
			return
		case <-ticker.C:
			w.scan()
		}
	}
}

func (w *ReminderWorker) scan() {
	cutoff := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	deadlines, err := w.deadlineRepo.ListDueBefore(w.db, cutoff)
	if err != nil {
		logger.WorkerLog("reminder", "scan", err)
		return
	}
	if len(deadlines) == 0 {
		return
	}

	// One email per owner per scan, listing everything due soon.
	byOwner := map[string][]models.Deadline{}
	for _, d := range deadlines {
		byOwner[d.UserEmail] = append(byOwner[d.UserEmail], d)
	}

	for owner, items := range byOwner {
		body := "The following deadlines are due within 24 hours:\n\n"
		for _, d := range items {
			body += fmt.Sprintf("  - %s (due %s, priority %s)\n", d.Title, d.DueDate, d.Priority)
		}

		err := w.provider.Send(&email.Message{
			To:      []string{owner},
			Subject: "Upcoming deadlines",
			Body:    body,
		})
		logger.WorkerLog("reminder", "send", err)
	}
}
