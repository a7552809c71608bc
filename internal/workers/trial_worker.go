package workers

import (
	"context"
	"time"

	"inflo_backend/internal/logger"
	"inflo_backend/internal/models"
	"inflo_backend/internal/repositories"
)

// TrialWorker periodically sweeps trial users whose 7-day period has ended
// and notifies each of them once.
type TrialWorker struct {
	userRepo         repositories.UserRepository
	notificationRepo repositories.NotificationRepository
	interval         time.Duration
}

func NewTrialWorker(userRepo repositories.UserRepository, notificationRepo repositories.NotificationRepository, interval time.Duration) *TrialWorker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TrialWorker{
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		interval:         interval,
	}
}

// Start blocks until ctx is cancelled.
func (w *TrialWorker) Start(ctx context.Context) {
	logger.Info("Trial worker started", "interval", w.interval.String())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Trial worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *TrialWorker) sweep(ctx context.Context) {
	expired, err := w.userRepo.FindExpiredTrials(time.Now())
	if err != nil {
		logger.CtxWithError(ctx, "Trial sweep failed", err)
		return
	}

	for _, user := range expired {
		notif := &models.Notification{
			ID:        "notif-trial-" + user.ID,
			UserID:    user.ID,
			Title:     "Trial ended",
			Body:      "Your 7-day free trial has ended. Subscribe to keep using Inflo.",
			CreatedAt: time.Now(),
		}
		if err := w.notificationRepo.Create(notif); err != nil {
			logger.CtxWithError(ctx, "Failed to create trial notification", err, "user_id", user.ID)
			continue
		}
		// Marking after a successful notification keeps the sweep retryable.
		if err := w.userRepo.MarkTrialExpired(user.ID); err != nil {
			logger.CtxWithError(ctx, "Failed to mark trial expired", err, "user_id", user.ID)
			continue
		}
		logger.CtxInfo(ctx, "Trial expired", "user_id", user.ID)
	}
}
