package workers

import (
	"context"
	"time"

	"rishta_backend/internal/logger"
	"rishta_backend/internal/services"
)

const notificationRetention = 30 * 24 * time.Hour

// NotificationWorker prunes read notifications past the retention window.
type NotificationWorker struct {
	notificationService services.NotificationService
	interval            time.Duration
}

func NewNotificationWorker(notificationService services.NotificationService) *NotificationWorker {
	return &NotificationWorker{
		notificationService: notificationService,
		interval:            24 * time.Hour,
	}
}

func (w *NotificationWorker) Start(ctx context.Context) {
	go w.cleanupLoop(ctx)
}

func (w *NotificationWorker) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Notification worker stopped")
			return
		case <-ticker.C:
			deleted, err := w.notificationService.DeleteOldRead(time.Now().Add(-notificationRetention))
			if err != nil {
				logger.WorkerLog("notification", "cleanup", err)
				continue
			}
			if deleted > 0 {
				logger.Info("Pruned old notifications", "count", deleted)
			}
		}
	}
}
