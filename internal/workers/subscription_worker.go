package workers

import (
	"context"
	"time"

	"rishta_backend/internal/logger"
	"rishta_backend/internal/services"
)

// SubscriptionWorker marks overdue subscriptions as expired so premium
// checks stop honoring them.
type SubscriptionWorker struct {
	subscriptionService services.SubscriptionService
	interval            time.Duration
}

func NewSubscriptionWorker(subscriptionService services.SubscriptionService) *SubscriptionWorker {
	return &SubscriptionWorker{
		subscriptionService: subscriptionService,
		interval:            1 * time.Hour,
	}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.expireLoop(ctx)
}

func (w *SubscriptionWorker) expireLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			expired, err := w.subscriptionService.ExpireOverdue(time.Now())
			if err != nil {
				logger.WorkerLog("subscription", "expire_overdue", err)
				continue
			}
			if expired > 0 {
				logger.Info("Expired overdue subscriptions", "count", expired)
			}
		}
	}
}
