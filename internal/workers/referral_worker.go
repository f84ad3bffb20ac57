package workers

import (
	"context"
	"time"

	"rishta_backend/internal/logger"
	"rishta_backend/internal/services"
)

const rewardBatchSize = 100

// ReferralWorker pays out completed referrals in batches.
type ReferralWorker struct {
	referralService services.ReferralService
	interval        time.Duration
}

func NewReferralWorker(referralService services.ReferralService) *ReferralWorker {
	return &ReferralWorker{
		referralService: referralService,
		interval:        10 * time.Minute,
	}
}

func (w *ReferralWorker) Start(ctx context.Context) {
	go w.rewardLoop(ctx)
}

func (w *ReferralWorker) rewardLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Referral worker stopped")
			return
		case <-ticker.C:
			rewarded, err := w.referralService.RewardCompleted(rewardBatchSize)
			if err != nil {
				logger.WorkerLog("referral", "reward_completed", err)
				continue
			}
			if rewarded > 0 {
				logger.Info("Rewarded completed referrals", "count", rewarded)
			}
		}
	}
}
