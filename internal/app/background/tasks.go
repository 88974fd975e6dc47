package background

import (
	"context"
	"time"

	"github.com/AiBusiness-KZ/PizzaMat/internal/logger"
	"github.com/AiBusiness-KZ/PizzaMat/internal/usecase"
	orderusecase "github.com/AiBusiness-KZ/PizzaMat/internal/usecase/order"
	"go.uber.org/zap"
)

type BackgroundTasks struct {
	OrderUsecase     orderusecase.OrderUsecase
	AnalyticsUsecase usecase.AnalyticsUsecase
}

func NewBackgroundTasks(orderUC orderusecase.OrderUsecase, analyticsUC usecase.AnalyticsUsecase) *BackgroundTasks {
	return &BackgroundTasks{
		OrderUsecase:     orderUC,
		AnalyticsUsecase: analyticsUC,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startValidationRetrigger(ctx)
	go bt.startDailyStatsRollup(ctx)
}

// startValidationRetrigger periodically re-fires the receipt-validation
// workflow for orders whose trigger was lost.
func (bt *BackgroundTasks) startValidationRetrigger(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.OrderUsecase.RetriggerStalledValidations(ctx); err != nil {
				logger.L().Error("validation re-trigger sweep failed", zap.Error(err))
			}
		}
	}
}

// startDailyStatsRollup rewrites yesterday's and today's statistics rows
// every hour. Rerunning the same day is safe, the rollup upserts.
func (bt *BackgroundTasks) startDailyStatsRollup(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			for _, day := range []time.Time{now.AddDate(0, 0, -1), now} {
				if err := bt.AnalyticsUsecase.RollupDay(ctx, day); err != nil {
					logger.L().Error("daily stats rollup failed",
						zap.Time("day", day),
						zap.Error(err))
				}
			}
		}
	}
}
