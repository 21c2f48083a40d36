package cron

import (
	"context"
	"fmt"
	"time"

	"slotify/config"
	"slotify/services/slot"
	"slotify/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSlotCleanup = "slots:cleanup"

// InitCleanupSweeper starts the periodic task that purges expired,
// never-booked slots. It registers a cron-style schedule and a worker to
// consume it, both in the background. Sweep failures are logged and
// swallowed: this is best-effort maintenance and must never take the
// serving path down with it.
func InitCleanupSweeper(slotSvc slot.SlotService) {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSweepDB,
	}

	interval := config.AppConfig.SweepIntervalMinutes
	if interval <= 0 {
		interval = 60
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	spec := fmt.Sprintf("@every %dm", interval)
	if _, err := scheduler.Register(spec, asynq.NewTask(TypeSlotCleanup, nil)); err != nil {
		logger.Error("CleanupSweeper: failed to register schedule", zap.Error(err))
		return
	}

	srv := asynq.NewServer(redisOpts, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSlotCleanup, HandleSlotCleanup(slotSvc))

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("CleanupSweeper: scheduler stopped", zap.Error(err))
		}
	}()
	go func() {
		logger.Info("CleanupSweeper: starting worker", zap.String("interval", spec))
		if err := srv.Run(mux); err != nil {
			logger.Error("CleanupSweeper: worker stopped", zap.Error(err))
		}
	}()
}

// HandleSlotCleanup deletes all slots whose end time has passed and that
// were never booked. Errors are logged, never returned, so a transient
// store outage does not trigger retries or crash the scheduler.
func HandleSlotCleanup(slotSvc slot.SlotService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		count, err := slotSvc.DeleteExpiredSlots(ctx, time.Now())
		if err != nil {
			logger.Error("CleanupSweeper: sweep failed", zap.Error(err))
			return nil
		}

		logger.Info("CleanupSweeper: deleted old slots", zap.Int64("count", count))
		return nil
	}
}
