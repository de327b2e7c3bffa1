package router

import (
	"context"
	"time"
	"tvguide/internal/app/guide"

	"go.uber.org/zap"
)

const waitSeconds = 30

// Schedule 定时调度更新缓存数据
func Schedule(ctx context.Context, guideClient *guide.Client, duration time.Duration) {
	// 创建定时任务
	ticker := time.NewTicker(duration)
	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Info("The scheduling task has been stopped.")
				return
			case <-ticker.C:
				logger.Info("Start executing the scheduling task.")

				// 更新指南文档数据
				if err := updateGuideWithRetry(ctx, guideClient, 3); err != nil {
					logger.Error("Failed to update guide document.", zap.Error(err))
				}

				logger.Info("The scheduling task has been completed.")
			}
		}
	}()
}
