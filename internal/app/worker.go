package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/ShopApp/internal/core/ports"
	"github.com/GoArmGo/ShopApp/internal/messaging/payloads"
)

// runWorker запускает потребителя RabbitMQ и сохраняет события
// аутентификации в журнал.
func runWorker(
	ctx context.Context,
	activityConsumer ports.ActivityConsumer,
	activityStorage ports.ActivityStorage,
	logger *slog.Logger,
) error {
	logger.Info("worker started, waiting for activity events")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Определяем функцию-обработчик для событий из очереди
	eventHandler := func(ctx context.Context, payload payloads.ActivityPayload) error {
		logger.Info("worker: processing activity event",
			"event_id", payload.EventID,
			"kind", payload.Kind,
			"username", payload.Username,
		)

		if err := activityStorage.SaveActivity(ctx, payload); err != nil {
			logger.Error("worker: failed to save activity", "event_id", payload.EventID, "error", err)
			return err
		}
		return nil
	}

	if err := activityConsumer.StartConsumingActivities(workerCtx, eventHandler); err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	// Ожидаем сигнал завершения
	<-ctx.Done()

	logger.Info("worker: shutdown signal received")
	cancelWorker()

	logger.Info("worker stopped gracefully")
	return nil
}
