package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/ShopApp/internal/config"
	"github.com/GoArmGo/ShopApp/internal/core/ports"
	"github.com/GoArmGo/ShopApp/internal/database/client"
	"github.com/GoArmGo/ShopApp/internal/usecase"
)

type App struct {
	Config           *config.Config
	logger           *slog.Logger
	dbClient         *client.Client
	accountUseCase   usecase.AccountUseCase
	productUseCase   usecase.ProductUseCase
	activityConsumer ports.ActivityConsumer
	activityStorage  ports.ActivityStorage
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	accountUseCase usecase.AccountUseCase,
	productUseCase usecase.ProductUseCase,
	activityConsumer ports.ActivityConsumer,
	activityStorage ports.ActivityStorage,
) *App {
	return &App{
		Config:           cfg,
		logger:           logger,
		dbClient:         dbClient,
		accountUseCase:   accountUseCase,
		productUseCase:   productUseCase,
		activityConsumer: activityConsumer,
		activityStorage:  activityStorage,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("application starting", "mode", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.accountUseCase, a.productUseCase, a.logger)

	case "worker":
		err = runWorker(ctx, a.activityConsumer, a.activityStorage, a.logger)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	a.logger.Info("application stopped")
	return nil
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если consumer имеет метод Close — вызываем его
	if closer, ok := a.activityConsumer.(interface{ Close() error }); ok {
		_ = closer.Close()
	}

	return nil
}
