package di

import (
	"github.com/GoArmGo/ShopApp/internal/adapter/mail"
	"github.com/GoArmGo/ShopApp/internal/app"
	"github.com/GoArmGo/ShopApp/internal/config"
	"github.com/GoArmGo/ShopApp/internal/database/client"
	"github.com/GoArmGo/ShopApp/internal/database/storage"
	"github.com/GoArmGo/ShopApp/internal/logger"
	"github.com/GoArmGo/ShopApp/internal/rabbitmq"
	"github.com/GoArmGo/ShopApp/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (sqlx + GORM, миграции)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.Gorm, slogger)
	businessStorage := storage.NewBusinessStorage(dbClient.Gorm, slogger)
	productStorage := storage.NewProductStorage(dbClient.Gorm, slogger)
	activityStorage := storage.NewActivityStorage(dbClient.DB, slogger)

	// 4. Инициализация клиентов внешних сервисов
	smtpMailer, err := mail.NewSMTPMailer(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 5. Инициализация RabbitMQ клиента (publisher и consumer)
	rabbitMQClient, err := rabbitmq.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 6. Инициализация бизнес-логики (usecases)
	accountUseCase := usecase.NewAccountUseCase(
		userStorage,
		smtpMailer,
		rabbitMQClient,
		[]byte(cfg.SecretKey),
		cfg.BaseURL,
		slogger,
	)
	productUseCase := usecase.NewProductUseCase(productStorage, businessStorage, slogger)

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		accountUseCase,
		productUseCase,
		rabbitMQClient,
		activityStorage,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
