package ports

import (
	"context"

	"github.com/GoArmGo/ShopApp/internal/messaging/payloads"
)

// ActivityPublisher определяет методы для публикации событий аутентификации.
// Этот интерфейс используется бизнес-логикой аккаунтов; публикация best-effort —
// ошибка публикации логируется и не валит запрос.
type ActivityPublisher interface {
	PublishActivity(ctx context.Context, payload payloads.ActivityPayload) error
}

// ActivityConsumer определяет методы для потребления событий аутентификации,
// будет использоваться воркером для получения событий из очереди.
type ActivityConsumer interface {
	// StartConsumingActivities начинает прослушивание очереди событий,
	// принимает функцию-обработчик, которая вызывается для каждого события.
	StartConsumingActivities(ctx context.Context, handler func(context.Context, payloads.ActivityPayload) error) error
}
