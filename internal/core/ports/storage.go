package ports

import (
	"context"

	"github.com/GoArmGo/ShopApp/internal/domain"
	"github.com/GoArmGo/ShopApp/internal/messaging/payloads"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей
type UserStorage interface {
	// CreateWithBusiness создает пользователя и его бизнес в одной транзакции.
	// Никакой читатель не должен увидеть пользователя без бизнеса.
	CreateWithBusiness(ctx context.Context, user *domain.User) (*domain.Business, error)

	GetUserByID(ctx context.Context, id uint) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// MarkVerified выставляет is_verified = true. Повторный вызов безвреден.
	MarkVerified(ctx context.Context, id uint) error
}

// BusinessStorage определяет методы для взаимодействия с хранилищем бизнесов
type BusinessStorage interface {
	GetBusinessByID(ctx context.Context, id uint) (*domain.Business, error)
	GetBusinessByOwner(ctx context.Context, ownerID uint) (*domain.Business, error)
}

// ProductStorage определяет методы для взаимодействия с хранилищем товаров
type ProductStorage interface {
	SaveProduct(ctx context.Context, product *domain.Product) error
	GetProductByID(ctx context.Context, id uint) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

// ActivityStorage определяет методы журнала событий аутентификации
// (пишется воркером, читающим очередь).
type ActivityStorage interface {
	SaveActivity(ctx context.Context, event payloads.ActivityPayload) error
}
