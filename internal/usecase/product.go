package usecase

import (
	"context"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// ProductUseCase определяет интерфейс бизнес-логики товаров.
// Каждая мутирующая операция проверяет политику доступа до мутации;
// порядок проверок фиксированный: существование, владение, цена.
type ProductUseCase interface {
	// CreateProduct сохраняет товар под бизнесом актора.
	// Неположительная цена — domain.ErrInvalidInput, мутация не выполняется.
	CreateProduct(ctx context.Context, actor *domain.User, name string, price float64) (*domain.Product, error)

	// GetProduct получает товар вместе с бизнесом и владельцем.
	GetProduct(ctx context.Context, id uint) (*domain.Product, error)

	// ListProducts получает все товары.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// UpdateProduct обновляет имя и цену товара. Актор-невладелец —
	// domain.ErrForbidden, неположительная цена — domain.ErrInvalidInput.
	UpdateProduct(ctx context.Context, actor *domain.User, id uint, name string, price float64) (*domain.Product, error)

	// DeleteProduct удаляет товар. Актор-невладелец — domain.ErrForbidden.
	DeleteProduct(ctx context.Context, actor *domain.User, id uint) error
}
