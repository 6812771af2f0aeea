package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/ShopApp/internal/core/ports"
	"github.com/GoArmGo/ShopApp/internal/domain"
)

// productUseCase implements ProductUseCase
type productUseCase struct {
	productStorage  ports.ProductStorage
	businessStorage ports.BusinessStorage
	logger          *slog.Logger
}

// NewProductUseCase создает новый экземпляр ProductUseCase
func NewProductUseCase(
	productStorage ports.ProductStorage,
	businessStorage ports.BusinessStorage,
	logger *slog.Logger,
) ProductUseCase {
	return &productUseCase{
		productStorage:  productStorage,
		businessStorage: businessStorage,
		logger:          logger,
	}
}

// CreateProduct проверяет цену и сохраняет товар под бизнесом актора
func (uc *productUseCase) CreateProduct(ctx context.Context, actor *domain.User, name string, price float64) (*domain.Product, error) {
	if !ValidPrice(price) {
		return nil, fmt.Errorf("%w: цена должна быть строго положительной", domain.ErrInvalidInput)
	}

	business, err := uc.businessStorage.GetBusinessByOwner(ctx, actor.ID)
	if err != nil {
		// каждый пользователь обязан владеть бизнесом с момента регистрации
		return nil, fmt.Errorf("usecase: бизнес актора не найден: %w", err)
	}

	product := &domain.Product{
		Name:       name,
		Price:      price,
		BusinessID: business.ID,
	}
	if err := uc.productStorage.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	uc.logger.Info("product created", "product_id", product.ID, "business_id", business.ID)
	return product, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id uint) (*domain.Product, error) {
	product, err := uc.productStorage.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}
	return product, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.productStorage.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}
	return products, nil
}

// UpdateProduct — порядок проверок: существование, владение, цена
func (uc *productUseCase) UpdateProduct(ctx context.Context, actor *domain.User, id uint, name string, price float64) (*domain.Product, error) {
	product, err := uc.productStorage.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	if !CanModify(actor, product.Business) {
		uc.logger.Warn("update rejected, actor is not the owner", "product_id", id, "actor_id", actor.ID)
		return nil, domain.ErrForbidden
	}

	if !ValidPrice(price) {
		return nil, fmt.Errorf("%w: цена должна быть строго положительной", domain.ErrInvalidInput)
	}

	product.Name = name
	product.Price = price
	if err := uc.productStorage.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	uc.logger.Info("product updated", "product_id", id, "actor_id", actor.ID)
	return product, nil
}

// DeleteProduct — порядок проверок: существование, владение
func (uc *productUseCase) DeleteProduct(ctx context.Context, actor *domain.User, id uint) error {
	product, err := uc.productStorage.GetProductByID(ctx, id)
	if err != nil {
		return fmt.Errorf("usecase: %w", err)
	}

	if !CanModify(actor, product.Business) {
		uc.logger.Warn("delete rejected, actor is not the owner", "product_id", id, "actor_id", actor.ID)
		return domain.ErrForbidden
	}

	if err := uc.productStorage.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("usecase: %w", err)
	}

	uc.logger.Info("product deleted", "product_id", id, "actor_id", actor.ID)
	return nil
}
