package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// ProductStorage реализует интерфейс ports.ProductStorage с использованием GORM
type ProductStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewProductStorage создает новый экземпляр ProductStorage
func NewProductStorage(db *gorm.DB, logger *slog.Logger) *ProductStorage {
	return &ProductStorage{db: db, logger: logger}
}

// SaveProduct сохраняет товар в базе данных
func (s *ProductStorage) SaveProduct(ctx context.Context, product *domain.Product) error {
	result := s.db.WithContext(ctx).Create(product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: товар с таким именем уже существует", domain.ErrInvalidInput)
		}
		s.logger.Error("failed to save product", "name", product.Name, "error", result.Error)
		return fmt.Errorf("ошибка при сохранении товара в БД: %w", result.Error)
	}
	return nil
}

// GetProductByID получает товар по ID вместе с бизнесом и его владельцем
func (s *ProductStorage) GetProductByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	result := s.db.WithContext(ctx).Preload("Business.Owner").First(&product, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении товара по ID: %w", result.Error)
	}
	return &product, nil
}

// ListProducts получает все товары
func (s *ProductStorage) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	result := s.db.WithContext(ctx).Order("id").Find(&products)
	if result.Error != nil {
		return nil, fmt.Errorf("ошибка при получении списка товаров из БД: %w", result.Error)
	}
	return products, nil
}

// UpdateProduct обновляет имя и цену товара
func (s *ProductStorage) UpdateProduct(ctx context.Context, product *domain.Product) error {
	result := s.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":  product.Name,
			"price": product.Price,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: товар с таким именем уже существует", domain.ErrInvalidInput)
		}
		s.logger.Error("failed to update product", "product_id", product.ID, "error", result.Error)
		return fmt.Errorf("ошибка при обновлении товара: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteProduct удаляет товар по ID
func (s *ProductStorage) DeleteProduct(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&domain.Product{}, "id = ?", id)
	if result.Error != nil {
		s.logger.Error("failed to delete product", "product_id", id, "error", result.Error)
		return fmt.Errorf("ошибка при удалении товара: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
