package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// BusinessStorage реализует интерфейс ports.BusinessStorage с использованием GORM
type BusinessStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewBusinessStorage создает новый экземпляр BusinessStorage
func NewBusinessStorage(db *gorm.DB, logger *slog.Logger) *BusinessStorage {
	return &BusinessStorage{db: db, logger: logger}
}

// GetBusinessByID получает бизнес по ID вместе с владельцем
func (s *BusinessStorage) GetBusinessByID(ctx context.Context, id uint) (*domain.Business, error) {
	var business domain.Business
	result := s.db.WithContext(ctx).Preload("Owner").First(&business, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении бизнеса по ID: %w", result.Error)
	}
	return &business, nil
}

// GetBusinessByOwner получает бизнес по владельцу
func (s *BusinessStorage) GetBusinessByOwner(ctx context.Context, ownerID uint) (*domain.Business, error) {
	var business domain.Business
	result := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&business)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении бизнеса по владельцу: %w", result.Error)
	}
	return &business, nil
}
