package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// CreateWithBusiness создает пользователя и его бизнес в одной транзакции.
// При нарушении уникальности username/email откатывает всё и возвращает
// domain.ErrInvalidInput: частичной пары User/Business в бд не остается.
func (s *UserStorage) CreateWithBusiness(ctx context.Context, user *domain.User) (*domain.Business, error) {
	start := time.Now()

	business := &domain.Business{}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		business.OwnerID = user.ID
		return tx.Create(business).Error
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Warn("user creation rejected, duplicate username or email", "username", user.Username)
			return nil, fmt.Errorf("%w: имя пользователя или email уже заняты", domain.ErrInvalidInput)
		}
		s.logger.Error("failed to create user with business", "username", user.Username, "error", err)
		return nil, fmt.Errorf("ошибка при создании пользователя и бизнеса: %w", err)
	}

	s.logger.Info("user and business created",
		"user_id", user.ID,
		"business_id", business.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return business, nil
}

// GetUserByID получает пользователя по внутреннему ID
func (s *UserStorage) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по ID: %w", result.Error)
	}
	return &user, nil
}

// GetUserByUsername получает пользователя по имени
func (s *UserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("username = ?", username).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по имени: %w", result.Error)
	}
	return &user, nil
}

// MarkVerified выставляет is_verified = true. Повторный вызов — no-op.
func (s *UserStorage) MarkVerified(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Update("is_verified", true)
	if result.Error != nil {
		s.logger.Error("failed to mark user verified", "user_id", id, "error", result.Error)
		return fmt.Errorf("ошибка при подтверждении пользователя: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
