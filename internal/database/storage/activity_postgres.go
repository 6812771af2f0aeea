package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GoArmGo/ShopApp/internal/messaging/payloads"
)

// ActivityStorage реализует интерфейс ports.ActivityStorage поверх sqlx.
// Журнал событий пишет воркер, потребляющий очередь RabbitMQ.
type ActivityStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewActivityStorage создает новый экземпляр ActivityStorage
func NewActivityStorage(db *sqlx.DB, logger *slog.Logger) *ActivityStorage {
	return &ActivityStorage{db: db, logger: logger}
}

// SaveActivity сохраняет событие аутентификации в журнал.
// Повторная доставка того же события — no-op благодаря первичному ключу event_id.
func (s *ActivityStorage) SaveActivity(ctx context.Context, event payloads.ActivityPayload) error {
	start := time.Now()

	var userID interface{}
	if event.UserID != 0 {
		userID = event.UserID
	}

	_, err := s.db.ExecContext(ctx, `
        INSERT INTO activities (event_id, kind, user_id, username, occurred_at, detail)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (event_id) DO NOTHING
    `, event.EventID, event.Kind, userID, event.Username, event.At, event.Detail)
	if err != nil {
		s.logger.Error("failed to insert activity", "event_id", event.EventID, "error", err)
		return fmt.Errorf("insert activity: %w", err)
	}

	s.logger.Info("activity saved",
		"event_id", event.EventID,
		"kind", event.Kind,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}
