package payloads

import (
	"time"

	"github.com/google/uuid"
)

// Виды событий аутентификации, публикуемых в очередь.
const (
	ActivityUserRegistered = "user_registered"
	ActivityLoginSuccess   = "login_success"
	ActivityLoginFailure   = "login_failure"
	ActivityUserVerified   = "user_verified"
)

// ActivityPayload представляет событие аутентификации, которое сервер публикует
// в RabbitMQ, а воркер сохраняет в журнал.
type ActivityPayload struct {
	EventID  uuid.UUID `json:"event_id"`
	Kind     string    `json:"kind"`
	UserID   uint      `json:"user_id,omitempty"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
	Detail   string    `json:"detail,omitempty"`
}
