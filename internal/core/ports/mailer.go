package ports

import "context"

// VerificationMailer определяет методы для отправки письма верификации аккаунта.
// Ошибки релея не ретраятся и поднимаются вызывающему.
type VerificationMailer interface {
	SendVerification(ctx context.Context, recipient, username, link string) error
}
