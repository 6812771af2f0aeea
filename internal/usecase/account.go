package usecase

import (
	"context"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// AccountUseCase определяет интерфейс бизнес-логики аккаунтов:
// регистрация с письмом верификации, выдача bearer-токена по паре
// логин/пароль и разрешение токена в пользователя.
type AccountUseCase interface {
	// Register создает пользователя вместе с его бизнесом (одна транзакция),
	// затем отправляет письмо со ссылкой верификации. Нарушение уникальности
	// username/email — domain.ErrInvalidInput, сбой релея — domain.ErrUpstream.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// IssueToken аутентифицирует пару логин/пароль и возвращает подписанный
	// токен с утверждениями {id, username}. Несуществующий пользователь и
	// неверный пароль неразличимы: оба — domain.ErrInvalidCredentials.
	IssueToken(ctx context.Context, username, password string) (string, error)

	// ResolveToken декодирует токен и находит пользователя по утверждению id.
	// Битая подпись и удаленный пользователь схлопываются в один
	// domain.ErrUnauthenticated. Используется и для bearer-аутентификации,
	// и для ссылок верификации из писем — формат токена общий.
	ResolveToken(ctx context.Context, token string) (*domain.User, error)

	// VerifyEmail разрешает токен из письма и помечает пользователя
	// подтвержденным. Повторный визит по той же ссылке безвреден.
	VerifyEmail(ctx context.Context, token string) (*domain.User, error)
}
