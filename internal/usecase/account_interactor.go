package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/GoArmGo/ShopApp/internal/auth"
	"github.com/GoArmGo/ShopApp/internal/core/ports"
	"github.com/GoArmGo/ShopApp/internal/domain"
	"github.com/GoArmGo/ShopApp/internal/messaging/payloads"
)

// accountUseCase implements AccountUseCase
type accountUseCase struct {
	userStorage       ports.UserStorage
	mailer            ports.VerificationMailer
	activityPublisher ports.ActivityPublisher
	secretKey         []byte
	baseURL           string
	logger            *slog.Logger
}

// NewAccountUseCase создает новый экземпляр AccountUseCase.
// Секрет подписи и базовый URL передаются при сборке и дальше не меняются.
func NewAccountUseCase(
	userStorage ports.UserStorage,
	mailer ports.VerificationMailer,
	activityPublisher ports.ActivityPublisher,
	secretKey []byte,
	baseURL string,
	logger *slog.Logger,
) AccountUseCase {
	return &accountUseCase{
		userStorage:       userStorage,
		mailer:            mailer,
		activityPublisher: activityPublisher,
		secretKey:         secretKey,
		baseURL:           baseURL,
		logger:            logger,
	}
}

// Register создает пользователя и его бизнес, затем отправляет письмо верификации.
// Порядок фиксированный: транзакция user+business, потом письмо. Сбой письма
// поднимается вызывающему, созданный пользователь при этом остается.
func (uc *accountUseCase) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка хэширования пароля: %w", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsVerified:   false,
	}

	if _, err := uc.userStorage.CreateWithBusiness(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	uc.emitActivity(ctx, payloads.ActivityUserRegistered, user.ID, user.Username, "")

	link, err := uc.verificationLink(user)
	if err != nil {
		return nil, fmt.Errorf("usecase: %w", err)
	}

	if err := uc.mailer.SendVerification(ctx, user.Email, user.Username, link); err != nil {
		uc.logger.Error("verification email dispatch failed", "username", user.Username, "error", err)
		return nil, fmt.Errorf("%w: отправка письма верификации: %w", domain.ErrUpstream, err)
	}

	uc.logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// verificationLink строит ссылку вида <base-url>/verification?token=<token>.
// Токен подписывается тем же кодеком, что и bearer-токены.
func (uc *accountUseCase) verificationLink(user *domain.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Username, uc.secretKey)
	if err != nil {
		return "", fmt.Errorf("ошибка выпуска токена верификации: %w", err)
	}
	return fmt.Sprintf("%s/verification?token=%s", uc.baseURL, url.QueryEscape(token)), nil
}

// authenticate находит пользователя и сверяет пароль с хэшом.
// Отсутствие пользователя и неверный пароль дают один и тот же результат.
func (uc *accountUseCase) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.userStorage.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (uc *accountUseCase) IssueToken(ctx context.Context, username, password string) (string, error) {
	user, err := uc.authenticate(ctx, username, password)
	if err != nil {
		uc.emitActivity(ctx, payloads.ActivityLoginFailure, 0, username, "invalid credentials")
		return "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Username, uc.secretKey)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка выпуска токена: %w", err)
	}

	uc.emitActivity(ctx, payloads.ActivityLoginSuccess, user.ID, user.Username, "")
	return token, nil
}

func (uc *accountUseCase) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	claims, err := auth.ParseToken(token, uc.secretKey)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := uc.userStorage.GetUserByID(ctx, claims.UserID)
	if err != nil {
		// "пользователь удален" и "плохая подпись" наружу неразличимы
		return nil, domain.ErrUnauthenticated
	}

	return user, nil
}

func (uc *accountUseCase) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	user, err := uc.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if !user.IsVerified {
		if err := uc.userStorage.MarkVerified(ctx, user.ID); err != nil {
			return nil, fmt.Errorf("usecase: %w", err)
		}
		user.IsVerified = true
		uc.emitActivity(ctx, payloads.ActivityUserVerified, user.ID, user.Username, "")
		uc.logger.Info("user verified", "user_id", user.ID, "username", user.Username)
	}

	return user, nil
}

// emitActivity публикует событие аутентификации best effort:
// ошибка публикации логируется и не валит запрос.
func (uc *accountUseCase) emitActivity(ctx context.Context, kind string, userID uint, username, detail string) {
	payload := payloads.ActivityPayload{
		EventID:  uuid.New(),
		Kind:     kind,
		UserID:   userID,
		Username: username,
		At:       time.Now().UTC(),
		Detail:   detail,
	}
	if err := uc.activityPublisher.PublishActivity(ctx, payload); err != nil {
		uc.logger.Warn("failed to publish activity event", "kind", kind, "error", err)
	}
}
