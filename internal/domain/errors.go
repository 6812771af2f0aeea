package domain

import "errors"

// Таксономия ошибок ядра. Обработчики HTTP маппят их в статусы через errors.Is,
// остальные слои только оборачивают через fmt.Errorf("...: %w", err).
var (
	// ErrInvalidCredentials — неверная пара логин/пароль.
	// Несуществующий пользователь и неверный пароль неразличимы для вызывающего.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated — отсутствующий, невалидный или неподтверждаемый токен.
	// "Плохая подпись" и "пользователь удален" схлопываются в одну ошибку,
	// чтобы не раскрывать существование аккаунта.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrInvalidToken — подпись не сошлась или структура токена повреждена.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNotFound — запрошенная сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput — некорректные входные данные: неположительная цена,
	// нарушение уникальности username/email/name.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden — аутентифицирован, но не владелец ресурса.
	ErrForbidden = errors.New("forbidden")

	// ErrUpstream — ошибка внешнего коллаборатора (хранилище, почтовый релей).
	ErrUpstream = errors.New("upstream failure")
)
