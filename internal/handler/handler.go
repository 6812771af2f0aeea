package handler

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/GoArmGo/ShopApp/internal/domain"
	"github.com/GoArmGo/ShopApp/internal/usecase"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// statusFromError маппит таксономию ошибок ядра в HTTP-статусы.
// Нарушение владения отдается как 401 — поведение референса.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// страница подтверждения, которую видит пользователь по ссылке из письма
var verificationPage = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<head><title>Подтверждение аккаунта</title></head>
<body>
    <h2>Аккаунт подтвержден</h2>
    <p>Спасибо, {{.Username}}! Ваш аккаунт успешно подтвержден.</p>
</body>
</html>
`))

// AccountHandler — обработчик HTTP-запросов регистрации и аутентификации.
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         *slog.Logger
}

// NewAccountHandler создаёт новый экземпляр AccountHandler.
func NewAccountHandler(uc usecase.AccountUseCase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: uc,
		logger:         logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register — регистрирует пользователя и запускает отправку письма верификации.
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("malformed register request body", "error", err)
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Укажите username, email и password", h.logger)
		return
	}

	user, err := h.accountUseCase.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("registration failed", "username", req.Username, "error", err)
		respondWithError(w, statusFromError(err), "Не удалось зарегистрировать пользователя", h.logger)
		return
	}

	h.logger.Info("user registered", "username", user.Username)
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Здравствуйте, " + user.Username + "! Подтвердите аккаунт по ссылке из письма.",
	}, h.logger)
}

// Token — выдает bearer-токен по form-encoded паре username/password.
func (h *AccountHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректная форма запроса", h.logger)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.accountUseCase.IssueToken(r.Context(), username, password)
	if err != nil {
		h.logger.Warn("token issuance failed", "username", username)
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondWithError(w, statusFromError(err), "Неверное имя пользователя или пароль", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	}, h.logger)
}

// Me — возвращает проекцию аутентифицированного пользователя.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, toUserResponse(user), h.logger)
}

// Verification — помечает пользователя подтвержденным по токену из письма
// и рендерит HTML-страницу подтверждения. Повторный визит безвреден.
func (h *AccountHandler) Verification(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	user, err := h.accountUseCase.VerifyEmail(r.Context(), token)
	if err != nil {
		h.logger.Warn("email verification failed", "error", err)
		w.Header().Set("WWW-Authenticate", "Bearer")
		respondWithError(w, statusFromError(err), "Невалидный токен", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := verificationPage.Execute(w, struct{ Username string }{Username: user.Username}); err != nil {
		h.logger.Error("failed to render verification page", "error", err)
	}
}
