package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GoArmGo/ShopApp/internal/usecase"
)

// ProductHandler — обработчик HTTP-запросов для работы с товарами.
// Все маршруты защищены bearer-аутентификацией (см. BearerAuth).
type ProductHandler struct {
	productUseCase usecase.ProductUseCase
	logger         *slog.Logger
}

// NewProductHandler создаёт новый экземпляр ProductHandler.
func NewProductHandler(uc usecase.ProductUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		productUseCase: uc,
		logger:         logger,
	}
}

type productRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func productIDFromRequest(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// CreateProduct — создает товар под бизнесом аутентифицированного пользователя.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	product, err := h.productUseCase.CreateProduct(r.Context(), actor, req.Name, req.Price)
	if err != nil {
		h.logger.Warn("product creation failed", "actor_id", actor.ID, "error", err)
		respondWithError(w, statusFromError(err), "Не удалось создать товар", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, toProductResponse(product), h.logger)
}

// ListProducts — получает все товары.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productUseCase.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("failed to list products", "error", err)
		respondWithError(w, statusFromError(err), "Ошибка получения списка товаров", h.logger)
		return
	}

	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, toProductResponse(&products[i]))
	}
	respondWithJSON(w, http.StatusOK, resp, h.logger)
}

// GetProduct — получает детали товара вместе с владельцем.
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromRequest(r)
	if !ok {
		respondWithError(w, http.StatusBadRequest, "Некорректный id товара", h.logger)
		return
	}

	product, err := h.productUseCase.GetProduct(r.Context(), id)
	if err != nil {
		respondWithError(w, statusFromError(err), "Товар не найден", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, toProductDetailResponse(product), h.logger)
}

// UpdateProduct — обновляет имя и цену товара после проверок политики доступа.
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	id, okID := productIDFromRequest(r)
	if !okID {
		respondWithError(w, http.StatusBadRequest, "Некорректный id товара", h.logger)
		return
	}

	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Некорректное тело запроса", h.logger)
		return
	}

	product, err := h.productUseCase.UpdateProduct(r.Context(), actor, id, req.Name, req.Price)
	if err != nil {
		h.logger.Warn("product update failed", "product_id", id, "actor_id", actor.ID, "error", err)
		respondWithError(w, statusFromError(err), "Не удалось обновить товар", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, toProductResponse(product), h.logger)
}

// DeleteProduct — удаляет товар после проверки владения.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := UserFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Невалидный токен", h.logger)
		return
	}

	id, okID := productIDFromRequest(r)
	if !okID {
		respondWithError(w, http.StatusBadRequest, "Некорректный id товара", h.logger)
		return
	}

	if err := h.productUseCase.DeleteProduct(r.Context(), actor, id); err != nil {
		h.logger.Warn("product deletion failed", "product_id", id, "actor_id", actor.ID, "error", err)
		respondWithError(w, statusFromError(err), "Не удалось удалить товар", h.logger)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Товар удален"}, h.logger)
}
