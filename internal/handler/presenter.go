package handler

import (
	"time"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// Явные проекции сущностей в формы ответов. Хэш пароля и флаг верификации
// исключены из всех вариантов; владелец товара отдается без email-а чужим.

// UserResponse — проекция пользователя для ответов API (без хэша пароля
// и без флага верификации).
type UserResponse struct {
	ID       uint      `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	JoinDate time.Time `json:"join_date"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		JoinDate: u.JoinDate,
	}
}

// OwnerResponse — краткая проекция владельца для деталей товара.
type OwnerResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ProductResponse — проекция товара для списков.
type ProductResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	BusinessID uint    `json:"business_id"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		BusinessID: p.BusinessID,
	}
}

// ProductDetailResponse — проекция деталей товара с владельцем.
type ProductDetailResponse struct {
	ProductResponse
	Owner *OwnerResponse `json:"owner,omitempty"`
}

func toProductDetailResponse(p *domain.Product) ProductDetailResponse {
	resp := ProductDetailResponse{ProductResponse: toProductResponse(p)}
	if p.Business != nil && p.Business.Owner != nil {
		resp.Owner = &OwnerResponse{
			ID:       p.Business.Owner.ID,
			Username: p.Business.Owner.Username,
		}
	}
	return resp
}
