package usecase

import "github.com/GoArmGo/ShopApp/internal/domain"

// CanModify решает, можно ли актору мутировать товары бизнеса.
// Чистая функция: true только когда актор — владелец бизнеса.
func CanModify(actor *domain.User, business *domain.Business) bool {
	if actor == nil || business == nil {
		return false
	}
	return business.OwnerID == actor.ID
}

// ValidPrice — инвариант цены: строго положительная.
// Применяется одинаково при создании и при каждом обновлении товара.
func ValidPrice(price float64) bool {
	return price > 0
}
