package domain

// Product представляет товар бизнеса,
// соответствует таблице products в бд.
// Инвариант: price > 0, проверяется при создании и при каждом обновлении.
type Product struct {
	ID         uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Price      float64   `json:"price" gorm:"type:numeric(10,2);not null"`
	BusinessID uint      `json:"business_id" gorm:"not null;index"`
	Business   *Business `json:"-" gorm:"foreignKey:BusinessID"`
}

func (Product) TableName() string {
	return "products"
}
