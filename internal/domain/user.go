// internal/domain/user.go
package domain

import (
	"time"
)

// User представляет модель пользователя в системе.
// Соответствует таблице 'users' в базе данных.
// Хэш пароля и флаг верификации никогда не попадают в JSON-ответы.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey;autoIncrement" db:"id"`
	Username     string    `json:"username" gorm:"size:100;not null;uniqueIndex" db:"username"`
	Email        string    `json:"email" gorm:"size:100;not null;uniqueIndex" db:"email"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null" db:"password_hash"`
	IsVerified   bool      `json:"-" gorm:"not null;default:false" db:"is_verified"`
	JoinDate     time.Time `json:"join_date" gorm:"not null;autoCreateTime" db:"join_date"`
}

func (User) TableName() string {
	return "users"
}

// Business представляет бизнес пользователя,
// соответствует таблице businesses в бд.
// Каждый пользователь владеет ровно одним бизнесом: запись создается
// атомарно вместе с пользователем при регистрации, владелец не меняется.
type Business struct {
	ID      uint  `json:"id" gorm:"primaryKey;autoIncrement"`
	OwnerID uint  `json:"owner_id" gorm:"not null;uniqueIndex"`
	Owner   *User `json:"-" gorm:"foreignKey:OwnerID"`
}

func (Business) TableName() string {
	return "businesses"
}
