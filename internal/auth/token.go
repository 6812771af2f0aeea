package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// Claims — структура утверждений токена: стандартные утверждения плюс
// идентификатор и имя пользователя. Срок жизни не выставляется:
// тот же формат служит и bearer-токеном, и токеном из письма верификации.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uint   `json:"id"`
	Username string `json:"username"`
}

// GenerateToken подписывает утверждения {id, username} секретом процесса (HS256).
func GenerateToken(userID uint, username string, secretKey []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// ParseToken проверяет подпись и структуру токена и возвращает утверждения.
// Несовпадение подписи, чужой алгоритм и битая структура — всё это
// domain.ErrInvalidToken. Существование пользователя здесь не проверяется.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return secretKey, nil
	})
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	return claims, nil
}
