package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword возвращает bcrypt-хэш пароля. Соль генерируется на каждый вызов,
// алгоритм и параметры закодированы в самой строке хэша.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("пустой пароль не допускается")
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("ошибка хэширования пароля: %w", err)
	}
	return string(h), nil
}

// CheckPassword проверяет, что пароль соответствует хэшу.
// Для поврежденного хэша возвращает false, никогда не паникует.
// Сравнение внутри bcrypt выполняется за константное время.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
