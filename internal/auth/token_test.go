package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

func TestGenerateAndParseToken_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(42, "alice", secret)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(1, "bob", []byte("right-secret"))
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong-secret"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.token", []byte("secret"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))

	_, err = ParseToken("", []byte("secret"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseToken_Tampered(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken(7, "mallory", secret)
	require.NoError(t, err)

	tampered := tok[:len(tok)-2] + "xx"
	_, err = ParseToken(tampered, secret)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestParseToken_NoExpiry(t *testing.T) {
	t.Parallel()

	// срок жизни не выставляется, токен остается валидным
	secret := []byte("secret")
	tok, err := GenerateToken(3, "carol", secret)
	require.NoError(t, err)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}
