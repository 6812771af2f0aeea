package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

func TestCanModify(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: 1, Username: "alice"}
	other := &domain.User{ID: 2, Username: "victor"}
	business := &domain.Business{ID: 10, OwnerID: owner.ID}

	assert.True(t, CanModify(owner, business))
	assert.False(t, CanModify(other, business))
	assert.False(t, CanModify(nil, business))
	assert.False(t, CanModify(owner, nil))
}

func TestValidPrice(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidPrice(0.01))
	assert.True(t, ValidPrice(199.99))
	assert.False(t, ValidPrice(0))
	assert.False(t, ValidPrice(-5))
}
