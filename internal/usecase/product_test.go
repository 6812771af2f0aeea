package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoArmGo/ShopApp/internal/domain"
)

// --- фейки портов ---

type fakeProductStorage struct {
	nextID   uint
	products map[uint]*domain.Product

	updates int
	deletes int
}

func newFakeProductStorage() *fakeProductStorage {
	return &fakeProductStorage{nextID: 1, products: map[uint]*domain.Product{}}
}

func (f *fakeProductStorage) SaveProduct(ctx context.Context, product *domain.Product) error {
	product.ID = f.nextID
	f.nextID++
	copied := *product
	f.products[product.ID] = &copied
	return nil
}

func (f *fakeProductStorage) GetProductByID(ctx context.Context, id uint) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductStorage) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductStorage) UpdateProduct(ctx context.Context, product *domain.Product) error {
	stored, ok := f.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = product.Name
	stored.Price = product.Price
	f.updates++
	return nil
}

func (f *fakeProductStorage) DeleteProduct(ctx context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.products, id)
	f.deletes++
	return nil
}

type fakeBusinessStorage struct {
	byOwner map[uint]*domain.Business
}

func (f *fakeBusinessStorage) GetBusinessByID(ctx context.Context, id uint) (*domain.Business, error) {
	for _, b := range f.byOwner {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBusinessStorage) GetBusinessByOwner(ctx context.Context, ownerID uint) (*domain.Business, error) {
	business, ok := f.byOwner[ownerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return business, nil
}

// готовый мир: alice владеет бизнесом 10 и товаром 1, у victor бизнес 20
func productWorld(t *testing.T) (*fakeProductStorage, *fakeBusinessStorage, *domain.User, *domain.User) {
	t.Helper()

	alice := &domain.User{ID: 1, Username: "alice"}
	victor := &domain.User{ID: 2, Username: "victor"}

	aliceBusiness := &domain.Business{ID: 10, OwnerID: alice.ID, Owner: alice}
	victorBusiness := &domain.Business{ID: 20, OwnerID: victor.ID, Owner: victor}

	businesses := &fakeBusinessStorage{byOwner: map[uint]*domain.Business{
		alice.ID:  aliceBusiness,
		victor.ID: victorBusiness,
	}}

	products := newFakeProductStorage()
	products.products[1] = &domain.Product{
		ID: 1, Name: "чайник", Price: 19.99,
		BusinessID: aliceBusiness.ID, Business: aliceBusiness,
	}
	products.nextID = 2

	return products, businesses, alice, victor
}

// --- тесты ---

func TestCreateProduct_RejectsNonPositivePrice(t *testing.T) {
	t.Parallel()

	products, businesses, alice, _ := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	for _, price := range []float64{0, -5} {
		_, err := uc.CreateProduct(context.Background(), alice, "lamp", price)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	// хранилище не тронуто
	assert.Len(t, products.products, 1)
}

func TestCreateProduct_SavedUnderActorBusiness(t *testing.T) {
	t.Parallel()

	products, businesses, alice, _ := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	product, err := uc.CreateProduct(context.Background(), alice, "lamp", 9.50)
	require.NoError(t, err)
	assert.Equal(t, uint(10), product.BusinessID)
	assert.Equal(t, 9.50, product.Price)
}

func TestUpdateProduct_OwnerOnly(t *testing.T) {
	t.Parallel()

	products, businesses, alice, victor := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	// не владелец — отказ без мутации
	_, err := uc.UpdateProduct(context.Background(), victor, 1, "чайник", 25)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Zero(t, products.updates)

	// владелец — обновление проходит
	updated, err := uc.UpdateProduct(context.Background(), alice, 1, "самовар", 25)
	require.NoError(t, err)
	assert.Equal(t, "самовар", updated.Name)
	assert.Equal(t, float64(25), updated.Price)
	assert.Equal(t, 1, products.updates)
}

func TestUpdateProduct_CheckOrderOwnershipBeforePrice(t *testing.T) {
	t.Parallel()

	products, businesses, _, victor := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	// невладелец с невалидной ценой: сначала владение, потом цена
	_, err := uc.UpdateProduct(context.Background(), victor, 1, "чайник", -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateProduct_OwnerInvalidPrice(t *testing.T) {
	t.Parallel()

	products, businesses, alice, _ := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	_, err := uc.UpdateProduct(context.Background(), alice, 1, "чайник", -5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, products.updates)
}

func TestUpdateProduct_Missing(t *testing.T) {
	t.Parallel()

	products, businesses, alice, _ := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	_, err := uc.UpdateProduct(context.Background(), alice, 42, "призрак", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct_OwnerOnly(t *testing.T) {
	t.Parallel()

	products, businesses, alice, victor := productWorld(t)
	uc := NewProductUseCase(products, businesses, discardLogger())

	err := uc.DeleteProduct(context.Background(), victor, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, products.products, 1)

	err = uc.DeleteProduct(context.Background(), alice, 1)
	require.NoError(t, err)
	assert.Empty(t, products.products)
}
