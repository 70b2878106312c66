package impl

import (
	"testing"

	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_AddProduct(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)

	input := &usecase.AddProductInput{Name: "Flat White", Category: "Coffee", Price: 3.80}

	_, err := svc.AddProduct(ctxBg(), input)
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	env.loginAdmin(t)
	product, err := svc.AddProduct(ctxBg(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Len(t, env.st.Products, 6)
}

func TestCatalogService_AddProduct_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)
	env.loginAdmin(t)

	_, err := svc.AddProduct(ctxBg(), &usecase.AddProductInput{Category: "Coffee", Price: 1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = svc.AddProduct(ctxBg(), &usecase.AddProductInput{Name: "Bad", Category: "Coffee", Price: -1})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_DeleteProduct_KeepsOrderSnapshots(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)
	env.loginAdmin(t)

	order := env.addOrder("u1", entity.OrderStatusPending)
	order.Items = []*entity.CartItem{
		{Ref: entity.RegularRef("cappuccino"), Name: "Cappuccino", Quantity: 1, UnitPrice: 3.50},
	}
	order.Total = 3.50

	require.NoError(t, svc.DeleteProduct(ctxBg(), "cappuccino"))
	assert.Nil(t, env.st.ProductByID("cappuccino"))

	// History still carries the snapshot of the deleted product
	assert.Equal(t, "Cappuccino", order.Items[0].Name)
	assert.InDelta(t, 3.50, order.Total, 1e-9)
}

func TestCatalogService_DeleteProduct_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)

	err := svc.DeleteProduct(ctxBg(), "cappuccino")
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
	assert.NotNil(t, env.st.ProductByID("cappuccino"))
}

func TestCatalogService_AddProductReview(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)

	err := svc.AddProductReview(ctxBg(), "cappuccino", 5, "Great!")
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	user := env.loginCustomer(t)
	require.NoError(t, svc.AddProductReview(ctxBg(), "cappuccino", 5, "Great!"))
	require.NoError(t, svc.AddProductReview(ctxBg(), "cappuccino", 4, "Good"))

	product := env.st.ProductByID("cappuccino")
	require.Len(t, product.Reviews, 2)
	assert.Equal(t, user.Name, product.Reviews[0].Author)
	assert.InDelta(t, 4.5, svc.AverageRating("cappuccino"), 1e-9)
	assert.Zero(t, svc.AverageRating("iced-matcha"))
	assert.Zero(t, svc.AverageRating("no-such-product"))
}

func TestCatalogService_AddProductReview_RatingBounds(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)
	env.loginCustomer(t)

	for _, rating := range []int{0, 6, -1} {
		err := svc.AddProductReview(ctxBg(), "cappuccino", rating, "")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
	assert.Empty(t, env.st.ProductByID("cappuccino").Reviews)
}

func TestCatalogService_AddStoreReview(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)
	env.loginCustomer(t)

	require.NoError(t, svc.AddStoreReview(ctxBg(), 4, "Cozy place"))
	require.Len(t, svc.StoreReviews(), 1)
	assert.Equal(t, "Feedback sent!", env.notifier.last())
}

func TestCatalogService_ToggleWishlist(t *testing.T) {
	env := newTestEnv(t)
	svc := NewCatalogService(env.params)

	err := svc.ToggleWishlist(ctxBg(), "cheesecake")
	assert.ErrorIs(t, err, domainerrors.ErrLoginRequired)

	env.loginCustomer(t)
	require.NoError(t, svc.ToggleWishlist(ctxBg(), "cheesecake"))
	assert.True(t, svc.IsInWishlist("cheesecake"))

	require.NoError(t, svc.ToggleWishlist(ctxBg(), "cheesecake"))
	assert.False(t, svc.IsInWishlist("cheesecake"))
	assert.Empty(t, svc.Wishlist())
}
