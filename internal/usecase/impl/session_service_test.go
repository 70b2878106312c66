package impl

import (
	"testing"

	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_LoginCustomer(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSessionService(env.params)

	saved := env.st.UserByIdentifier(seedCustomerEmail)
	saved.SavedCart = []*entity.CartItem{
		{Ref: entity.RegularRef("cappuccino"), Name: "Cappuccino", Quantity: 2, UnitPrice: 3.50},
	}
	saved.SavedWishlist = []string{"cheesecake"}

	user, err := svc.LoginCustomer(ctxBg(), seedCustomerEmail, seedPassword)
	require.NoError(t, err)
	assert.Same(t, saved, user)
	assert.Same(t, saved, env.st.CurrentUser)

	// The saved cart is restored as an independent copy
	require.Len(t, env.st.Cart, 1)
	assert.NotSame(t, saved.SavedCart[0], env.st.Cart[0])
	assert.Equal(t, 2, env.st.Cart[0].Quantity)
	assert.Equal(t, []string{"cheesecake"}, env.st.Wishlist)
}

func TestSessionService_LoginCustomer_ByPhone(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSessionService(env.params)

	user, err := svc.LoginCustomer(ctxBg(), "098765432", seedPassword)
	require.NoError(t, err)
	assert.Equal(t, seedCustomerEmail, user.Email)
}

func TestSessionService_LoginCustomer_Failures(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
	}{
		{name: "unknown identifier", identifier: "nobody@cafex.com", password: seedPassword},
		{name: "wrong password", identifier: seedCustomerEmail, password: "wrong"},
		{name: "admin account on customer login", identifier: seedAdminEmail, password: seedPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			svc := NewSessionService(env.params)

			user, err := svc.LoginCustomer(ctxBg(), tt.identifier, tt.password)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
			assert.Nil(t, user)
			assert.Nil(t, env.st.CurrentUser)
			assert.Empty(t, env.st.Cart)
		})
	}
}

func TestSessionService_LoginAdmin_KeepsWorkingCart(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSessionService(env.params)

	env.loginCustomer(t)
	env.st.Cart = []*entity.CartItem{
		{Ref: entity.RegularRef("cheesecake"), Name: "Cheesecake", Quantity: 1, UnitPrice: 4.50},
	}

	admin, err := svc.LoginAdmin(ctxBg(), seedAdminEmail, seedPassword)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Same(t, admin, env.st.CurrentAdmin)

	// Both sessions coexist; the customer's cart is untouched
	assert.NotNil(t, env.st.CurrentUser)
	require.Len(t, env.st.Cart, 1)
}

func TestSessionService_LogoutCustomer(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSessionService(env.params)

	user := env.loginCustomer(t)
	env.st.Cart = []*entity.CartItem{
		{Ref: entity.RegularRef("cappuccino"), Name: "Cappuccino", Quantity: 3, UnitPrice: 3.50},
	}
	env.st.Wishlist = []string{"iced-matcha"}
	require.NoError(t, env.repo.Save(ctxBg(), env.st))

	require.NoError(t, svc.LogoutCustomer(ctxBg()))

	// Working state was captured on the record before the session ended
	require.Len(t, user.SavedCart, 1)
	assert.Equal(t, 3, user.SavedCart[0].Quantity)
	assert.Equal(t, []string{"iced-matcha"}, user.SavedWishlist)

	assert.Nil(t, env.st.CurrentUser)
	assert.Empty(t, env.st.Cart)

	// Session keys are removed from the store, not written empty
	assert.False(t, env.store.Has("current_user"))
	assert.False(t, env.store.Has("cart"))
	assert.False(t, env.store.Has("wishlist"))
	assert.True(t, env.store.Has("users"))
}

func TestSessionService_LogoutCustomer_NoSession(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSessionService(env.params)

	require.NoError(t, svc.LogoutCustomer(ctxBg()))
	assert.Empty(t, env.notifier.messages)
}

func TestSessionService_Logout_Both(t *testing.T) {
	env := newTestEnv(t)
	svc := NewSessionService(env.params)

	env.loginCustomer(t)
	env.loginAdmin(t)

	require.NoError(t, svc.Logout(ctxBg()))
	assert.Nil(t, env.st.CurrentUser)
	assert.Nil(t, env.st.CurrentAdmin)
	assert.False(t, env.store.Has("current_admin"))
}
