package impl

import (
	"testing"

	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Register(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAccountService(env.params)

	user, err := svc.Register(ctxBg(), &usecase.RegisterInput{
		Name:     "Jane Smith",
		Email:    "jane@cafex.com",
		Phone:    "055555555",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Empty(t, user.SavedCart)
	assert.Zero(t, user.PointsUsed)

	// The password is stored hashed, never in plaintext
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.True(t, env.hasher.Check("secret", user.PasswordHash))

	// Registration does not log in
	assert.Nil(t, env.st.CurrentUser)
	require.Len(t, env.st.Users, 3)
}

func TestAccountService_Register_DuplicateRejected(t *testing.T) {
	tests := []struct {
		name  string
		email string
		phone string
	}{
		{name: "duplicate email", email: seedCustomerEmail, phone: "055555555"},
		{name: "duplicate phone", email: "new@cafex.com", phone: "098765432"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			svc := NewAccountService(env.params)

			user, err := svc.Register(ctxBg(), &usecase.RegisterInput{
				Name:     "Jane Smith",
				Email:    tt.email,
				Phone:    tt.phone,
				Password: "secret",
			})
			assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
			assert.Nil(t, user)
			assert.Len(t, env.st.Users, 2)
		})
	}
}

func TestAccountService_Register_ValidationFailures(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.RegisterInput
	}{
		{name: "missing name", input: usecase.RegisterInput{Email: "a@b.com", Phone: "1", Password: "secret"}},
		{name: "bad email", input: usecase.RegisterInput{Name: "A", Email: "not-an-email", Phone: "1", Password: "secret"}},
		{name: "short password", input: usecase.RegisterInput{Name: "A", Email: "a@b.com", Phone: "1", Password: "xx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			svc := NewAccountService(env.params)

			_, err := svc.Register(ctxBg(), &tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Len(t, env.st.Users, 2)
		})
	}
}

func TestAccountService_UpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAccountService(env.params)
	user := env.loginCustomer(t)

	name := "Johnny"
	address := "5 Oak Ave"
	require.NoError(t, svc.UpdateProfile(ctxBg(), &usecase.ProfileUpdate{
		Name:    &name,
		Address: &address,
	}))

	assert.Equal(t, "Johnny", user.Name)
	assert.Equal(t, "5 Oak Ave", user.Address)
	// Untouched fields keep their values
	assert.Equal(t, seedCustomerEmail, user.Email)

	// The session points at the directory record, so the change is visible
	// in both places
	assert.Equal(t, "Johnny", env.st.UserByID(user.ID).Name)
}

func TestAccountService_UpdateProfile_RehashesPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAccountService(env.params)
	user := env.loginCustomer(t)

	password := "newpass"
	require.NoError(t, svc.UpdateProfile(ctxBg(), &usecase.ProfileUpdate{Password: &password}))

	assert.True(t, env.hasher.Check("newpass", user.PasswordHash))
	assert.False(t, env.hasher.Check(seedPassword, user.PasswordHash))
}

func TestAccountService_UpdateProfile_NoSession(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAccountService(env.params)

	name := "Ghost"
	require.NoError(t, svc.UpdateProfile(ctxBg(), &usecase.ProfileUpdate{Name: &name}))
	assert.Empty(t, env.notifier.messages)
}

func TestAccountService_DeleteUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAccountService(env.params)
	admin := env.loginAdmin(t)
	customer := env.st.UserByIdentifier(seedCustomerEmail)

	t.Run("requires admin", func(t *testing.T) {
		env2 := newTestEnv(t)
		svc2 := NewAccountService(env2.params)

		err := svc2.DeleteUser(ctxBg(), "any")
		assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)
	})

	t.Run("self deletion rejected", func(t *testing.T) {
		err := svc.DeleteUser(ctxBg(), admin.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfDeletion)
		assert.Len(t, env.st.Users, 2)
	})

	t.Run("logged-in customer protected", func(t *testing.T) {
		env.st.CurrentUser = customer
		err := svc.DeleteUser(ctxBg(), customer.ID)
		assert.ErrorIs(t, err, domainerrors.ErrSelfDeletion)
		env.st.CurrentUser = nil
	})

	t.Run("deletes", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(ctxBg(), customer.ID))
		assert.Len(t, env.st.Users, 1)
		assert.Nil(t, env.st.UserByID(customer.ID))
	})

	t.Run("unknown user", func(t *testing.T) {
		err := svc.DeleteUser(ctxBg(), "missing")
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
