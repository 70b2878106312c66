package usecase

import (
	"context"

	"cafex/internal/domain/entity"
)

// SessionUsecase manages the authenticated customer and admin sessions.
// The two are independent and may be active simultaneously.
type SessionUsecase interface {
	// LoginCustomer authenticates by email or phone plus password against
	// customer accounts and loads the account's saved cart and wishlist into
	// the working session. No state changes on failure.
	LoginCustomer(ctx context.Context, identifier, password string) (*entity.User, error)

	// LoginAdmin authenticates against admin accounts. Does not touch the
	// working cart or wishlist.
	LoginAdmin(ctx context.Context, identifier, password string) (*entity.User, error)

	// LogoutCustomer persists the working cart/wishlist/points into the
	// account record, then clears the session and removes the session keys
	// from the store entirely.
	LogoutCustomer(ctx context.Context) error

	// LogoutAdmin clears the admin session and persists.
	LogoutAdmin(ctx context.Context) error

	// Logout logs out whichever sessions are active (both, if both are).
	Logout(ctx context.Context) error

	// CurrentUser returns the active customer, or nil.
	CurrentUser() *entity.User

	// CurrentAdmin returns the active admin, or nil.
	CurrentAdmin() *entity.User
}
