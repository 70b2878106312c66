// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cafex/internal/domain/entity"
)

// RegisterInput defines the data required to register a new customer account.
// Every field is required; registration is rejected otherwise.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	Password string `validate:"required,min=3"`
}

// ProfileUpdate is a shallow merge onto the session user's record: only
// non-nil fields are applied.
type ProfileUpdate struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	Password *string
}

// AccountUsecase defines the account directory operations.
type AccountUsecase interface {
	// Register creates a new customer account with a fresh ID, empty saved
	// cart/wishlist, and zero points used. Duplicate email or phone is
	// rejected.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// UpdateProfile merges the update into the active customer session's
	// record. No-op when no customer session is active.
	UpdateProfile(ctx context.Context, update *ProfileUpdate) error

	// DeleteUser removes an account. Requires an admin session and rejects
	// deletion of any currently authenticated session's own account.
	DeleteUser(ctx context.Context, userID string) error

	// ListUsers returns every account in the directory.
	ListUsers() []*entity.User
}
