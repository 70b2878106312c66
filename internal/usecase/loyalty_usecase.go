package usecase

import (
	"context"

	"cafex/internal/domain/entity"
)

// LoyaltyUsecase derives the points balance and gates reward redemption.
// The balance is never stored: it is recomputed from order history and the
// user's cumulative points spend on every access.
type LoyaltyUsecase interface {
	// Balance returns the active customer's display balance:
	// max(0, pointsPerOrder x nonCancelledOrders - pointsUsed).
	// Zero when no customer session is active.
	Balance() int

	// BalanceFor computes the display balance for any directory user.
	BalanceFor(user *entity.User) int

	// RedeemReward spends points on a zero-price reward cart line for the
	// product. Requires a customer session, a sufficient balance, and a
	// product price within the reward ceiling; fails without mutation
	// otherwise.
	RedeemReward(ctx context.Context, productID string) error
}
