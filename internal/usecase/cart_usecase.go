package usecase

import (
	"context"

	"cafex/internal/domain/entity"
)

// CartUsecase manages the working cart of the active customer session.
// Every mutation ends with a full session-sync persist.
type CartUsecase interface {
	// AddItem puts one unit of a catalog product into the cart, merging into
	// an existing regular line for the same product. Requires a customer
	// session.
	AddItem(ctx context.Context, productID string) error

	// IncrementItem raises a line's quantity by one. Incrementing a reward
	// line re-checks the points threshold and spends another reward's worth
	// of points. Unknown lines are ignored.
	IncrementItem(ctx context.Context, ref entity.ItemRef) error

	// DecrementItem lowers a line's quantity by one; a quantity-1 line is
	// removed entirely instead (with the reward refund that removal implies).
	DecrementItem(ctx context.Context, ref entity.ItemRef) error

	// RemoveItem deletes a line regardless of quantity, refunding
	// quantity x reward cost for reward lines.
	RemoveItem(ctx context.Context, ref entity.ItemRef) error

	// Reorder merges a past order's items back into the cart. Carried-over
	// reward lines are not re-validated against the points balance.
	Reorder(ctx context.Context, items []*entity.CartItem) error

	// Items returns the current cart lines.
	Items() []*entity.CartItem

	// TotalQuantity sums the quantities of every line.
	TotalQuantity() int
}
