package usecase

import (
	"context"

	"cafex/internal/domain/entity"
)

// PlaceOrderInput defines the checkout parameters.
type PlaceOrderInput struct {
	PaymentMethod string
	Delivery      entity.DeliveryDetails

	// SaveInfo copies the delivery phone and address into the customer's
	// profile after a successful checkout.
	SaveInfo bool
}

// OrderUsecase manages the order book.
type OrderUsecase interface {
	// PlaceOrder commits the working cart as an immutable order snapshot,
	// clears the cart (the loyalty points spend is deliberately left
	// untouched), and returns the new order's ID. An empty cart is rejected
	// without mutation.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (string, error)

	// CancelOrder transitions Pending to Cancelled; any other status is
	// rejected without mutation.
	CancelOrder(ctx context.Context, orderID string) error

	// DeleteOrder removes the order unconditionally. Hard removal: there is
	// no audit trail.
	DeleteOrder(ctx context.Context, orderID string) error

	// UpdateOrderStatus overwrites an order's status without transition
	// validation. Admin escape hatch; requires an admin session.
	UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error

	// ListMine returns the user's orders, most recent first.
	ListMine(userID string) []*entity.Order

	// ReceiptQR renders the order's receipt as a PNG QR code.
	ReceiptQR(ctx context.Context, orderID string) ([]byte, error)
}
