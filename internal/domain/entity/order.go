package entity

import "time"

// OrderStatus is the mutable part of an otherwise immutable order snapshot.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of every placed order.
	OrderStatusPending OrderStatus = "Pending"
	// OrderStatusCancelled is terminal; cancelled orders earn no points.
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// GuestUserID is the sentinel owner for orders placed without a session.
const GuestUserID = "guest"

// DeliveryDetails captures the drop-off information given at checkout.
type DeliveryDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

// Order is an immutable snapshot of the cart at commit time plus a mutable
// status. Items and Total are fixed when the order is placed.
type Order struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	UserName      string          `json:"userName"`
	Items         []*CartItem     `json:"items"`
	Total         float64         `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"paymentMethod"`
	Delivery      DeliveryDetails `json:"delivery"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CountsTowardLoyalty reports whether the order contributes earned points.
func (o *Order) CountsTowardLoyalty() bool {
	return o.Status != OrderStatusCancelled
}

// CanCancel reports whether the order is still in a cancellable state.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending
}
