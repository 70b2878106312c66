package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"

	"cafex/config"
	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/domain/service"
	"cafex/internal/errors"
	"cafex/internal/state"
	"cafex/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	cfg      *config.Config
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	qr       service.ReceiptQRService
	logger   *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params Params) usecase.OrderUsecase {
	return &orderService{
		cfg:      params.Config,
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		qr:       params.QR,
		logger:   params.Logger,
	}
}

// PlaceOrder commits the working cart as an immutable order snapshot and
// clears the cart. The loyalty spend is deliberately left untouched: points
// spent on rewards in this cart stay spent.
func (srv *orderService) PlaceOrder(ctx context.Context, input *usecase.PlaceOrderInput) (string, error) {
	if len(srv.st.Cart) == 0 {
		return "", domainerrors.ErrEmptyCart
	}

	user := srv.st.CurrentUser
	userID := entity.GuestUserID
	userName := input.Delivery.Name
	if user != nil {
		userID = user.ID
		userName = user.Name
	}

	total := 0.0
	for _, line := range srv.st.Cart {
		total += line.LineTotal()
	}

	order := &entity.Order{
		ID:            srv.newOrderID(),
		UserID:        userID,
		UserName:      userName,
		Items:         entity.CloneItems(srv.st.Cart),
		Total:         total,
		Status:        entity.OrderStatusPending,
		PaymentMethod: input.PaymentMethod,
		Delivery:      input.Delivery,
		CreatedAt:     time.Now(),
	}
	srv.st.Orders = append(srv.st.Orders, order)

	if input.SaveInfo && user != nil {
		if input.Delivery.Phone != "" {
			user.Phone = input.Delivery.Phone
		}
		if input.Delivery.Address != "" {
			user.Address = input.Delivery.Address
		}
	}

	srv.st.Cart = nil

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return "", errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("order placed", "orderID", order.ID, "userID", userID, "total", total)
	if user != nil {
		balance := loyaltyBalance(srv.st, user, srv.cfg.Loyalty.PointsPerOrder)
		srv.notifier.Notify(fmt.Sprintf("Order placed! You now have %d points.", balance), service.SeveritySuccess)
	} else {
		srv.notifier.Notify("Order placed!", service.SeveritySuccess)
	}

	return order.ID, nil
}

// CancelOrder transitions Pending to Cancelled; anything else is rejected.
func (srv *orderService) CancelOrder(ctx context.Context, orderID string) error {
	order := srv.st.OrderByID(orderID)
	if order == nil || !order.CanCancel() {
		srv.notifier.Notify(domainerrors.ErrCannotCancel.Message(), domainerrors.ErrCannotCancel.Severity())

		return domainerrors.ErrCannotCancel
	}

	order.Status = entity.OrderStatusCancelled

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Order cancelled", service.SeverityInfo)

	return nil
}

// DeleteOrder removes the order from history unconditionally.
func (srv *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	kept := srv.st.Orders[:0]
	for _, order := range srv.st.Orders {
		if order.ID != orderID {
			kept = append(kept, order)
		}
	}
	srv.st.Orders = kept

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Order deleted", service.SeverityInfo)

	return nil
}

// UpdateOrderStatus overwrites the status without transition validation.
// Unknown orders are ignored.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID string, status entity.OrderStatus) error {
	if srv.st.CurrentAdmin == nil {
		srv.notifier.Notify(domainerrors.ErrAdminRequired.Message(), domainerrors.ErrAdminRequired.Severity())

		return domainerrors.ErrAdminRequired
	}

	order := srv.st.OrderByID(orderID)
	if order == nil {
		return nil
	}

	order.Status = status

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	return nil
}

// ListMine returns the user's orders, most recent first.
func (srv *orderService) ListMine(userID string) []*entity.Order {
	var mine []*entity.Order
	for _, order := range srv.st.Orders {
		if order.UserID == userID {
			mine = append(mine, order)
		}
	}

	slices.SortFunc(mine, func(a, b *entity.Order) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(b.ID, a.ID)
	})

	return mine
}

// ReceiptQR renders the order's receipt as a PNG QR code.
func (srv *orderService) ReceiptQR(ctx context.Context, orderID string) ([]byte, error) {
	order := srv.st.OrderByID(orderID)
	if order == nil {
		return nil, domainerrors.ErrNotFound
	}

	png, err := srv.qr.GenerateReceiptQR(order.ID, order.Total)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate receipt QR")
	}

	return png, nil
}

// newOrderID derives a unique ID from the current time in milliseconds,
// bumping past collisions from orders placed within the same tick.
func (srv *orderService) newOrderID() string {
	id := time.Now().UnixMilli()
	for srv.st.OrderByID(strconv.FormatInt(id, 10)) != nil {
		id++
	}

	return strconv.FormatInt(id, 10)
}
