package impl

import (
	"context"
	"fmt"
	"log/slog"

	"cafex/config"
	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/domain/service"
	"cafex/internal/errors"
	"cafex/internal/state"
	"cafex/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cfg      *config.Config
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params Params) usecase.CartUsecase {
	return &cartService{
		cfg:      params.Config,
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// AddItem puts one unit of a catalog product into the cart, merging into an
// existing regular line for the same product.
func (srv *cartService) AddItem(ctx context.Context, productID string) error {
	if srv.st.CurrentUser == nil {
		srv.notifier.Notify(domainerrors.ErrLoginRequired.Message(), domainerrors.ErrLoginRequired.Severity())

		return domainerrors.ErrLoginRequired
	}

	product := srv.st.ProductByID(productID)
	if product == nil {
		return domainerrors.ErrNotFound
	}

	ref := entity.RegularRef(product.ID)
	if line := srv.st.CartItem(ref); line != nil {
		line.Quantity++
	} else {
		srv.st.Cart = append(srv.st.Cart, &entity.CartItem{
			Ref:       ref,
			Name:      product.Name,
			Category:  product.Category,
			Image:     product.Image,
			Quantity:  1,
			UnitPrice: product.Price,
		})
	}

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify(fmt.Sprintf("%s added to cart!", product.Name), service.SeveritySuccess)

	return nil
}

// IncrementItem raises a line's quantity by one. Another reward unit costs
// another reward's worth of points and is re-checked against the balance.
func (srv *cartService) IncrementItem(ctx context.Context, ref entity.ItemRef) error {
	line := srv.st.CartItem(ref)
	if line == nil {
		return nil
	}

	if ref.Reward {
		cost := srv.cfg.Loyalty.RewardCost
		if loyaltyBalance(srv.st, srv.st.CurrentUser, srv.cfg.Loyalty.PointsPerOrder) < cost {
			srv.notifier.Notify("Not enough points to add another!", service.SeverityError)

			return domainerrors.ErrNotEnoughPoints
		}
		srv.st.CurrentUser.PointsUsed += cost
	}

	line.Quantity++

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	return nil
}

// DecrementItem lowers a line's quantity by one. A quantity-1 line is removed
// entirely, with the reward refund that removal implies.
func (srv *cartService) DecrementItem(ctx context.Context, ref entity.ItemRef) error {
	line := srv.st.CartItem(ref)
	if line == nil {
		return nil
	}

	if line.Quantity <= 1 {
		return srv.RemoveItem(ctx, ref)
	}

	line.Quantity--
	if ref.Reward && srv.st.CurrentUser != nil {
		refundPoints(srv.st.CurrentUser, srv.cfg.Loyalty.RewardCost)
	}

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	return nil
}

// RemoveItem deletes a line regardless of quantity. Reward lines refund
// quantity times the reward cost.
func (srv *cartService) RemoveItem(ctx context.Context, ref entity.ItemRef) error {
	line := srv.st.CartItem(ref)
	if line == nil {
		return nil
	}

	if ref.Reward && srv.st.CurrentUser != nil {
		refund := line.Quantity * srv.cfg.Loyalty.RewardCost
		refundPoints(srv.st.CurrentUser, refund)
		srv.notifier.Notify(fmt.Sprintf("Refunded %d points", refund), service.SeverityInfo)
	}

	srv.st.RemoveCartItem(ref)

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	return nil
}

// Reorder merges a past order's items back into the cart. Reward lines carry
// over as-is with no balance re-check.
func (srv *cartService) Reorder(ctx context.Context, items []*entity.CartItem) error {
	if srv.st.CurrentUser == nil {
		srv.notifier.Notify("Login required!", service.SeverityError)

		return domainerrors.ErrLoginRequired
	}

	for _, item := range items {
		if line := srv.st.CartItem(item.Ref); line != nil {
			line.Quantity += item.Quantity
		} else {
			srv.st.Cart = append(srv.st.Cart, item.Clone())
		}
	}

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Items added to cart!", service.SeveritySuccess)

	return nil
}

// Items returns the current cart lines.
func (srv *cartService) Items() []*entity.CartItem {
	return srv.st.Cart
}

// TotalQuantity sums the quantities of every line.
func (srv *cartService) TotalQuantity() int {
	return srv.st.CartTotalQuantity()
}

// refundPoints returns points to the user's balance by shrinking the
// cumulative spend, floored at zero.
func refundPoints(user *entity.User, points int) {
	user.PointsUsed -= points
	if user.PointsUsed < 0 {
		user.PointsUsed = 0
	}
}
