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

// loyaltyService implements the LoyaltyUsecase interface.
type loyaltyService struct {
	cfg      *config.Config
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	logger   *slog.Logger
}

// NewLoyaltyService is the constructor for loyaltyService.
func NewLoyaltyService(params Params) usecase.LoyaltyUsecase {
	return &loyaltyService{
		cfg:      params.Config,
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// loyaltyBalance derives the display balance from the order book and the
// user's cumulative spend. Orders earn points unless cancelled; the result is
// clamped at zero so refund accounting can never surface a negative balance.
func loyaltyBalance(st *state.State, user *entity.User, pointsPerOrder int) int {
	if user == nil {
		return 0
	}

	earned := 0
	for _, order := range st.Orders {
		if order.UserID == user.ID && order.CountsTowardLoyalty() {
			earned += pointsPerOrder
		}
	}

	balance := earned - user.PointsUsed
	if balance < 0 {
		return 0
	}

	return balance
}

// Balance returns the active customer's balance, zero without a session.
func (srv *loyaltyService) Balance() int {
	return loyaltyBalance(srv.st, srv.st.CurrentUser, srv.cfg.Loyalty.PointsPerOrder)
}

// BalanceFor computes the balance for any directory user.
func (srv *loyaltyService) BalanceFor(user *entity.User) int {
	return loyaltyBalance(srv.st, user, srv.cfg.Loyalty.PointsPerOrder)
}

// RedeemReward spends points on a free reward cart line. The gates run in
// order: session, then balance, then price ceiling; the first failure wins
// and nothing is mutated.
func (srv *loyaltyService) RedeemReward(ctx context.Context, productID string) error {
	user := srv.st.CurrentUser
	if user == nil {
		srv.notifier.Notify(domainerrors.ErrLoginRequired.Message(), domainerrors.ErrLoginRequired.Severity())

		return domainerrors.ErrLoginRequired
	}

	product := srv.st.ProductByID(productID)
	if product == nil {
		return domainerrors.ErrNotFound
	}

	cost := srv.cfg.Loyalty.RewardCost
	if loyaltyBalance(srv.st, user, srv.cfg.Loyalty.PointsPerOrder) < cost {
		srv.notifier.Notify(domainerrors.ErrNotEnoughPoints.Message(), domainerrors.ErrNotEnoughPoints.Severity())

		return domainerrors.ErrNotEnoughPoints
	}

	if product.Price > srv.cfg.Loyalty.RewardPriceCeiling {
		srv.notifier.Notify(domainerrors.ErrRewardPriceTooHigh.Message(), domainerrors.ErrRewardPriceTooHigh.Severity())

		return domainerrors.ErrRewardPriceTooHigh
	}

	user.PointsUsed += cost

	ref := entity.RewardRef(product.ID)
	if line := srv.st.CartItem(ref); line != nil {
		line.Quantity++
	} else {
		srv.st.Cart = append(srv.st.Cart, &entity.CartItem{
			Ref:           ref,
			Name:          product.Name + " (Free Reward)",
			Category:      product.Category,
			Image:         product.Image,
			Quantity:      1,
			UnitPrice:     0,
			OriginalPrice: product.Price,
		})
	}

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("reward redeemed", "userID", user.ID, "productID", product.ID, "cost", cost)
	srv.notifier.Notify(fmt.Sprintf("Redeemed %s for %d points!", product.Name, cost), service.SeveritySuccess)

	return nil
}
