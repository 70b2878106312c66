package impl

import (
	"context"
	"fmt"
	"log/slog"

	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/domain/service"
	"cafex/internal/errors"
	"cafex/internal/state"
	"cafex/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params Params) usecase.SessionUsecase {
	return &sessionService{
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// LoginCustomer authenticates a customer account and restores its saved cart
// and wishlist into the working session. Nothing changes on failure.
func (srv *sessionService) LoginCustomer(ctx context.Context, identifier, password string) (*entity.User, error) {
	user, err := srv.authenticate(identifier, password, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}

	srv.st.CurrentUser = user
	srv.st.Cart = entity.CloneItems(user.SavedCart)
	srv.st.Wishlist = append([]string(nil), user.SavedWishlist...)

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return nil, errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("customer logged in", "userID", user.ID)
	srv.notifier.Notify(fmt.Sprintf("Welcome back, %s!", user.Name), service.SeveritySuccess)

	return user, nil
}

// LoginAdmin authenticates an admin account. The working cart and wishlist
// are left untouched.
func (srv *sessionService) LoginAdmin(ctx context.Context, identifier, password string) (*entity.User, error) {
	user, err := srv.authenticate(identifier, password, entity.RoleAdmin)
	if err != nil {
		return nil, err
	}

	srv.st.CurrentAdmin = user

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return nil, errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("admin logged in", "userID", user.ID)
	srv.notifier.Notify(fmt.Sprintf("Welcome, %s!", user.Name), service.SeveritySuccess)

	return user, nil
}

// LogoutCustomer persists the working cart and wishlist into the account
// record, then clears the session so the session keys drop out of the store.
func (srv *sessionService) LogoutCustomer(ctx context.Context) error {
	if srv.st.CurrentUser == nil {
		return nil
	}

	// First save runs session-sync while the session is still attached, so
	// the working cart and wishlist land on the account record.
	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state before logout")
	}

	srv.st.CurrentUser = nil
	srv.st.Cart = nil
	srv.st.Wishlist = nil

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Logged out", service.SeverityInfo)

	return nil
}

// LogoutAdmin clears the admin session.
func (srv *sessionService) LogoutAdmin(ctx context.Context) error {
	if srv.st.CurrentAdmin == nil {
		return nil
	}

	srv.st.CurrentAdmin = nil

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Logged out", service.SeverityInfo)

	return nil
}

// Logout ends whichever sessions are active.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.LogoutCustomer(ctx); err != nil {
		return err
	}

	return srv.LogoutAdmin(ctx)
}

// CurrentUser returns the active customer session, or nil.
func (srv *sessionService) CurrentUser() *entity.User {
	return srv.st.CurrentUser
}

// CurrentAdmin returns the active admin session, or nil.
func (srv *sessionService) CurrentAdmin() *entity.User {
	return srv.st.CurrentAdmin
}

func (srv *sessionService) authenticate(identifier, password string, role entity.Role) (*entity.User, error) {
	user := srv.st.UserByIdentifier(identifier)
	if user == nil || !srv.hasher.Check(password, user.PasswordHash) || user.Role != role {
		srv.notifier.Notify(domainerrors.ErrInvalidCredentials.Message(), domainerrors.ErrInvalidCredentials.Severity())

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
