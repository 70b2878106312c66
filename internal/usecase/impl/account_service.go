package impl

import (
	"context"
	"log/slog"

	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/domain/service"
	"cafex/internal/errors"
	"cafex/internal/state"
	"cafex/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	hasher   service.PasswordHasher
	validate *validator.Validate
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params Params) usecase.AccountUsecase {
	return &accountService{
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		hasher:   params.Hasher,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// Register creates a new customer account. Email and phone must be unique
// across the directory.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	for _, existing := range srv.st.Users {
		if existing.Email == input.Email || existing.Phone == input.Phone {
			srv.notifier.Notify(domainerrors.ErrUserAlreadyExists.Message(), domainerrors.ErrUserAlreadyExists.Severity())

			return nil, domainerrors.ErrUserAlreadyExists
		}
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		PasswordHash:  passwordHash,
		Role:          entity.RoleCustomer,
		SavedCart:     []*entity.CartItem{},
		SavedWishlist: []string{},
	}
	srv.st.Users = append(srv.st.Users, user)

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return nil, errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("account registered", "userID", user.ID)
	srv.notifier.Notify("Account created! Please log in.", service.SeveritySuccess)

	return user, nil
}

// UpdateProfile merges non-nil fields into the session user's record. A new
// password is rehashed before storage.
func (srv *accountService) UpdateProfile(ctx context.Context, update *usecase.ProfileUpdate) error {
	user := srv.st.CurrentUser
	if user == nil {
		return nil
	}

	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	if update.Password != nil {
		passwordHash, err := srv.hasher.Hash(*update.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = passwordHash
	}

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Profile updated!", service.SeveritySuccess)

	return nil
}

// DeleteUser removes an account from the directory. Requires an admin session
// and refuses to delete any currently authenticated account.
func (srv *accountService) DeleteUser(ctx context.Context, userID string) error {
	if srv.st.CurrentAdmin == nil {
		srv.notifier.Notify(domainerrors.ErrAdminRequired.Message(), domainerrors.ErrAdminRequired.Severity())

		return domainerrors.ErrAdminRequired
	}

	if srv.st.CurrentAdmin.ID == userID || (srv.st.CurrentUser != nil && srv.st.CurrentUser.ID == userID) {
		srv.notifier.Notify(domainerrors.ErrSelfDeletion.Message(), domainerrors.ErrSelfDeletion.Severity())

		return domainerrors.ErrSelfDeletion
	}

	if srv.st.UserByID(userID) == nil {
		return domainerrors.ErrNotFound
	}

	kept := srv.st.Users[:0]
	for _, user := range srv.st.Users {
		if user.ID != userID {
			kept = append(kept, user)
		}
	}
	srv.st.Users = kept

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("account deleted", "userID", userID)
	srv.notifier.Notify("User deleted", service.SeverityInfo)

	return nil
}

// ListUsers returns every account in the directory.
func (srv *accountService) ListUsers() []*entity.User {
	return srv.st.Users
}
