package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"cafex/internal/domain/entity"
	domainerrors "cafex/internal/domain/errors"
	"cafex/internal/domain/service"
	"cafex/internal/errors"
	"cafex/internal/state"
	"cafex/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	st       *state.State
	repo     state.Repository
	notifier service.Notifier
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params Params) usecase.CatalogUsecase {
	return &catalogService{
		st:       params.State,
		repo:     params.Repo,
		notifier: params.Notifier,
		validate: validator.New(),
		logger:   params.Logger,
	}
}

// Products returns the full catalog.
func (srv *catalogService) Products() []*entity.Product {
	return srv.st.Products
}

// AddProduct creates a catalog entry. Requires an admin session.
func (srv *catalogService) AddProduct(ctx context.Context, input *usecase.AddProductInput) (*entity.Product, error) {
	if srv.st.CurrentAdmin == nil {
		srv.notifier.Notify(domainerrors.ErrAdminRequired.Message(), domainerrors.ErrAdminRequired.Severity())

		return nil, domainerrors.ErrAdminRequired
	}

	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		Image:       input.Image,
		Reviews:     []entity.Review{},
	}
	srv.st.Products = append(srv.st.Products, product)

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return nil, errors.Wrap(err, "failed to save state")
	}

	srv.logger.Info("product added", "productID", product.ID)
	srv.notifier.Notify("Product added!", service.SeveritySuccess)

	return product, nil
}

// DeleteProduct removes a catalog entry. Order snapshots keep their copies of
// the product data, so history is unaffected.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	if srv.st.CurrentAdmin == nil {
		srv.notifier.Notify(domainerrors.ErrAdminRequired.Message(), domainerrors.ErrAdminRequired.Severity())

		return domainerrors.ErrAdminRequired
	}

	if srv.st.ProductByID(productID) == nil {
		return domainerrors.ErrNotFound
	}

	kept := srv.st.Products[:0]
	for _, product := range srv.st.Products {
		if product.ID != productID {
			kept = append(kept, product)
		}
	}
	srv.st.Products = kept

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Product deleted", service.SeverityInfo)

	return nil
}

// AddProductReview appends a review to a product. Requires a customer session.
func (srv *catalogService) AddProductReview(ctx context.Context, productID string, rating int, comment string) error {
	user := srv.st.CurrentUser
	if user == nil {
		srv.notifier.Notify(domainerrors.ErrLoginRequired.Message(), domainerrors.ErrLoginRequired.Severity())

		return domainerrors.ErrLoginRequired
	}

	product := srv.st.ProductByID(productID)
	if product == nil {
		return domainerrors.ErrNotFound
	}

	if rating < 1 || rating > 5 {
		return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	product.Reviews = append(product.Reviews, entity.Review{
		ID:        uuid.NewString(),
		Author:    user.Name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	})

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Review added!", service.SeveritySuccess)

	return nil
}

// AddStoreReview appends a review to the store-level list.
func (srv *catalogService) AddStoreReview(ctx context.Context, rating int, comment string) error {
	user := srv.st.CurrentUser
	if user == nil {
		srv.notifier.Notify(domainerrors.ErrLoginRequired.Message(), domainerrors.ErrLoginRequired.Severity())

		return domainerrors.ErrLoginRequired
	}

	if rating < 1 || rating > 5 {
		return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	srv.st.StoreReviews = append(srv.st.StoreReviews, entity.Review{
		ID:        uuid.NewString(),
		Author:    user.Name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	})

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	srv.notifier.Notify("Feedback sent!", service.SeveritySuccess)

	return nil
}

// StoreReviews returns the store-level review list.
func (srv *catalogService) StoreReviews() []entity.Review {
	return srv.st.StoreReviews
}

// AverageRating aggregates a product's reviews to one decimal place.
func (srv *catalogService) AverageRating(productID string) float64 {
	product := srv.st.ProductByID(productID)
	if product == nil {
		return 0
	}

	return entity.AverageRating(product.Reviews)
}

// ToggleWishlist adds or removes a product from the session wishlist.
func (srv *catalogService) ToggleWishlist(ctx context.Context, productID string) error {
	if srv.st.CurrentUser == nil {
		srv.notifier.Notify(domainerrors.ErrLoginRequired.Message(), domainerrors.ErrLoginRequired.Severity())

		return domainerrors.ErrLoginRequired
	}

	if idx := slices.Index(srv.st.Wishlist, productID); idx >= 0 {
		srv.st.Wishlist = slices.Delete(srv.st.Wishlist, idx, idx+1)
		srv.notifier.Notify("Removed from wishlist", service.SeverityInfo)
	} else {
		srv.st.Wishlist = append(srv.st.Wishlist, productID)
		srv.notifier.Notify("Added to wishlist!", service.SeveritySuccess)
	}

	if err := srv.repo.Save(ctx, srv.st); err != nil {
		return errors.Wrap(err, "failed to save state")
	}

	return nil
}

// IsInWishlist reports whether the product is in the session wishlist.
func (srv *catalogService) IsInWishlist(productID string) bool {
	return slices.Contains(srv.st.Wishlist, productID)
}

// Wishlist returns the session wishlist product IDs.
func (srv *catalogService) Wishlist() []string {
	return srv.st.Wishlist
}
