package usecase

import (
	"context"

	"cafex/internal/domain/entity"
)

// AddProductInput defines the data required to create a catalog product.
type AddProductInput struct {
	Name        string  `validate:"required"`
	Category    string  `validate:"required"`
	Price       float64 `validate:"gte=0"`
	Description string
	Image       string
}

// CatalogUsecase manages the product catalog, reviews, and the session
// wishlist.
type CatalogUsecase interface {
	// Products returns the full catalog.
	Products() []*entity.Product

	// AddProduct creates a catalog entry. Requires an admin session.
	AddProduct(ctx context.Context, input *AddProductInput) (*entity.Product, error)

	// DeleteProduct removes a catalog entry. Requires an admin session.
	// Existing orders keep their price snapshots.
	DeleteProduct(ctx context.Context, productID string) error

	// AddProductReview appends a review (rating 1-5) to a product. Requires
	// a customer session.
	AddProductReview(ctx context.Context, productID string, rating int, comment string) error

	// AddStoreReview appends a review to the store-level list.
	AddStoreReview(ctx context.Context, rating int, comment string) error

	// StoreReviews returns the store-level review list.
	StoreReviews() []entity.Review

	// AverageRating aggregates a product's reviews to one decimal place.
	// Unknown products and unreviewed products both rate 0.
	AverageRating(productID string) float64

	// ToggleWishlist adds or removes a product from the session wishlist.
	ToggleWishlist(ctx context.Context, productID string) error

	// IsInWishlist reports whether the product is in the session wishlist.
	IsInWishlist(productID string) bool

	// Wishlist returns the session wishlist product IDs.
	Wishlist() []string
}
