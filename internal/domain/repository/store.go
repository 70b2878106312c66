// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has no value in the store. Callers
// treat an absent key the same as an empty collection.
var ErrKeyNotFound = errors.New("key not found")

// Collection keys, one per persisted logical collection.
const (
	KeyUsers        = "users"
	KeyProducts     = "products"
	KeyStoreReviews = "store_reviews"
	KeyOrders       = "orders"
	KeyCart         = "cart"
	KeyWishlist     = "wishlist"
	KeyCurrentUser  = "current_user"
	KeyCurrentAdmin = "current_admin"
)

// CollectionKeys lists every persisted key, in load order.
func CollectionKeys() []string {
	return []string{
		KeyUsers,
		KeyProducts,
		KeyStoreReviews,
		KeyOrders,
		KeyCart,
		KeyWishlist,
		KeyCurrentUser,
		KeyCurrentAdmin,
	}
}

// KeyValueStore is the opaque synchronous persistence boundary: string keys,
// full-value writes, durable on return. There is exactly one writer at a time
// by construction.
type KeyValueStore interface {
	// Get returns the stored value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key entirely; deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Wipe removes every key. Used only by the factory reset.
	Wipe(ctx context.Context) error

	// Close releases the underlying storage handle.
	Close() error
}
