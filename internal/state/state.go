// Package state holds the explicit application state for one running
// instance. There are no ambient singletons: the single State value is
// constructed at startup and handed to each service.
//
// All access is single-writer by construction (one logical actor per device
// instance), so the struct carries no locking.
package state

import (
	"cafex/internal/domain/entity"
)

// State is the full in-memory working set: directory collections, the order
// book, and the active session with its cart and wishlist.
type State struct {
	Users        []*entity.User
	Products     []*entity.Product
	StoreReviews []entity.Review
	Orders       []*entity.Order

	// Cart and Wishlist belong to the customer session while one is active
	// and are mirrored into CurrentUser on every persist (session-sync).
	Cart     []*entity.CartItem
	Wishlist []string

	// CurrentUser and CurrentAdmin are independent sessions and may both be
	// active at once. When set they point into Users.
	CurrentUser  *entity.User
	CurrentAdmin *entity.User
}

// New returns an empty state.
func New() *State {
	return &State{}
}

// UserByID returns the directory record with the given ID, or nil.
func (s *State) UserByID(id string) *entity.User {
	for _, u := range s.Users {
		if u.ID == id {
			return u
		}
	}

	return nil
}

// UserByIdentifier returns the directory record matching a login identifier
// (email or phone), or nil.
func (s *State) UserByIdentifier(identifier string) *entity.User {
	for _, u := range s.Users {
		if u.MatchesIdentifier(identifier) {
			return u
		}
	}

	return nil
}

// ProductByID returns the catalog entry with the given ID, or nil.
func (s *State) ProductByID(id string) *entity.Product {
	for _, p := range s.Products {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// OrderByID returns the order with the given ID, or nil.
func (s *State) OrderByID(id string) *entity.Order {
	for _, o := range s.Orders {
		if o.ID == id {
			return o
		}
	}

	return nil
}

// CartItem returns the cart line with the given key, or nil.
func (s *State) CartItem(ref entity.ItemRef) *entity.CartItem {
	for _, item := range s.Cart {
		if item.Ref == ref {
			return item
		}
	}

	return nil
}

// RemoveCartItem deletes the cart line with the given key, if present.
func (s *State) RemoveCartItem(ref entity.ItemRef) {
	kept := s.Cart[:0]
	for _, item := range s.Cart {
		if item.Ref != ref {
			kept = append(kept, item)
		}
	}
	s.Cart = kept
}

// CartTotalQuantity sums the quantities of every cart line.
func (s *State) CartTotalQuantity() int {
	total := 0
	for _, item := range s.Cart {
		total += item.Quantity
	}

	return total
}

// SyncSession mirrors the active cart and wishlist back into the session
// user's directory record. PointsUsed needs no copy because CurrentUser is
// the directory record itself.
func (s *State) SyncSession() {
	if s.CurrentUser == nil {
		return
	}

	s.CurrentUser.SavedCart = entity.CloneItems(s.Cart)
	s.CurrentUser.SavedWishlist = append([]string(nil), s.Wishlist...)
}

// AttachSession re-links the persisted session references to the directory
// records loaded alongside them, so session mutations propagate into the
// directory. A session whose user no longer exists is dropped.
func (s *State) AttachSession() {
	if s.CurrentUser != nil {
		s.CurrentUser = s.UserByID(s.CurrentUser.ID)
	}
	if s.CurrentAdmin != nil {
		s.CurrentAdmin = s.UserByID(s.CurrentAdmin.ID)
	}
}
