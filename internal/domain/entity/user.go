package entity

import "slices"

// User is the core account record owned by the account directory.
// The active session holds a pointer into the directory's slice, so profile
// mutations made through the session are visible to the directory without
// copying.
type User struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Address       string      `json:"address,omitempty"`
	PasswordHash  string      `json:"passwordHash"`
	Role          Role        `json:"role"`
	SavedCart     []*CartItem `json:"savedCart"`
	SavedWishlist []string    `json:"savedWishlist"`
	// PointsUsed is the cumulative loyalty spend. It only grows on reward
	// redemption and shrinks on refund paths, floored at zero.
	PointsUsed int `json:"pointsUsed"`
}

// MatchesIdentifier reports whether the given login identifier refers to this
// user. Email and phone are both accepted, matching the original login form.
func (u *User) MatchesIdentifier(identifier string) bool {
	return identifier != "" && (u.Email == identifier || u.Phone == identifier)
}

// HasWishlisted reports whether the product is in the user's saved wishlist.
func (u *User) HasWishlisted(productID string) bool {
	return slices.Contains(u.SavedWishlist, productID)
}
