package state

import (
	"cafex/internal/domain/entity"
	"cafex/internal/errors"

	"github.com/google/uuid"
)

// seedAccount describes a first-run demo account before its password is hashed.
type seedAccount struct {
	name     string
	email    string
	phone    string
	password string
	role     entity.Role
}

var seedAccounts = []seedAccount{
	{name: "Admin User", email: "admin@cafex.com", phone: "012345678", password: "123", role: entity.RoleAdmin},
	{name: "John Doe", email: "user@cafex.com", phone: "098765432", password: "123", role: entity.RoleCustomer},
}

func seedProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "cappuccino", Name: "Cappuccino", Category: "Coffee", Price: 3.50, Description: "Rich espresso with steamed milk foam.", Image: "images/cappuccino.jpg"},
		{ID: "iced-matcha", Name: "Iced Matcha", Category: "Tea", Price: 4.00, Description: "Premium Japanese Matcha.", Image: "images/iced-matcha.jpg"},
		{ID: "cheesecake", Name: "Cheesecake", Category: "Desserts", Price: 4.50, Description: "Classic NY Style Cheesecake.", Image: "images/cheesecake.jpg"},
		{ID: "avocado-toast", Name: "Avocado Toast", Category: "Snacks", Price: 5.50, Description: "Sourdough bread.", Image: "images/avocado-toast.jpg"},
		{ID: "espresso-shot", Name: "Espresso Shot", Category: "Coffee", Price: 2.00, Description: "Pure energy in a cup.", Image: "images/espresso-shot.jpg"},
	}
}

// Seed builds the first-run state: the demo accounts and the default catalog.
// Passwords are hashed through the given function before they are stored.
func Seed(hash func(password string) (string, error)) (*State, error) {
	st := New()

	for _, acc := range seedAccounts {
		passwordHash, err := hash(acc.password)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hash seed password for %s", acc.email)
		}

		st.Users = append(st.Users, &entity.User{
			ID:            uuid.NewString(),
			Name:          acc.name,
			Email:         acc.email,
			Phone:         acc.phone,
			PasswordHash:  passwordHash,
			Role:          acc.role,
			SavedCart:     []*entity.CartItem{},
			SavedWishlist: []string{},
		})
	}

	st.Products = seedProducts()

	return st, nil
}

// Empty reports whether the state has never been seeded.
func (s *State) Empty() bool {
	return len(s.Users) == 0 && len(s.Products) == 0
}
