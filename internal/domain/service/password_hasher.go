package service

// PasswordHasher abstracts credential hashing so the account logic never sees
// plaintext storage.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool
}
