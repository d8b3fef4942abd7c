package ports

// PasswordHasher is the one-way credential hashing contract. Verify returns
// (false, nil) on a simple mismatch; a non-nil error means the stored hash
// is malformed, which is an internal fault, not a wrong password.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}
