package contract

// IHasher defines the interface for password hashing.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
