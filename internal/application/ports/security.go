package ports

// PasswordHasher transforms plaintext passwords before storage (bcrypt).
// No verify operation exists: nothing in this service authenticates.
type PasswordHasher interface {
	Hash(password string) (string, error)
}
