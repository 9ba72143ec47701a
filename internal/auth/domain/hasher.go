package domain

// PasswordHasher 密码单向哈希
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}
