package interfaces

import (
	"time"

	"oficina_jobs/internal/domain/entities"
)

// ITokenIssuer signs access tokens for authenticated employees.
type ITokenIssuer interface {
	Issue(e entities.Employee) (token string, expiresAt time.Time, err error)
}

// IPasswordHasher hashes and checks employee passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
