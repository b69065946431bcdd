package jwt

import (
	"errors"
	"time"
)

var ErrInvalidToken = errors.New("jwt: invalid token")

// Claims are the registered claims read back from a verified access token.
type Claims struct {
	Subject   string
	ID        string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type Signer interface {
	Sign(subject string, ttl time.Duration) (string, error)
	Verify(token string) (*Claims, error)
}
