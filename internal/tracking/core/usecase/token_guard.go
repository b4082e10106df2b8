package usecase

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidToken = errors.New("invalid api token")

// TokenGuard checks the shared secret presented by ingestion callers.
// The check runs before any validation or store access (fail closed).
type TokenGuard struct {
	token string
}

func NewTokenGuard(token string) *TokenGuard {
	return &TokenGuard{token: token}
}

func (g *TokenGuard) Check(presented string) error {
	if subtle.ConstantTimeCompare([]byte(g.token), []byte(presented)) != 1 {
		return ErrInvalidToken
	}
	return nil
}
