package model

import "time"

// TokenManager signs and verifies session tokens.
type TokenManager interface {
	Sign(email string) (token string, expiresAt time.Time, err error)
	Verify(token string) (Claims, error)
}

// Claims is the verified content of a session token.
type Claims struct {
	Email     string
	ExpiresAt time.Time
}
