package model

import "time"

// SessionDuration is the lifetime of an issued session token and its cookie.
const SessionDuration = 24 * time.Hour

// Session is the result of a successful login.
type Session struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}
