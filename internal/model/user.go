package model

import "context"

// UserStore defines read access to provisioned portal users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
}

// User represents an employee account. Users are provisioned outside the
// portal and are never created or mutated here.
type User struct {
	Email    string
	Password string
}
