package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/skvindia/app-portal/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db querier
}

func NewUserRepository(db querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetByEmail matches email exactly. Credential rows are never written here.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	query := `SELECT employee_email, password FROM users WHERE employee_email = $1`

	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.Email, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}
