package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skvindia/app-portal/internal/model"
)

var getUserQuery = regexp.QuoteMeta(`SELECT employee_email, password FROM users WHERE employee_email = $1`)

func TestUserRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		setup   func(mock sqlmock.Sqlmock)
		want    model.User
		wantErr error
	}{
		{
			name:  "found",
			email: "a@x.com",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getUserQuery).
					WithArgs("a@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"employee_email", "password"}).AddRow("a@x.com", "pw1"))
			},
			want: model.User{Email: "a@x.com", Password: "pw1"},
		},
		{
			name:  "not found",
			email: "nobody@x.com",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getUserQuery).
					WithArgs("nobody@x.com").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: model.ErrNotFound,
		},
		{
			name:  "database error",
			email: "a@x.com",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(getUserQuery).
					WithArgs("a@x.com").
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			repo := NewUserRepository(db)
			got, err := repo.GetByEmail(context.Background(), tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
