package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/skvindia/app-portal/internal/model"
)

var _ model.PermissionStore = (*PermissionRepository)(nil)

type PermissionRepository struct {
	db querier
}

func NewPermissionRepository(db querier) *PermissionRepository {
	return &PermissionRepository{
		db: db,
	}
}

const listPermissionsQuery = `SELECT app_name, app_link FROM permissions
	WHERE email = $1
	  AND app_link IS NOT NULL
	  AND app_link != ''
	  AND LOWER(app_link) NOT IN ('n/a', 'none', 'null')
	  AND app_link LIKE 'http%'
	ORDER BY app_name`

// ListByEmail returns the user's permissions with a usable link, ordered by
// application name. A user with no rows gets an empty, non-nil slice.
func (r *PermissionRepository) ListByEmail(ctx context.Context, email string) ([]model.Permission, error) {
	rows, err := r.db.QueryContext(ctx, listPermissionsQuery, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	perms := make([]model.Permission, 0)
	for rows.Next() {
		var (
			name string
			link sql.NullString
		)
		if err := rows.Scan(&name, &link); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, model.Permission{
			AppName: name,
			AppLink: link.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate permissions: %w", err)
	}

	return perms, nil
}
