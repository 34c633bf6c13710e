//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/skvindia/app-portal/internal/model"
	repo "github.com/skvindia/app-portal/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "portal_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/portal_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seed(t *testing.T, conn *repo.Connection) {
	t.Helper()
	ctx := context.Background()

	_, err := conn.ExecContext(ctx, `TRUNCATE users, permissions`)
	require.NoError(t, err)

	_, err = conn.ExecContext(ctx,
		`INSERT INTO users (employee_email, password) VALUES ($1, $2), ($3, $4)`,
		"a@x.com", "pw1", "b@x.com", "pw2")
	require.NoError(t, err)

	rows := []struct {
		email, name string
		link        any
	}{
		{"a@x.com", "App 2", "https://two"},
		{"a@x.com", "App 1", "https://one"},
		{"a@x.com", "App 3", "n/a"},
		{"a@x.com", "App 4", "NONE"},
		{"a@x.com", "App 5", nil},
		{"a@x.com", "App 6", ""},
		{"a@x.com", "App 7", "ftp://files"},
		{"b@x.com", "Other", "https://other"},
	}
	for _, r := range rows {
		_, err = conn.ExecContext(ctx,
			`INSERT INTO permissions (email, app_name, app_link) VALUES ($1, $2, $3)`,
			r.email, r.name, r.link)
		require.NoError(t, err)
	}
}

func TestRepositories(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn, true)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Ping(ctx))
	seed(t, conn)

	t.Run("user_repository", func(t *testing.T) {
		ur := repo.NewUserRepository(conn)

		u, err := ur.GetByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, model.User{Email: "a@x.com", Password: "pw1"}, u)

		_, err = ur.GetByEmail(ctx, "A@x.com")
		require.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("permission_repository", func(t *testing.T) {
		pr := repo.NewPermissionRepository(conn)

		perms, err := pr.ListByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, []model.Permission{
			{AppName: "App 1", AppLink: "https://one"},
			{AppName: "App 2", AppLink: "https://two"},
		}, perms)

		perms, err = pr.ListByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		require.NotNil(t, perms)
		assert.Empty(t, perms)
	})
}

func TestNewConnection_MigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		conn, err := repo.NewConnection(ctx, dsn, true)
		require.NoError(t, err)
		require.NoError(t, conn.Close())
	}
}
