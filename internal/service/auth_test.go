package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skvindia/app-portal/internal/metrics"
	servermocks "github.com/skvindia/app-portal/internal/mocks"
	"github.com/skvindia/app-portal/internal/model"
	"github.com/skvindia/app-portal/internal/testutil"
	"github.com/skvindia/app-portal/internal/token"
)

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := servermocks.NewUserStore(t)
	tokMan := servermocks.NewTokenManager(t)
	exp := time.Now().Add(24 * time.Hour)

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{Email: "a@x.com", Password: "pw1"}, nil)
	tokMan.On("Sign", "a@x.com").Return("tok", exp, nil)

	a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, metrics.New(), testutil.MakeNoopLogger())

	session, err := a.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, "tok", session.Token)
	assert.Equal(t, exp, session.ExpiresAt)
}

func TestAuth_Login_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "empty email", email: "", password: "pw1"},
		{name: "empty password", email: "a@x.com", password: ""},
		{name: "both empty", email: "", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No expectations: any store or token call fails the test.
			userStore := servermocks.NewUserStore(t)
			tokMan := servermocks.NewTokenManager(t)

			a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, nil, testutil.MakeNoopLogger())

			_, err := a.Login(context.Background(), tt.email, tt.password)
			require.ErrorIs(t, err, model.ErrBadRequest)
			userStore.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestAuth_Login_UserNotFound(t *testing.T) {
	userStore := servermocks.NewUserStore(t)
	tokMan := servermocks.NewTokenManager(t)

	userStore.On("GetByEmail", mock.Anything, "nobody@x.com").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, nil, testutil.MakeNoopLogger())

	_, err := a.Login(context.Background(), "nobody@x.com", "pw1")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	passwords := []string{"pw2", "PW1", "pw1 ", " pw1", "p"}

	for _, supplied := range passwords {
		supplied := supplied
		t.Run(supplied, func(t *testing.T) {
			t.Parallel()

			userStore := servermocks.NewUserStore(t)
			tokMan := servermocks.NewTokenManager(t)
			userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{Email: "a@x.com", Password: "pw1"}, nil)

			a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, nil, testutil.MakeNoopLogger())

			_, err := a.Login(context.Background(), "a@x.com", supplied)
			require.ErrorIs(t, err, model.ErrInvalidCredentials)
			tokMan.AssertNotCalled(t, "Sign", mock.Anything)
		})
	}
}

func TestAuth_Login_EmailIsNotNormalized(t *testing.T) {
	userStore := servermocks.NewUserStore(t)
	tokMan := servermocks.NewTokenManager(t)

	userStore.On("GetByEmail", mock.Anything, "A@x.com").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, nil, testutil.MakeNoopLogger())

	_, err := a.Login(context.Background(), "A@x.com", "pw1")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_StoreError(t *testing.T) {
	userStore := servermocks.NewUserStore(t)
	tokMan := servermocks.NewTokenManager(t)

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{}, assert.AnError)

	a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, nil, testutil.MakeNoopLogger())

	_, err := a.Login(context.Background(), "a@x.com", "pw1")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, model.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "failed to get user by email")
}

func TestAuth_Login_SignError(t *testing.T) {
	userStore := servermocks.NewUserStore(t)
	tokMan := servermocks.NewTokenManager(t)

	userStore.On("GetByEmail", mock.Anything, "a@x.com").Return(model.User{Email: "a@x.com", Password: "pw1"}, nil)
	tokMan.On("Sign", "a@x.com").Return("", time.Time{}, assert.AnError)

	a := NewAuth(userStore, NewStoredPasswordVerifier(), tokMan, nil, testutil.MakeNoopLogger())

	_, err := a.Login(context.Background(), "a@x.com", "pw1")
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to issue token")
}

func TestAuth_Login_TokenCarriesEmail(t *testing.T) {
	users := []model.User{
		{Email: "a@x.com", Password: "pw1"},
		{Email: "b@x.com", Password: "correct horse"},
		{Email: "c@y.org", Password: "ü-ñ-✓"},
	}

	codec := token.NewJWT("secret")
	userStore := servermocks.NewUserStore(t)
	for _, u := range users {
		userStore.On("GetByEmail", mock.Anything, u.Email).Return(u, nil)
	}

	m := metrics.New()
	a := NewAuth(userStore, NewStoredPasswordVerifier(), codec, m, testutil.MakeNoopLogger())

	for _, u := range users {
		session, err := a.Login(context.Background(), u.Email, u.Password)
		require.NoError(t, err)

		claims, err := codec.Verify(session.Token)
		require.NoError(t, err)
		assert.Equal(t, u.Email, claims.Email)
	}
}
