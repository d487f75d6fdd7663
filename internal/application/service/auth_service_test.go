package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trendora/trendora-api/pkg/apperror"
	"github.com/trendora/trendora-api/pkg/auth"
	"github.com/trendora/trendora-api/pkg/oauth"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{})
	return NewAuthService(userRepo, jwtManager, googleService), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		FullName: "Asha Verma",
		Email:    "Asha@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.False(t, user.IsAdmin)

	out, err := svc.Login(ctx, &LoginInput{Email: "asha@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	cases := []struct {
		name  string
		input RegisterInput
		field string
	}{
		{"missing name", RegisterInput{Email: "a@b.com", Password: "secret123"}, "fullName"},
		{"bad email", RegisterInput{FullName: "Asha", Email: "not-an-email", Password: "secret123"}, "email"},
		{"short password", RegisterInput{FullName: "Asha", Email: "a@b.com", Password: "abc"}, "password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tc.input)
			require.Error(t, err)

			appErr := apperror.From(err)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tc.field, appErr.Errors[0].Field)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{FullName: "Asha", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{FullName: "Asha Again", Email: "A@B.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.From(err).Code)
}

func TestLoginFailures(t *testing.T) {
	svc, userRepo := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{FullName: "Asha", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@b.com", Password: "wrong"})
	assert.Equal(t, apperror.ErrInvalidCredentials, apperror.From(err))

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@b.com", Password: "secret123"})
	assert.Equal(t, apperror.ErrInvalidCredentials, apperror.From(err))

	user.Blocked = true
	require.NoError(t, userRepo.Update(ctx, user))

	_, err = svc.Login(ctx, &LoginInput{Email: "a@b.com", Password: "secret123"})
	assert.Equal(t, apperror.ErrAccountBlocked, apperror.From(err))
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{FullName: "Asha", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	out, err := svc.Login(ctx, &LoginInput{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, out.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(ctx, "garbage-token")
	assert.Equal(t, apperror.ErrTokenExpired, apperror.From(err))
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{FullName: "Asha", Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.From(err).Code)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "a@b.com", Password: "newsecret"})
	assert.NoError(t, err)
}
