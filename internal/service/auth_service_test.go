package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Khaliq12345/O-Platy60-server/internal/apierror"
	"github.com/Khaliq12345/O-Platy60-server/internal/config"
	"github.com/Khaliq12345/O-Platy60-server/internal/dto"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
)

func newAuthFixture(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()
	repo := newStubUserRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
	return NewAuthService(repo, cfg), repo
}

func signup(t *testing.T, svc AuthService) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "cook@platy.local",
		Password: "supersecret",
		FullName: "Test Cook",
		Role:     model.RoleCook,
	})
	require.NoError(t, err)
	return resp
}

func TestSignup_IssuesTokenPair(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp := signup(t, svc)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
	assert.Equal(t, model.RoleCook, resp.User.Role)
}

func TestSignup_DuplicateEmailRejected(t *testing.T) {
	svc, _ := newAuthFixture(t)
	signup(t, svc)

	_, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "cook@platy.local",
		Password: "anotherpass",
		FullName: "Impostor",
		Role:     model.RoleCook,
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	signup(t, svc)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cook@platy.local",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindAuth))
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@platy.local",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindAuth))
}

func TestLogin_Roundtrip(t *testing.T) {
	svc, _ := newAuthFixture(t)
	signup(t, svc)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "cook@platy.local",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	svc, _ := newAuthFixture(t)
	first := signup(t, svc)

	resp, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, first.User.ID, resp.User.ID)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindAuth))
}

func TestRefresh_DeletedUser(t *testing.T) {
	svc, repo := newAuthFixture(t)
	first := signup(t, svc)

	require.NoError(t, repo.Delete(context.Background(), first.User.ID))
	_, err := svc.Refresh(context.Background(), first.RefreshToken)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindAuth))
}

func TestValidate_GoodAndBadTokens(t *testing.T) {
	svc, _ := newAuthFixture(t)
	first := signup(t, svc)

	good, err := svc.Validate(context.Background(), first.AccessToken)
	require.NoError(t, err)
	assert.True(t, good.Valid)
	require.NotNil(t, good.User)
	assert.Equal(t, first.User.ID, good.User.ID)

	bad, err := svc.Validate(context.Background(), "garbage")
	require.NoError(t, err)
	assert.False(t, bad.Valid)
	assert.Nil(t, bad.User)
}
