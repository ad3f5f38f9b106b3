package service

import (
	"context"
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/config"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (*AuthService, *catalog.Store[*model.User]) {
	t.Helper()
	kv := repository.NewMemory()
	store := catalog.NewStore(kv, model.CategoryUsers, catalog.DefaultUsers)
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
	}
	return NewAuthService(store, cfg), store
}

func TestLoginWithSeededAdmin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{LoginID: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, model.RoleAdmin, resp.UserType)
	assert.Equal(t, model.MainAdminID, resp.User.ID)
}

func TestLoginByEmailCaseInsensitive(t *testing.T) {
	svc, _ := newAuthFixture(t)
	resp, err := svc.Login(context.Background(), dto.LoginRequest{LoginID: "Admin@Mechanic.Local", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{LoginID: "admin", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{LoginID: "nobody", Password: "admin123"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLoginInactiveUserRefused(t *testing.T) {
	svc, store := newAuthFixture(t)
	ctx := context.Background()

	err := store.Mutate(ctx, func(items []*model.User) ([]*model.User, error) {
		items[0].Status = model.StatusInactive
		return items, nil
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{LoginID: "admin", Password: "admin123"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, dto.LoginRequest{LoginID: "admin", Password: "admin123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, model.MainAdminID, refreshed.User.ID)
}

func TestRefreshGarbageToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	_, err := svc.Refresh(context.Background(), "not.a.token")
	assert.Error(t, err)
}
