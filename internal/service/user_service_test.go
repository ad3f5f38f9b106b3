package service

import (
	"context"
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserFixture(t *testing.T) (*UserService, *catalog.Store[*model.User]) {
	t.Helper()
	kv := repository.NewMemory()
	store := catalog.NewStore(kv, model.CategoryUsers, catalog.DefaultUsers)
	return NewUserService(store), store
}

func createReq() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "jane",
		Email:     "jane@example.com",
		Phone:     "+255700000002",
		Password:  "secret1",
		Role:      model.RoleCustomer,
	}
}

func TestUserCreateHashesPasswordAndAllocatesID(t *testing.T) {
	svc, _ := newUserFixture(t)

	created, err := svc.Create(context.Background(), createReq())
	require.NoError(t, err)

	assert.Equal(t, int64(2), created.ID)
	assert.Equal(t, model.StatusActive, created.Status)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

func TestUserCreateDuplicateRejected(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	dup := createReq()
	dup.Username = "JANE"
	dup.Email = "other@example.com"
	dup.Phone = "+255700000009"
	_, err = svc.Create(ctx, dup)
	var verr *users.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "username")
}

func TestUserUpdateKeepsPasswordWhenBlank(t *testing.T) {
	svc, _ := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, dto.UpdateUserRequest{FirstName: "Janet"})
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, created.PasswordHash, updated.PasswordHash)
}

func TestUserUpdateMainAdminRoleChangeRefused(t *testing.T) {
	svc, _ := newUserFixture(t)
	_, err := svc.Update(context.Background(), model.MainAdminID, dto.UpdateUserRequest{Role: model.RoleCustomer})
	assert.ErrorIs(t, err, users.ErrProtected)
}

func TestUserDeleteMainAdminRefused(t *testing.T) {
	svc, store := newUserFixture(t)
	ctx := context.Background()

	err := svc.Delete(ctx, model.MainAdminID, true)
	require.ErrorIs(t, err, users.ErrProtected)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUserDeleteNeedsConfirmation(t *testing.T) {
	svc, store := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(ctx, created.ID, false), users.ErrNotConfirmed)
	require.NoError(t, svc.Delete(ctx, created.ID, true))

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestUserToggleStatusPersists(t *testing.T) {
	svc, store := newUserFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, createReq())
	require.NoError(t, err)

	toggled, err := svc.ToggleStatus(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, toggled.Status)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	u, ok := catalog.FindByID(items, created.ID)
	require.True(t, ok)
	assert.Equal(t, model.StatusInactive, u.Status)
}
