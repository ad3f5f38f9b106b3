package service

import (
	"context"
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/order"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture(t *testing.T) (*OrderService, *catalog.Store[*model.Order]) {
	t.Helper()
	kv := repository.NewMemory()
	store := catalog.NewStore[*model.Order](kv, model.CategoryOrders, nil)

	err := store.Mutate(context.Background(), func(items []*model.Order) ([]*model.Order, error) {
		items, _ = catalog.Append(items, &model.Order{CustomerName: "Jane", Status: model.OrderPending})
		return items, nil
	})
	require.NoError(t, err)
	return NewOrderService(store), store
}

func TestOrderUpdateStatusPersists(t *testing.T) {
	svc, store := newOrderFixture(t)
	ctx := context.Background()

	updated, err := svc.UpdateStatus(ctx, 1, model.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, updated.Status)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.OrderConfirmed, items[0].Status)
}

func TestOrderUpdateStatusIllegalMoveKeepsStoredOrder(t *testing.T) {
	svc, store := newOrderFixture(t)
	ctx := context.Background()

	_, err := svc.UpdateStatus(ctx, 1, model.OrderCompleted)
	require.ErrorIs(t, err, order.ErrIllegalTransition)

	items, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, items[0].Status)
}

func TestOrderUpdateStatusUnknownOrder(t *testing.T) {
	svc, _ := newOrderFixture(t)
	_, err := svc.UpdateStatus(context.Background(), 99, model.OrderConfirmed)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestOrderGet(t *testing.T) {
	svc, _ := newOrderFixture(t)
	o, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Jane", o.CustomerName)

	_, err = svc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
