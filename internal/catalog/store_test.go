package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tyreStore(kv repository.KV) *Store[*model.Product] {
	return NewStore(kv, model.CategoryTyres, DefaultTyres)
}

func TestStoreSeedsDefaultsOnFirstLoad(t *testing.T) {
	kv := repository.NewMemory()
	s := tyreStore(kv)
	ctx := context.Background()

	items, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Michelin 165/70R14", items[0].Name)
	assert.Equal(t, 50, items[0].Quantity)

	// The seed is written through: the raw category now exists.
	_, err = kv.Get(ctx, string(model.CategoryTyres))
	require.NoError(t, err)
}

func TestStoreSeedIsIdempotent(t *testing.T) {
	kv := repository.NewMemory()
	s := tyreStore(kv)
	ctx := context.Background()

	first, err := s.Load(ctx)
	require.NoError(t, err)

	// Mutate, then load again — defaults must not come back.
	require.NoError(t, s.Mutate(ctx, func(items []*model.Product) ([]*model.Product, error) {
		return Remove(items, first[0].ID), nil
	}))

	second, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, second, 2)
}

func TestStoreReseedsOnMalformedData(t *testing.T) {
	kv := repository.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, string(model.CategoryTyres), []byte("{not json")))

	s := tyreStore(kv)
	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestStoreNilDefaultsStartEmpty(t *testing.T) {
	kv := repository.NewMemory()
	s := NewStore[*model.Order](kv, model.CategoryOrders, nil)

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStoreRoundTrip(t *testing.T) {
	kv := repository.NewMemory()
	s := tyreStore(kv)
	ctx := context.Background()

	var createdID int64
	err := s.Mutate(ctx, func(items []*model.Product) ([]*model.Product, error) {
		items, created := Append(items, &model.Product{Name: "Pirelli 205/55R16"})
		createdID = created.ID
		return items, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), createdID)

	// A second store over the same repository sees the persisted record.
	s2 := tyreStore(kv)
	items, err := s2.Load(ctx)
	require.NoError(t, err)
	p, ok := FindByID(items, createdID)
	require.True(t, ok)
	assert.Equal(t, "Pirelli 205/55R16", p.Name)
}

func TestStoreMutateErrorLeavesDataUntouched(t *testing.T) {
	kv := repository.NewMemory()
	s := tyreStore(kv)
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.Mutate(ctx, func(items []*model.Product) ([]*model.Product, error) {
		items[0].Quantity = 0
		return items, boom
	})
	require.ErrorIs(t, err, boom)

	items, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, items[0].Quantity)
}

func TestNextIDSkipsGaps(t *testing.T) {
	items := []*model.Product{{ID: 1}, {ID: 7}, {ID: 3}}
	assert.Equal(t, int64(8), NextID(items))

	// Removing the highest id frees it for reuse — only live ids count.
	assert.Equal(t, int64(4), NextID(Remove(items, 7)))
}

func TestNextIDEmptyCollection(t *testing.T) {
	assert.Equal(t, int64(1), NextID([]*model.Product{}))
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	items := []*model.Product{{ID: 1}, {ID: 2}}
	assert.Len(t, Remove(items, 99), 2)
}

func TestReplaceKeepsOrder(t *testing.T) {
	items := []*model.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}
	out := Replace(items, 2, &model.Product{ID: 2, Name: "B"})
	require.Len(t, out, 3)
	assert.Equal(t, "B", out[1].Name)
	assert.Equal(t, "c", out[2].Name)
}
