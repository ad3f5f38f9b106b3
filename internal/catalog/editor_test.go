package catalog

import (
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorBeginClonesTheRecord(t *testing.T) {
	orig := &model.Product{ID: 1, Name: "Michelin"}
	ed := NewEditor[*model.Product]()
	buf := ed.Begin(orig, false)

	require.NoError(t, ed.SetField("name", "Dunlop"))
	assert.Equal(t, "Michelin", orig.Name)
	assert.Equal(t, "Dunlop", buf.Draft.Name)
}

func TestEditorSingleSlot(t *testing.T) {
	ed := NewEditor[*model.Product]()
	ed.Begin(&model.Product{ID: 1, Name: "first"}, false)
	require.NoError(t, ed.SetField("name", "half-edited"))

	// A second Begin silently discards the first draft.
	ed.Begin(&model.Product{ID: 2, Name: "second"}, false)

	items := []*model.Product{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	items, committed, err := ed.Commit(items)
	require.NoError(t, err)
	assert.Equal(t, int64(2), committed.ID)
	assert.Equal(t, "first", items[0].Name)
}

func TestEditorCommitNewAppendsWithFreshID(t *testing.T) {
	items := []*model.Product{{ID: 1}, {ID: 4}}
	ed := NewEditor[*model.Product]()
	ed.Begin(&model.Product{}, true)
	require.NoError(t, ed.SetField("name", "Pirelli"))
	require.NoError(t, ed.SetField("price", "99000"))

	items, created, err := ed.Commit(items)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, int64(5), created.ID)
	assert.True(t, created.Price.Equal(decimal.RequireFromString("99000")))
}

func TestEditorCommitExistingReplacesInPlace(t *testing.T) {
	items := []*model.Product{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}
	ed := NewEditor[*model.Product]()
	ed.Begin(items[0], false)
	require.NoError(t, ed.SetField("name", "A"))

	items, updated, err := ed.Commit(items)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "A", items[0].Name)
}

func TestEditorCommitVanishedRecordAppends(t *testing.T) {
	// The record was deleted while the buffer was open: the draft keeps its
	// id and is re-appended instead of being lost.
	ed := NewEditor[*model.Product]()
	ed.Begin(&model.Product{ID: 7, Name: "ghost"}, false)

	items, committed, err := ed.Commit([]*model.Product{{ID: 1}})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(7), committed.ID)
}

func TestEditorGarbageNumericInputCoercesToZero(t *testing.T) {
	ed := NewEditor[*model.Product]()
	ed.Begin(&model.Product{Quantity: 10, Price: decimal.NewFromInt(500)}, true)

	require.NoError(t, ed.SetField("quantity", "not-a-number"))
	require.NoError(t, ed.SetField("price", "12,34"))

	items, created, err := ed.Commit(nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 0, created.Quantity)
	assert.True(t, created.Price.IsZero())
}

func TestEditorUnknownFieldRejected(t *testing.T) {
	ed := NewEditor[*model.Product]()
	ed.Begin(&model.Product{}, true)
	err := ed.SetField("warranty", "2y")
	assert.ErrorIs(t, err, model.ErrUnknownField)
}

func TestEditorOperationsWithoutBuffer(t *testing.T) {
	ed := NewEditor[*model.Product]()
	assert.ErrorIs(t, ed.SetField("name", "x"), ErrNoOpenBuffer)
	_, _, err := ed.Commit(nil)
	assert.ErrorIs(t, err, ErrNoOpenBuffer)
	assert.False(t, ed.Open())
}

func TestEditorCancelDiscardsDraft(t *testing.T) {
	ed := NewEditor[*model.Product]()
	ed.Begin(&model.Product{ID: 1}, false)
	require.True(t, ed.Open())
	ed.Cancel()
	assert.False(t, ed.Open())
	_, _, err := ed.Commit(nil)
	assert.ErrorIs(t, err, ErrNoOpenBuffer)
}
