package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Both implementations must satisfy the same contract.
func runKVContract(t *testing.T, kv KV) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "tyres")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Put(ctx, "tyres", []byte(`[{"id":1}]`)))
	data, err := kv.Get(ctx, "tyres")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), data)

	// Overwrite fully replaces.
	require.NoError(t, kv.Put(ctx, "tyres", []byte(`[]`)))
	data, err = kv.Get(ctx, "tyres")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	// Categories are independent.
	_, err = kv.Get(ctx, "tubes")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, kv.Ping(ctx))
}

func TestMemoryKVContract(t *testing.T) {
	kv := NewMemory()
	defer kv.Close()
	runKVContract(t, kv)
}

func TestBoltKVContract(t *testing.T) {
	kv, err := NewBolt(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer kv.Close()
	runKVContract(t, kv)
}

func TestBoltKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	kv, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, "cars", []byte(`[{"id":1}]`)))
	require.NoError(t, kv.Close())

	kv2, err := NewBolt(path)
	require.NoError(t, err)
	defer kv2.Close()
	data, err := kv2.Get(ctx, "cars")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":1}]`), data)
}

func TestMemoryKVReturnsCopies(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, "tyres", []byte("abc")))

	data, err := kv.Get(ctx, "tyres")
	require.NoError(t, err)
	data[0] = 'X'

	again, err := kv.Get(ctx, "tyres")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
