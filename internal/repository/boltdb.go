package repository

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"
)

var bucketCollections = []byte("collections")

// BoltKV is the embedded production implementation of KV. All collections
// live in a single bucket, one key per category.
type BoltKV struct {
	db *bbolt.DB
}

// NewBolt opens (or creates) the database file and initializes the bucket.
func NewBolt(path string) (*BoltKV, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketCollections)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create collections bucket: %w", err)
	}

	return &BoltKV{db: db}, nil
}

func (b *BoltKV) Get(_ context.Context, category string) ([]byte, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketCollections).Get([]byte(category))
		if v == nil {
			return ErrNotFound
		}
		// The slice is only valid inside the transaction — copy out.
		data = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (b *BoltKV) Put(_ context.Context, category string, data []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket(bucketCollections).Put([]byte(category), data); err != nil {
			return fmt.Errorf("failed to save collection %q: %w", category, err)
		}
		return nil
	})
}

func (b *BoltKV) Ping(_ context.Context) error {
	return b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketCollections) == nil {
			return fmt.Errorf("collections bucket missing")
		}
		return nil
	})
}

func (b *BoltKV) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
