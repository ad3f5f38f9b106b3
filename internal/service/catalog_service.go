package service

import (
	"context"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
)

// CatalogService is the admin CRUD behind every catalog screen: list the
// collection, open an edit buffer, apply raw form fields, merge back. One
// instance per category, all sharing the same generic implementation.
type CatalogService[T catalog.Record[T]] struct {
	store     *catalog.Store[T]
	newRecord func() T
}

func NewCatalogService[T catalog.Record[T]](store *catalog.Store[T], newRecord func() T) *CatalogService[T] {
	return &CatalogService[T]{store: store, newRecord: newRecord}
}

func (s *CatalogService[T]) List(ctx context.Context) ([]T, error) {
	return s.store.Load(ctx)
}

func (s *CatalogService[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	items, err := s.store.Load(ctx)
	if err != nil {
		return zero, err
	}
	rec, ok := catalog.FindByID(items, id)
	if !ok {
		return zero, catalog.ErrNotFound
	}
	return rec, nil
}

// Create opens a buffer over a fresh record, applies the submitted fields
// and commits as an append. The id is allocated inside the same unit of
// work that persists the grown collection.
func (s *CatalogService[T]) Create(ctx context.Context, fields map[string]string) (T, error) {
	var created T

	ed := catalog.NewEditor[T]()
	ed.Begin(s.newRecord(), true)
	for f, v := range fields {
		if err := ed.SetField(f, v); err != nil {
			ed.Cancel()
			return created, err
		}
	}

	err := s.store.Mutate(ctx, func(items []T) ([]T, error) {
		var err error
		items, created, err = ed.Commit(items)
		return items, err
	})
	return created, err
}

// Update edits an existing record through the same buffer path. The record
// is re-read inside the unit of work so the merge happens against the
// freshest persisted collection (last write wins).
func (s *CatalogService[T]) Update(ctx context.Context, id int64, fields map[string]string) (T, error) {
	var updated T

	err := s.store.Mutate(ctx, func(items []T) ([]T, error) {
		existing, ok := catalog.FindByID(items, id)
		if !ok {
			return nil, catalog.ErrNotFound
		}

		ed := catalog.NewEditor[T]()
		ed.Begin(existing, false)
		for f, v := range fields {
			if err := ed.SetField(f, v); err != nil {
				ed.Cancel()
				return nil, err
			}
		}

		var err error
		items, updated, err = ed.Commit(items)
		return items, err
	})
	return updated, err
}

// Delete removes the record. Deleting an id that is already gone is a
// no-op, matching Remove semantics.
func (s *CatalogService[T]) Delete(ctx context.Context, id int64) error {
	return s.store.Mutate(ctx, func(items []T) ([]T, error) {
		return catalog.Remove(items, id), nil
	})
}
