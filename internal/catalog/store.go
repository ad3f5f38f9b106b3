// Package catalog implements the generic load/save/edit pattern shared by
// every storefront and admin screen: storage → list → edit buffer → merged
// list → storage. Each category is an independent Store instance.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"

	"github.com/rs/zerolog/log"
)

// ErrNotFound is returned when an id does not exist in a collection.
var ErrNotFound = errors.New("record not found")

// Store persists one category's collection through a KV repository.
// The mutex serializes mutations: every write fully replaces the persisted
// collection, so overlapping read-modify-write cycles would lose updates.
type Store[T model.Keyed] struct {
	kv       repository.KV
	category model.Category
	defaults func() []T
	mu       sync.Mutex
}

// NewStore binds a category to its repository and default seed collection.
// defaults must return fresh values on every call; pass nil for categories
// that start empty.
func NewStore[T model.Keyed](kv repository.KV, category model.Category, defaults func() []T) *Store[T] {
	return &Store[T]{kv: kv, category: category, defaults: defaults}
}

// Category returns the collection key this store is bound to.
func (s *Store[T]) Category() model.Category { return s.category }

// Load reads the persisted collection. A category that is absent — or whose
// persisted bytes no longer parse — yields the default collection, which is
// written back immediately so the seeded state is explicit and a second Load
// has no side effects.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the persisted collection in a single synchronous write.
func (s *Store[T]) Save(ctx context.Context, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, items)
}

// Mutate runs fn as one load-modify-save unit of work under the store mutex.
// It is the primitive behind purchase+persist: either the whole mutation is
// written or nothing is.
func (s *Store[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx)
	if err != nil {
		return err
	}
	updated, err := fn(items)
	if err != nil {
		return err
	}
	return s.save(ctx, updated)
}

func (s *Store[T]) load(ctx context.Context) ([]T, error) {
	data, err := s.kv.Get(ctx, string(s.category))
	if errors.Is(err, repository.ErrNotFound) {
		return s.seed(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.category, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		// Malformed persisted data is treated as absent, never fatal.
		log.Warn().
			Str("category", string(s.category)).
			Err(err).
			Msg("malformed persisted collection, reseeding defaults")
		return s.seed(ctx)
	}
	return items, nil
}

func (s *Store[T]) save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.category, err)
	}
	if err := s.kv.Put(ctx, string(s.category), data); err != nil {
		return fmt.Errorf("save %s: %w", s.category, err)
	}
	return nil
}

func (s *Store[T]) seed(ctx context.Context) ([]T, error) {
	var items []T
	if s.defaults != nil {
		items = s.defaults()
	}
	if err := s.save(ctx, items); err != nil {
		return nil, err
	}
	log.Info().
		Str("category", string(s.category)).
		Int("records", len(items)).
		Msg("seeded default collection")
	return items, nil
}

// ── Collection helpers ───────────────────────────────────────────────────────
// Pure functions over an in-memory collection; persistence is the caller's
// concern (Save or Mutate).

// NextID allocates max(existing ids)+1, never reusing a live id. Wall-clock
// ids are deliberately not used: rapid successive creates must not collide.
func NextID[T model.Keyed](items []T) int64 {
	var max int64
	for _, it := range items {
		if it.Key() > max {
			max = it.Key()
		}
	}
	return max + 1
}

// Append assigns a fresh id to tpl and appends it, returning both the grown
// collection and the created record for immediate editing.
func Append[T model.Keyed](items []T, tpl T) ([]T, T) {
	tpl.SetKey(NextID(items))
	return append(items, tpl), tpl
}

// Remove filters out the record with the matching id. Removing an id that is
// not present is a no-op, not an error.
func Remove[T model.Keyed](items []T, id int64) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if it.Key() != id {
			out = append(out, it)
		}
	}
	return out
}

// Replace swaps the record whose id matches rec's position keeping insertion
// order. No-op when the id is absent.
func Replace[T model.Keyed](items []T, id int64, rec T) []T {
	for i, it := range items {
		if it.Key() == id {
			items[i] = rec
			break
		}
	}
	return items
}

// FindByID returns the record with the given id, if present.
func FindByID[T model.Keyed](items []T, id int64) (T, bool) {
	for _, it := range items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
