package catalog

import (
	"errors"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
)

// Record is the full contract a collection record must satisfy to be edited:
// keyed, cloneable into a draft, and able to apply raw form fields.
type Record[T any] interface {
	model.Keyed
	Clone() T
	ApplyField(field, raw string) error
}

// ErrNoOpenBuffer is returned by editor operations when Begin was never
// called or the buffer was already committed/cancelled.
var ErrNoOpenBuffer = errors.New("no open edit buffer")

// Buffer is a transient single-record draft. IsNew is carried explicitly —
// the record's id magnitude is never used to decide add vs update.
type Buffer[T Record[T]] struct {
	Draft T
	IsNew bool
}

// Editor holds at most one Buffer at a time, mirroring the single inline
// edit form per screen. Opening a second buffer discards the first
// (last-write-wins, intentional).
type Editor[T Record[T]] struct {
	buf *Buffer[T]
}

func NewEditor[T Record[T]]() *Editor[T] { return &Editor[T]{} }

// Begin opens a buffer over a shallow copy of rec. Any buffer already open
// is silently discarded.
func (e *Editor[T]) Begin(rec T, isNew bool) *Buffer[T] {
	e.buf = &Buffer[T]{Draft: rec.Clone(), IsNew: isNew}
	return e.buf
}

// SetField applies one raw form value to the open draft.
func (e *Editor[T]) SetField(field, raw string) error {
	if e.buf == nil {
		return ErrNoOpenBuffer
	}
	return e.buf.Draft.ApplyField(field, raw)
}

// Commit merges the draft into the collection and closes the buffer.
// A new draft (or one whose id is no longer in the collection) is appended;
// anything else replaces its record in place. Concurrent edits of the same
// record are last-write-wins, not merged.
func (e *Editor[T]) Commit(items []T) ([]T, T, error) {
	var zero T
	if e.buf == nil {
		return items, zero, ErrNoOpenBuffer
	}
	buf := e.buf
	e.buf = nil

	if _, exists := FindByID(items, buf.Draft.Key()); buf.IsNew || !exists {
		if buf.Draft.Key() == 0 {
			buf.Draft.SetKey(NextID(items))
		}
		return append(items, buf.Draft), buf.Draft, nil
	}
	return Replace(items, buf.Draft.Key(), buf.Draft), buf.Draft, nil
}

// Cancel discards the buffer without touching any collection.
func (e *Editor[T]) Cancel() { e.buf = nil }

// Open reports whether a buffer is currently active.
func (e *Editor[T]) Open() bool { return e.buf != nil }
