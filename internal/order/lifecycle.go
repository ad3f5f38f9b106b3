// Package order enforces the order status state machine. The storefront the
// backend grew out of wrote whatever status string it was handed; here every
// change goes through Transition and illegal moves are rejected.
package order

import (
	"errors"
	"fmt"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
)

// ErrIllegalTransition is returned for any move the table below does not allow.
var ErrIllegalTransition = errors.New("illegal order status transition")

// transitions: pending → {confirmed, cancelled}, confirmed → {completed}.
// completed and cancelled are terminal.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderPending:   {model.OrderConfirmed, model.OrderCancelled},
	model.OrderConfirmed: {model.OrderCompleted},
}

// CanTransition reports whether from → to is allowed. Repeating the current
// state is not allowed — no transition maps a state onto itself.
func CanTransition(from, to model.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves o to next or fails without mutating it.
func Transition(o *model.Order, next model.OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("status %q: %w", next, ErrIllegalTransition)
	}
	if !CanTransition(o.Status, next) {
		return fmt.Errorf("%s → %s: %w", o.Status, next, ErrIllegalTransition)
	}
	o.Status = next
	return nil
}
