package order

import (
	"testing"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to model.OrderStatus
		want     bool
	}{
		{model.OrderPending, model.OrderConfirmed, true},
		{model.OrderPending, model.OrderCancelled, true},
		{model.OrderPending, model.OrderCompleted, false}, // confirmation cannot be skipped
		{model.OrderConfirmed, model.OrderCompleted, true},
		{model.OrderConfirmed, model.OrderCancelled, false},
		{model.OrderConfirmed, model.OrderPending, false},
		{model.OrderCompleted, model.OrderPending, false},
		{model.OrderCompleted, model.OrderConfirmed, false},
		{model.OrderCancelled, model.OrderPending, false},
		{model.OrderCancelled, model.OrderConfirmed, false},
		{model.OrderPending, model.OrderPending, false}, // no self-loops
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, CanTransition(tc.from, tc.to), "%s → %s", tc.from, tc.to)
	}
}

func TestTransitionHappyPath(t *testing.T) {
	o := &model.Order{Status: model.OrderPending}
	require.NoError(t, Transition(o, model.OrderConfirmed))
	require.NoError(t, Transition(o, model.OrderCompleted))
	assert.Equal(t, model.OrderCompleted, o.Status)
}

func TestTransitionIllegalMoveLeavesOrderUntouched(t *testing.T) {
	o := &model.Order{Status: model.OrderPending}
	err := Transition(o, model.OrderCompleted)
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, model.OrderPending, o.Status)
}

func TestTransitionUnknownStatusRejected(t *testing.T) {
	o := &model.Order{Status: model.OrderPending}
	err := Transition(o, model.OrderStatus("shipped"))
	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, model.OrderPending, o.Status)
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	for _, terminal := range []model.OrderStatus{model.OrderCompleted, model.OrderCancelled} {
		for _, next := range []model.OrderStatus{model.OrderPending, model.OrderConfirmed, model.OrderCompleted, model.OrderCancelled} {
			o := &model.Order{Status: terminal}
			assert.ErrorIs(t, Transition(o, next), ErrIllegalTransition)
		}
	}
}
