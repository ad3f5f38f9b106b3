package service

import (
	"context"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/order"
)

// OrderService lists orders and moves them through the status machine.
// Status changes are persisted immediately — there is no dirty state.
type OrderService struct {
	orders *catalog.Store[*model.Order]
}

func NewOrderService(orders *catalog.Store[*model.Order]) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) List(ctx context.Context) ([]*model.Order, error) {
	return s.orders.Load(ctx)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*model.Order, error) {
	items, err := s.orders.Load(ctx)
	if err != nil {
		return nil, err
	}
	o, ok := catalog.FindByID(items, id)
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return o, nil
}

// UpdateStatus validates the transition against the lifecycle table and
// persists the result in the same unit of work. Illegal moves leave the
// stored order untouched.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, next model.OrderStatus) (*model.Order, error) {
	var updated *model.Order
	err := s.orders.Mutate(ctx, func(items []*model.Order) ([]*model.Order, error) {
		existing, ok := catalog.FindByID(items, id)
		if !ok {
			return nil, catalog.ErrNotFound
		}
		updated = existing.Clone()
		if err := order.Transition(updated, next); err != nil {
			return nil, err
		}
		return catalog.Replace(items, id, updated), nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
