package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/payment"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/worker"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// PurchaseService runs the storefront checkout: decrement stock, persist the
// item, append a pending order, and hand back the payment instruction — all
// before any payment confirmation exists (the rails never confirm).
type PurchaseService struct {
	products   map[model.Category]*catalog.Store[*model.Product]
	cars       *catalog.Store[*model.Car]
	services   *catalog.Store[*model.ServiceOffer]
	orders     *catalog.Store[*model.Order]
	gateway    *payment.Gateway
	dispatcher *worker.Dispatcher
}

func NewPurchaseService(
	products map[model.Category]*catalog.Store[*model.Product],
	cars *catalog.Store[*model.Car],
	services *catalog.Store[*model.ServiceOffer],
	orders *catalog.Store[*model.Order],
	gateway *payment.Gateway,
	dispatcher *worker.Dispatcher,
) *PurchaseService {
	return &PurchaseService{
		products:   products,
		cars:       cars,
		services:   services,
		orders:     orders,
		gateway:    gateway,
		dispatcher: dispatcher,
	}
}

// purchaseStocked is the combined decrement+persist unit of work: the clone
// is decremented and written back inside one Mutate, so a computed decrement
// can never be silently lost.
func purchaseStocked[T interface {
	catalog.Record[T]
	model.Stocked
	Label() string
}](ctx context.Context, store *catalog.Store[T], id int64, qty int) (string, decimal.Decimal, error) {
	var name string
	var total decimal.Decimal

	err := store.Mutate(ctx, func(items []T) ([]T, error) {
		item, ok := catalog.FindByID(items, id)
		if !ok {
			return nil, catalog.ErrNotFound
		}
		updated := item.Clone()
		t, err := catalog.Purchase(updated, qty)
		if err != nil {
			return nil, err
		}
		name, total = updated.Label(), t
		return catalog.Replace(items, id, updated), nil
	})
	return name, total, err
}

// Purchase handles one checkout request end to end.
func (s *PurchaseService) Purchase(ctx context.Context, req dto.PurchaseRequest) (*dto.PurchaseResponse, error) {
	category := model.Category(req.Category)

	var itemName string
	var total decimal.Decimal
	var err error

	switch category {
	case model.CategoryCars:
		itemName, total, err = purchaseStocked(ctx, s.cars, req.ItemID, req.Quantity)
	case model.CategoryEngineer:
		// Services carry no stock — quantity only scales the rate.
		itemName, total, err = s.bookService(ctx, req.ItemID, req.Quantity)
	default:
		store, ok := s.products[category]
		if !ok {
			return nil, fmt.Errorf("category %q: %w", req.Category, catalog.ErrNotFound)
		}
		itemName, total, err = purchaseStocked(ctx, store, req.ItemID, req.Quantity)
	}
	if err != nil {
		return nil, err
	}

	// Append the pending order. Committed optimistically: the simulated
	// rails never call back, so this is as "paid" as an order gets.
	var created *model.Order
	err = s.orders.Mutate(ctx, func(items []*model.Order) ([]*model.Order, error) {
		items, created = catalog.Append(items, &model.Order{
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
			Category:      category,
			ItemID:        req.ItemID,
			ItemName:      itemName,
			Quantity:      req.Quantity,
			Total:         total,
			PaymentMethod: req.PaymentMethod,
			Status:        model.OrderPending,
			CreatedAt:     time.Now().UTC(),
		})
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	instruction, err := s.gateway.Instructions(payment.Rail(req.PaymentMethod), created)
	if err != nil {
		return nil, err
	}

	// Receipt job — fire & forget
	if enqErr := s.dispatcher.EnqueueReceipt(ctx, worker.ReceiptJobPayload{
		Order:   *created,
		ToEmail: req.CustomerEmail,
	}); enqErr != nil {
		log.Warn().Err(enqErr).Int64("order_id", created.ID).Msg("failed to enqueue receipt job")
	}

	return &dto.PurchaseResponse{
		Order:   dto.NewOrderResponse(created),
		Payment: instruction,
	}, nil
}

func (s *PurchaseService) bookService(ctx context.Context, id int64, qty int) (string, decimal.Decimal, error) {
	if qty < 1 {
		return "", decimal.Zero, catalog.ErrInvalidQuantity
	}
	offers, err := s.services.Load(ctx)
	if err != nil {
		return "", decimal.Zero, err
	}
	offer, ok := catalog.FindByID(offers, id)
	if !ok {
		return "", decimal.Zero, catalog.ErrNotFound
	}
	return offer.Label(), offer.Rate.Mul(decimal.NewFromInt(int64(qty))), nil
}
