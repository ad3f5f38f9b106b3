package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/apierror"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/dto"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const priceCacheTTL = 4 * time.Hour

// PriceCheckHandler serves the public price check endpoint. No authentication
// required — no side effects whatsoever.
type PriceCheckHandler struct {
	products map[model.Category]*catalog.Store[*model.Product]
	cars     *catalog.Store[*model.Car]
	services *catalog.Store[*model.ServiceOffer]
	rdb      *redis.Client
}

func NewPriceCheckHandler(
	products map[model.Category]*catalog.Store[*model.Product],
	cars *catalog.Store[*model.Car],
	services *catalog.Store[*model.ServiceOffer],
	rdb *redis.Client,
) *PriceCheckHandler {
	return &PriceCheckHandler{products: products, cars: cars, services: services, rdb: rdb}
}

// GetPrice godoc
// @Summary Price check by category and id (no authentication)
// @Tags price
// @Produce json
// @Param category path string true "Catalog category"
// @Param id path int true "Record id"
// @Success 200 {object} dto.PriceCheckResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/price/{category}/{id} [get]
func (h *PriceCheckHandler) GetPrice(c *gin.Context) {
	category := model.Category(c.Param("category"))
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	cacheKey := "price:" + string(category) + ":" + c.Param("id")

	// 1. Try Redis cache
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.PriceCheckResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	// 2. Cache miss — read the collection
	resp, err := h.lookup(ctx, category, id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("item not found"))
		return
	}

	// 3. Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, priceCacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PriceCheckHandler) lookup(ctx context.Context, category model.Category, id int64) (dto.PriceCheckResponse, error) {
	var resp dto.PriceCheckResponse

	switch category {
	case model.CategoryCars:
		items, err := h.cars.Load(ctx)
		if err != nil {
			return resp, err
		}
		car, ok := catalog.FindByID(items, id)
		if !ok {
			return resp, catalog.ErrNotFound
		}
		return dto.PriceCheckResponse{
			Name:      car.Label(),
			Price:     car.UnitPrice().String(),
			Available: car.StockQuantity(),
			Category:  string(category),
		}, nil

	case model.CategoryEngineer:
		items, err := h.services.Load(ctx)
		if err != nil {
			return resp, err
		}
		offer, ok := catalog.FindByID(items, id)
		if !ok {
			return resp, catalog.ErrNotFound
		}
		return dto.PriceCheckResponse{
			Name:      offer.Label(),
			Price:     offer.Rate.String(),
			Available: 0,
			Category:  string(category),
		}, nil

	default:
		store, ok := h.products[category]
		if !ok {
			return resp, catalog.ErrNotFound
		}
		items, err := store.Load(ctx)
		if err != nil {
			return resp, err
		}
		p, found := catalog.FindByID(items, id)
		if !found {
			return resp, catalog.ErrNotFound
		}
		return dto.PriceCheckResponse{
			Name:      p.Label(),
			Price:     p.UnitPrice().String(),
			Available: p.StockQuantity(),
			Category:  string(category),
		}, nil
	}
}
