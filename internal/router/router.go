package router

import (
	"time"

	"github.com/Jose-11-2001/Mechanic-sub000/internal/catalog"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/config"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/handler"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/middleware"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/model"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/payment"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/repository"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/service"
	"github.com/Jose-11-2001/Mechanic-sub000/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Stores groups every collection store behind one composition-root value so
// main can share them with the worker pool.
type Stores struct {
	Products map[model.Category]*catalog.Store[*model.Product]
	Cars     *catalog.Store[*model.Car]
	Services *catalog.Store[*model.ServiceOffer]
	Orders   *catalog.Store[*model.Order]
	Users    *catalog.Store[*model.User]
}

// NewStores binds every category to the shared repository with its seed data.
func NewStores(kv repository.KV) *Stores {
	products := map[model.Category]*catalog.Store[*model.Product]{
		model.CategoryTyres:     catalog.NewStore(kv, model.CategoryTyres, catalog.DefaultTyres),
		model.CategoryTubes:     catalog.NewStore(kv, model.CategoryTubes, catalog.DefaultTubes),
		model.CategoryBatteries: catalog.NewStore(kv, model.CategoryBatteries, catalog.DefaultBatteries),
		model.CategoryOilChange: catalog.NewStore(kv, model.CategoryOilChange, catalog.DefaultOilChange),
	}
	return &Stores{
		Products: products,
		Cars:     catalog.NewStore(kv, model.CategoryCars, catalog.DefaultCars),
		Services: catalog.NewStore(kv, model.CategoryEngineer, catalog.DefaultEngineerServices),
		Orders:   catalog.NewStore[*model.Order](kv, model.CategoryOrders, nil),
		Users:    catalog.NewStore(kv, model.CategoryUsers, catalog.DefaultUsers),
	}
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← KV/Redis
func New(cfg *config.Config, kv repository.KV, rdb *redis.Client, stores *Stores, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	gateway := payment.NewGateway(cfg)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(stores.Users, cfg)
	userSvc := service.NewUserService(stores.Users)
	orderSvc := service.NewOrderService(stores.Orders)
	purchaseSvc := service.NewPurchaseService(stores.Products, stores.Cars, stores.Services, stores.Orders, gateway, dispatcher)

	carSvc := service.NewCatalogService(stores.Cars, func() *model.Car { return &model.Car{} })
	serviceSvc := service.NewCatalogService(stores.Services, func() *model.ServiceOffer { return &model.ServiceOffer{} })
	productSvcs := make(map[model.Category]*service.CatalogService[*model.Product], len(stores.Products))
	for cat, st := range stores.Products {
		productSvcs[cat] = service.NewCatalogService(st, func() *model.Product { return &model.Product{} })
	}

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(userSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)
	purchaseH := handler.NewPurchaseHandler(purchaseSvc)
	priceH := handler.NewPriceCheckHandler(stores.Products, stores.Cars, stores.Services, rdb)
	carsH := handler.NewCatalogHandler(carSvc)
	servicesH := handler.NewCatalogHandler(serviceSvc)
	productHs := make(map[model.Category]*handler.CatalogHandler[*model.Product], len(productSvcs))
	for cat, svc := range productSvcs {
		productHs[cat] = handler.NewCatalogHandler(svc)
	}

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(kv, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Storefront reads and checkout — no auth required
	for cat, h := range productHs {
		grp := r.Group("/v1/" + string(cat))
		grp.GET("", h.List)
		grp.GET("/:id", h.Get)
	}
	r.GET("/v1/cars", carsH.List)
	r.GET("/v1/cars/:id", carsH.Get)
	r.GET("/v1/engineer", servicesH.List)
	r.GET("/v1/engineer/:id", servicesH.Get)
	r.GET("/v1/price/:category/:id", priceH.GetPrice)
	r.POST("/v1/purchase", purchaseH.Checkout)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog writes — admin and staff
		catalogWrite := middleware.RequireRole(model.RoleAdmin, model.RoleStaff)
		for cat, h := range productHs {
			grp := v1.Group("/"+string(cat), catalogWrite)
			grp.POST("", h.Create)
			grp.PUT("/:id", h.Update)
			grp.DELETE("/:id", h.Delete)
		}
		cars := v1.Group("/cars", catalogWrite)
		{
			cars.POST("", carsH.Create)
			cars.PUT("/:id", carsH.Update)
			cars.DELETE("/:id", carsH.Delete)
		}
		engineer := v1.Group("/engineer", catalogWrite)
		{
			engineer.POST("", servicesH.Create)
			engineer.PUT("/:id", servicesH.Update)
			engineer.DELETE("/:id", servicesH.Delete)
		}

		// Orders — admin and staff manage the pipeline
		orders := v1.Group("/orders", middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
		{
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.PATCH("/:id/status", ordersH.UpdateStatus)
		}

		// User directory — admin only
		usersGrp := v1.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			usersGrp.GET("", usersH.List)
			usersGrp.POST("", usersH.Create)
			usersGrp.PUT("/:id", usersH.Update)
			usersGrp.DELETE("/:id", usersH.Delete)
			usersGrp.PATCH("/:id/status", usersH.ToggleStatus)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
