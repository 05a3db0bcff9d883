package router

import (
	"github.com/JhonatanMorais-py/meupdv/internal/config"
	"github.com/JhonatanMorais-py/meupdv/internal/handler"
	"github.com/JhonatanMorais-py/meupdv/internal/middleware"
	"github.com/JhonatanMorais-py/meupdv/internal/repository"
	"github.com/JhonatanMorais-py/meupdv/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
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

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	saleRepo := repository.NewSaleRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	productSvc := service.NewProductService(productRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	saleSvc := service.NewSaleService(saleRepo)
	dashboardSvc := service.NewDashboardService(productRepo, saleRepo, cfg.LowStockThreshold)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	salesH := handler.NewSalesHandler(saleSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))
	r.POST("/v1/auth/login", middleware.LoginRateLimiter(), authH.Login)

	// Protected
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		v1.GET("/dashboard/summary", dashboardH.Summary)

		v1.GET("/categories", productsH.Categories)
		v1.GET("/suppliers", suppliersH.List)

		products := v1.Group("/products")
		{
			products.POST("", productsH.Create)
			products.GET("", productsH.List)
			products.POST("/preview", productsH.PreviewMargin)
			products.GET("/barcode/:code", productsH.ValidateBarcode)
			products.GET("/:id", productsH.GetByID)
			products.GET("/:id/image", productsH.Image)
		}

		v1.POST("/sales", salesH.Finalize)
	}

	return r
}
