// Package v1 wires HTTP handlers, middleware, and routes for API v1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"vendia/internal/config"
	"vendia/internal/core/security"
	"vendia/internal/domain/auth"
	"vendia/internal/domain/catalogs/category"
	"vendia/internal/domain/catalogs/customer"
	"vendia/internal/domain/catalogs/product"
	"vendia/internal/domain/company"
	"vendia/internal/domain/reporting"
	"vendia/internal/domain/sales"
	"vendia/internal/infrastructure/http/v1/handlers"
	"vendia/internal/infrastructure/http/v1/middleware"
	"vendia/pkg/logger"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Config *config.Config
	Logger *logger.Logger
	Pool   *pgxpool.Pool

	JWT        middleware.TokenValidator
	MenuPolicy *security.MenuPolicy

	AuthService      *auth.Service
	CompanyService   *company.Service
	ProductService   *product.Service
	CustomerService  *customer.Service
	CategoryService  *category.Service
	SalesService     *sales.Service
	ReportingService *reporting.Service
}

// NewRouter builds the gin engine with all v1 routes mounted.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.Trace(),
		middleware.Logger(cfg.Logger),
		middleware.CORS(cfg.Config.CORS.AllowedOrigins),
		middleware.ErrorHandler(),
	)

	health := handlers.NewHealthHandler(cfg.Pool)
	health.RegisterRoutes(engine.Group("/health"))

	api := engine.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(cfg.AuthService)
	authHandler.RegisterPublicRoutes(api.Group("/auth"))

	protected := api.Group("")
	protected.Use(
		middleware.Auth(cfg.JWT),
		middleware.UserContext(),
	)

	authHandler.RegisterProtectedRoutes(protected.Group("/auth"))

	adminOnly := middleware.RequireRole(string(auth.RoleAdmin))
	reportAccess := middleware.RequireRole(string(auth.RoleAdmin), string(auth.RoleManager))

	handlers.NewProductHandler(cfg.ProductService).
		RegisterRoutes(protected.Group("/products"))
	handlers.NewCustomerHandler(cfg.CustomerService).
		RegisterRoutes(protected.Group("/customers"))
	handlers.NewCategoryHandler(cfg.CategoryService).
		RegisterRoutes(protected.Group("/categories"))
	handlers.NewSalesHandler(cfg.SalesService).
		RegisterRoutes(protected.Group("/sales"))
	reports := handlers.NewReportsHandler(cfg.ReportingService, cfg.ProductService, cfg.CustomerService)
	// The dashboard rollup is open to every role; detailed reports are not.
	protected.GET("/reports/summary", reports.Summary)
	reports.RegisterRoutes(protected.Group("/reports", reportAccess))
	handlers.NewUserHandler(cfg.AuthService).
		RegisterRoutes(protected.Group("/users", adminOnly))
	handlers.NewCompanyHandler(cfg.CompanyService).
		RegisterRoutes(protected.Group("/company"), adminOnly)

	menu := handlers.NewMenuHandler(cfg.MenuPolicy)
	protected.GET("/menu", menu.Menu)

	return engine
}
