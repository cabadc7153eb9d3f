package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pratheepg2026-commits/crm-v2/internal/handler"
	"github.com/pratheepg2026-commits/crm-v2/internal/middleware"
	"github.com/pratheepg2026-commits/crm-v2/internal/repository"
	"github.com/pratheepg2026-commits/crm-v2/internal/service"
	"github.com/pratheepg2026-commits/crm-v2/pkg/jwtutil"
	"github.com/pratheepg2026-commits/crm-v2/pkg/logger"
	"github.com/pratheepg2026-commits/crm-v2/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	DB          *gorm.DB
	Tokens      *jwtutil.JWTUtil
	Auth        *service.AuthService
	Analytics   *service.AnalyticsService
	BodyLimit   string
	CORSOrigins []string
}

// New builds the echo instance with middleware and every route.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestIDMiddleware)
	e.Use(logger.Middleware())
	e.Use(prometheus.MetricsMiddleware())
	// Recover stays inside logging and metrics.
	e.Use(echomiddleware.Recover())
	if len(d.CORSOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins: d.CORSOrigins,
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, middleware.RequestIDHeader},
		}))
	}
	if d.BodyLimit != "" {
		e.Use(echomiddleware.BodyLimit(d.BodyLimit))
	}

	users := repository.NewUserRepository(d.DB)
	authHandler := &handler.AuthHandler{Auth: d.Auth, Users: users}
	productHandler := &handler.ProductHandler{Products: repository.NewProductRepository(d.DB)}
	warehouseHandler := &handler.WarehouseHandler{Warehouses: repository.NewWarehouseRepository(d.DB)}
	inventoryHandler := &handler.InventoryHandler{Inventory: repository.NewInventoryRepository(d.DB)}
	saleHandler := &handler.SaleHandler{Sales: repository.NewSaleRepository(d.DB)}
	expenseHandler := &handler.ExpenseHandler{Expenses: repository.NewExpenseRepository(d.DB)}
	subscriptionHandler := &handler.SubscriptionHandler{Subscriptions: repository.NewSubscriptionRepository(d.DB)}
	customerHandler := &handler.WholesaleCustomerHandler{Customers: repository.NewWholesaleCustomerRepository(d.DB)}
	analyticsHandler := &handler.AnalyticsHandler{Analytics: d.Analytics}
	healthHandler := &handler.HealthHandler{DB: d.DB}

	// Public routes
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler()))

	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Everything below requires a bearer token
	requireAuth := middleware.AuthMiddleware(d.Tokens)

	account := e.Group("/auth", requireAuth)
	account.GET("/profile", authHandler.GetProfile)
	account.PATCH("/profile", authHandler.UpdateProfile)
	account.POST("/change-password", authHandler.ChangePassword)
	account.DELETE("/account", authHandler.DeleteAccount)

	products := e.Group("/products", requireAuth)
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	warehouses := e.Group("/warehouses", requireAuth)
	warehouses.GET("", warehouseHandler.List)
	warehouses.POST("", warehouseHandler.Create)
	warehouses.PUT("/:id", warehouseHandler.Update)
	warehouses.DELETE("/:id", warehouseHandler.Delete)

	inventory := e.Group("/inventory", requireAuth)
	inventory.GET("", inventoryHandler.List)
	inventory.GET("/warehouse/:id", inventoryHandler.ListByWarehouse)
	inventory.POST("", inventoryHandler.Create)
	inventory.PUT("/:id", inventoryHandler.Update)
	inventory.DELETE("/:id", inventoryHandler.Delete)

	sales := e.Group("/sales", requireAuth)
	sales.GET("", saleHandler.List)
	sales.POST("", saleHandler.Create)
	sales.PUT("/:id", saleHandler.Update)
	sales.DELETE("/:id", saleHandler.Delete)

	expenses := e.Group("/expenses", requireAuth)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.PUT("/:id", expenseHandler.Update)
	expenses.DELETE("/:id", expenseHandler.Delete)

	subscriptions := e.Group("/subscriptions", requireAuth)
	subscriptions.GET("", subscriptionHandler.List)
	subscriptions.POST("", subscriptionHandler.Create)
	subscriptions.PUT("/:id", subscriptionHandler.Update)
	subscriptions.DELETE("/:id", subscriptionHandler.Delete)

	customers := e.Group("/wholesale-customers", requireAuth)
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.PUT("/:id", customerHandler.Update)
	customers.DELETE("/:id", customerHandler.Delete)

	analytics := e.Group("/analytics", requireAuth)
	analytics.GET("/dashboard", analyticsHandler.Dashboard)

	return e
}

// errorHandler renders every error as {"error": message}. Only HTTP errors
// below 500 keep their message; everything else becomes a generic 500.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch {
		case errors.Is(err, echo.ErrNotFound):
			message = handler.MsgNotFound
		case status < http.StatusInternalServerError:
			message = fmt.Sprint(he.Message)
		case status == http.StatusServiceUnavailable:
			message = http.StatusText(status)
		}
	}
	if status >= http.StatusInternalServerError {
		logger.FromContext(c).Error("Unhandled error",
			zap.Error(err),
			zap.String("path", c.Request().URL.Path))
		if status != http.StatusServiceUnavailable {
			status = http.StatusInternalServerError
		}
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, echo.Map{"error": message})
	}
	if writeErr != nil {
		logger.FromContext(c).Error("Failed to write error response", zap.Error(writeErr))
	}
}
