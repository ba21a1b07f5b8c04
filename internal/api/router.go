package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/primekart/storefront-api/internal/api/handler"
	"github.com/primekart/storefront-api/internal/api/middleware"
	"github.com/primekart/storefront-api/internal/core/ports"
	"github.com/primekart/storefront-api/internal/core/service"
	mongodb "github.com/primekart/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/primekart/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; token revocation is then disabled and tokens remain valid
// until natural expiry.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("primekart"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	var revoker ports.TokenRevoker
	if rdb != nil {
		revoker = redisdb.NewRevocationStore(rdb)
	}

	tokenService := service.NewTokenService(jwtSecret, 0)
	authService := service.NewAuthService(userRepo, tokenService, revoker, log)
	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, userRepo, productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	authMW := middleware.Auth(tokenService, revoker)
	adminMW := middleware.RequireAdmin()

	// --- Public routes ---
	e.POST("/api/users/register", authHandler.Register)
	e.POST("/api/users/login", authHandler.Login)
	e.GET("/api/products", productHandler.List)
	e.GET("/api/products/:id", productHandler.Get)

	// --- Authenticated routes ---
	e.POST("/api/users/logout", authHandler.Logout, authMW)
	e.GET("/api/users/me", authHandler.Me, authMW)
	e.PUT("/api/users/:id", authHandler.UpdateProfile, authMW)
	e.POST("/api/orders", orderHandler.Place, authMW)
	e.GET("/api/orders/:email", orderHandler.ListForCustomer, authMW)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authMW, adminMW)
	admin.POST("/products", productHandler.Create)
	admin.DELETE("/products/:id", productHandler.Delete)
	admin.GET("/orders", orderHandler.ListAll)
	admin.PUT("/orders/:id", orderHandler.UpdateStatus)
	admin.GET("/summary", orderHandler.Summary)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
