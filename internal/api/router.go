package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bistroboss/ordering-system/internal/api/handler"
	"github.com/bistroboss/ordering-system/internal/api/middleware"
	"github.com/bistroboss/ordering-system/internal/core/service"
	"github.com/bistroboss/ordering-system/internal/infrastructure/config"
	mongodb "github.com/bistroboss/ordering-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bistroboss/ordering-system/internal/infrastructure/db/redis"
	"github.com/bistroboss/ordering-system/internal/infrastructure/payment"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Every repository and service is constructed here once and injected
// explicitly; nothing is reached through package globals.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo, tokenService, log)
	cartService := service.NewCartService(cartRepo, log)
	menuCache := redisdb.NewMenuCache(rdb, log)
	menuService := service.NewMenuService(menuRepo, menuCache, log)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Stripe.Timeout, log)
	checkoutService := service.NewCheckoutService(paymentRepo, cartRepo, gateway, log)
	statsService := service.NewStatsService(userRepo, menuRepo, paymentRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(tokenService, userService)
	userHandler := handler.NewUserHandler(userService)
	cartHandler := handler.NewCartHandler(cartService)
	menuHandler := handler.NewMenuHandler(menuService, reviewRepo)
	paymentHandler := handler.NewPaymentHandler(checkoutService, paymentRepo, statsService)

	// --- Guards ---
	requireAuth := middleware.Auth(tokenService)
	requireAdmin := middleware.RequireAdmin(userService)

	// --- Token issuance ---
	e.POST("/jwt", authHandler.IssueToken)
	e.POST("/auth/login", authHandler.Login)

	// --- Users ---
	e.POST("/users", userHandler.Register)
	e.GET("/users", userHandler.List, requireAuth, requireAdmin)
	e.GET("/users/admin/:email", userHandler.AdminStatus, requireAuth, middleware.RequireSelf("email"))
	e.PATCH("/users/admin/:id", userHandler.Promote, requireAuth, requireAdmin)
	e.DELETE("/users/:id", userHandler.Delete, requireAuth, requireAdmin)

	// --- Menu & reviews ---
	e.GET("/menu", menuHandler.List)
	e.GET("/menu/:id", menuHandler.Get)
	e.POST("/menu", menuHandler.Create, requireAuth, requireAdmin)
	e.PATCH("/menu/:id", menuHandler.Update)
	e.DELETE("/menu/:id", menuHandler.Delete, requireAuth, requireAdmin)
	e.GET("/reviews", menuHandler.Reviews)

	// --- Carts ---
	e.GET("/carts", cartHandler.List)
	e.POST("/carts", cartHandler.Add)
	e.DELETE("/carts/:id", cartHandler.Remove)

	// --- Checkout & reporting ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent)
	e.POST("/payments", paymentHandler.Confirm, requireAuth)
	e.GET("/payments/:email", paymentHandler.History, requireAuth, middleware.RequireSelf("email"))
	e.GET("/admin-stats", paymentHandler.AdminStats, requireAuth, requireAdmin)

	// --- Health probes & operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
