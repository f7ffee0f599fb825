// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"compssa/config"
	custommiddleware "compssa/internal/delivery/http/middleware"
	"compssa/internal/delivery/http/router/handler"
	"compssa/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	Config           *config.Config
	AuthHandler      *handler.AuthHandler
	AccountHandler   *handler.AccountHandler
	StudentHandler   *handler.StudentHandler
	PaymentHandler   *handler.PaymentHandler
	DashboardHandler *handler.DashboardHandler
	AuthMiddleware   *custommiddleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg              *config.Config
	authHandler      *handler.AuthHandler
	accountHandler   *handler.AccountHandler
	studentHandler   *handler.StudentHandler
	paymentHandler   *handler.PaymentHandler
	dashboardHandler *handler.DashboardHandler
	authMiddleware   *custommiddleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:              params.Config,
		authHandler:      params.AuthHandler,
		accountHandler:   params.AccountHandler,
		studentHandler:   params.StudentHandler,
		paymentHandler:   params.PaymentHandler,
		dashboardHandler: params.DashboardHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login, r.loginRateLimiter()...)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// Account administration, admin only
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	accountGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.PATCH("/:id/active", r.accountHandler.SetActive)
	}

	// Student and payment routes, any authenticated staff member
	studentGroup := e.Group("/students")
	studentGroup.Use(r.authMiddleware.Authenticate)
	{
		studentGroup.POST("", r.studentHandler.Register)
		studentGroup.GET("", r.studentHandler.List)
		studentGroup.GET("/:id", r.studentHandler.Get)
		studentGroup.PUT("/:id", r.studentHandler.Update)
		studentGroup.DELETE("/:id", r.studentHandler.Delete, r.authMiddleware.RequireRole(entity.RoleAdmin))
		studentGroup.POST("/:id/payments", r.paymentHandler.Record)
		studentGroup.GET("/:id/payments", r.paymentHandler.ListByStudent)
	}

	paymentGroup := e.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.GET("/recent", r.paymentHandler.ListRecent)
		paymentGroup.GET("/:id/receipt.png", r.paymentHandler.ReceiptQR)
	}

	// Dashboard
	dashboardGroup := e.Group("/dashboard")
	dashboardGroup.Use(r.authMiddleware.Authenticate)
	{
		dashboardGroup.GET("/summary", r.dashboardHandler.Summary)
	}
}

// loginRateLimiter throttles login attempts per client IP.
func (r *router) loginRateLimiter() []echo.MiddlewareFunc {
	if r.cfg == nil || r.cfg.RateLimit == nil || !r.cfg.RateLimit.Enabled {
		return nil
	}

	limit := rate.Limit(r.cfg.RateLimit.LoginPerSecond)
	if limit <= 0 {
		limit = rate.Limit(1)
	}
	burst := r.cfg.RateLimit.Burst
	if burst < 1 {
		burst = 5
	}

	return []echo.MiddlewareFunc{
		echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{Rate: limit, Burst: burst},
		)),
	}
}
