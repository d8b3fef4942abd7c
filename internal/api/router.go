package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resolvia/dispute-portal/internal/api/handler"
	"github.com/resolvia/dispute-portal/internal/api/middleware"
	"github.com/resolvia/dispute-portal/internal/core/domain"
	"github.com/resolvia/dispute-portal/internal/core/ports"
	"github.com/resolvia/dispute-portal/internal/core/service"
	"github.com/resolvia/dispute-portal/internal/infrastructure/config"
	mongodb "github.com/resolvia/dispute-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/resolvia/dispute-portal/internal/infrastructure/db/redis"
	"github.com/resolvia/dispute-portal/internal/pkg/password"
)

const (
	signInPath    = "/auth/signin"
	dashboardPath = "/dashboard"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// sessions is the configured persistence strategy (Redis records or signed
// JWTs); everything downstream of it is strategy-agnostic.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, sessions ports.SessionStore, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher)
	authHandler := handler.NewAuthHandler(
		authService,
		sessions,
		cfg.Session.Strategy,
		cfg.Session.MaxAge,
		cfg.Env == "production",
	)

	rulingRepo := mongodb.NewRulingRepository(db)
	rulingService := service.NewRulingService(rulingRepo)
	rulingHandler := handler.NewRulingHandler(rulingService, redisdb.NewRulingCache(rdb), log)

	dashboardHandler := handler.NewDashboardHandler()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/signin", authHandler.SignIn)
	e.POST("/auth/signout", authHandler.SignOut, middleware.RequireSession(sessions))
	e.GET("/auth/me", authHandler.Me, middleware.RequireSession(sessions))

	// --- Public rulings directory ---
	e.GET("/rulings", rulingHandler.List)
	e.GET("/rulings/:order_number", rulingHandler.Get)

	// --- Protected areas behind the access-control gate ---
	gate := middleware.Gate(sessions, middleware.GateConfig{
		SignInPath:    signInPath,
		DashboardPath: dashboardPath,
	})

	dashboard := e.Group(dashboardPath, gate)
	// The gate redirects the bare /dashboard entry point before any handler
	// runs; the route exists so the group matches the path.
	dashboard.GET("", dashboardHandler.Cases)
	for _, role := range domain.Roles {
		dashboard.GET("/"+string(role), dashboardHandler.Show(role), middleware.RBAC(role))
	}

	cases := e.Group("/cases", gate)
	cases.GET("", dashboardHandler.Cases)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
