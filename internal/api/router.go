package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/usermgmt/user-management-api/docs"
	"github.com/usermgmt/user-management-api/internal/api/handler"
	"github.com/usermgmt/user-management-api/internal/api/middleware"
	"github.com/usermgmt/user-management-api/internal/core/service"
	"github.com/usermgmt/user-management-api/internal/infrastructure/config"
	mongodb "github.com/usermgmt/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/usermgmt/user-management-api/internal/infrastructure/db/redis"
	"github.com/usermgmt/user-management-api/internal/security"
)

const tokenTTL = 24 * time.Hour

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userCache := redisdb.NewUserCache(rdb)
	tokens := security.NewTokenManager(cfg.JWTSecret, tokenTTL)

	userService := service.NewUserService(userRepo, userCache, log)
	authService := service.NewAuthService(userRepo, tokens, log)

	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(authService)
	infoHandler := handler.NewInfoHandler()
	healthHandler := handler.NewHealthHandler(db, rdb)

	auth := middleware.Auth(tokens)

	// --- Public routes ---
	e.GET("/", infoHandler.Info)
	e.POST("/api/login", authHandler.Login)
	e.POST("/api/users", userHandler.Create)

	// --- Protected routes ---
	e.GET("/api/users", userHandler.List, auth)
	e.GET("/api/user/:id", userHandler.Get, auth)
	e.PUT("/api/user/:id", userHandler.Update, auth)
	e.DELETE("/api/user/:id", userHandler.Delete, auth)
	e.GET("/api/search", userHandler.Search, auth)

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
