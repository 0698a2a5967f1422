package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"staffdesk/docs"

	"staffdesk/internal/auth"
	"staffdesk/internal/cache"
	"staffdesk/internal/config"
	"staffdesk/internal/db"
	"staffdesk/internal/handler"
	"staffdesk/internal/logger"
	"staffdesk/internal/metrics"
	"staffdesk/internal/model"
	"staffdesk/internal/repository"
	"staffdesk/internal/router"
	"staffdesk/internal/service"
)

// @title Staffdesk API
// @version 1.0
// @description Employee-management API with JWT authentication and a Redis-backed employee list cache.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger.Init()
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Employee{},
	); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheStore := cache.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, log.Logger)

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	userRepo := repository.NewUserRepository(gormDB)
	employeeRepo := repository.NewEmployeeRepository(gormDB)

	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo)
	employeeService := service.NewEmployeeService(employeeRepo, cacheStore, m)

	authHandler := handler.NewAuthHandler(authService, m)
	userHandler := handler.NewUserHandler(userService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	router.Register(
		e,
		jwtService,
		m,
		registry,
		authHandler,
		userHandler,
		employeeHandler,
	)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server start")
	}
}
