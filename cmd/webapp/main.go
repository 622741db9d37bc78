package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"

	authController "lane_wars/internal/auth/controller"
	authRepository "lane_wars/internal/auth/repository"
	authUsecase "lane_wars/internal/auth/usecase"

	minionController "lane_wars/internal/minion/controller"
	minionRepository "lane_wars/internal/minion/repository"
	minionUsecase "lane_wars/internal/minion/usecase"

	waveController "lane_wars/internal/wave/controller"
	waveRepository "lane_wars/internal/wave/repository"
	waveUsecase "lane_wars/internal/wave/usecase"

	"lane_wars/domain"
	"lane_wars/internal/service/cache"
	"lane_wars/internal/service/config"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
	"lane_wars/internal/service/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLoggers(cfg.AccessLogPath, cfg.DBLogPath); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		if err := logger.SyncLoggers(); err != nil {
			log.Printf("Failed to sync loggers: %v", err)
		}
	}()

	db, err := middleware.DbConnect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	jwtToken, err := middleware.NewJwtToken(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create JWT token (is JWT_SECRET set?): %v", err)
	}

	resultCache := newResultCache(cfg)

	authRepository := authRepository.NewAuthRepository(db)
	authUseCase := authUsecase.NewAuthUsecase(authRepository)
	authHandler := authController.NewAuthHandler(authUseCase, jwtToken, cfg.TokenTTL)

	minionRepository := minionRepository.NewMinionRepository(db)
	minionUseCase := minionUsecase.NewMinionUsecase(minionRepository)
	minionHandler := minionController.NewMinionHandler(minionUseCase)

	waveRepository := waveRepository.NewWaveRepository(db)
	waveUseCase := waveUsecase.NewWaveUsecase(waveRepository, minionRepository, resultCache)
	waveHandler := waveController.NewWaveHandler(waveUseCase)

	mainRouter := router.SetUpRoutes(cfg, authHandler, minionHandler, waveHandler, jwtToken)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.TimeoutMiddleware(cfg.RequestTimeout))

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           middleware.EnableCORS(cfg.FrontendURL, mainRouter),
		ReadHeaderTimeout: 5 * time.Second,
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		color.Yellow("Shutting down HTTP server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			color.Red("Error on shutdown: %s", err)
		}
	}()

	color.Green("Starting HTTP server on address %s", cfg.ServerAddr)
	if cfg.RequireAuth {
		color.Cyan("Minion and wave routes require a bearer token")
	}
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		color.Red("Error on starting server: %s", err)
	}
}

// newResultCache uses redis when REDIS_ENDPOINT is set and reachable, otherwise
// keeps simulation results in process memory.
func newResultCache(cfg *config.Config) domain.ResultCache {
	if cfg.RedisAddr == "" {
		color.Cyan("Simulation results cached in memory")
		return cache.NewMemoryResultCache(cfg.ResultTTL)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	client, err := middleware.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		color.Red("Redis unavailable, caching simulation results in memory: %s", err)
		return cache.NewMemoryResultCache(cfg.ResultTTL)
	}
	color.Cyan("Simulation results cached in redis at %s", cfg.RedisAddr)
	return cache.NewRedisResultCache(client, cfg.ResultTTL)
}
