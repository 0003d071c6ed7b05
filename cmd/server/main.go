package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-event-booking/config"
	"go-event-booking/internal/database"
	"go-event-booking/internal/handler"
	"go-event-booking/internal/middleware"
	"go-event-booking/internal/repository"
	"go-event-booking/internal/service"
	"go-event-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	eventListCacheTTL = 30 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	log := logger.WithComponent("main")

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	// repositories
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	statsRepo := repository.NewStatsRepository(pool)

	// services
	authService := service.NewAuthService(userRepo, cfg.Auth.JWTSecret)
	eventService := service.NewEventService(pool, eventRepo, bookingRepo)
	bookingService := service.NewBookingService(pool, bookingRepo, eventRepo)
	userService := service.NewUserService(userRepo, bookingRepo, statsRepo)

	// middleware
	auth := middleware.Auth(cfg.Auth.JWTSecret)
	listCache := middleware.EventListCache(rdb, eventListCacheTTL)
	invalidator := middleware.NewCacheInvalidator(rdb)
	loginLimiter := middleware.NewRateLimiter(middleware.LimiterConfig{
		RPS:     2,
		Burst:   5,
		IdleTTL: 10 * time.Minute,
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())

	handler.NewAuthHandler(authService).RegisterRoutes(router, loginLimiter.Middleware(middleware.ByClientIP))
	handler.NewEventHandler(eventService, invalidator).RegisterRoutes(router, auth, listCache)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router, auth)
	handler.NewUserHandler(userService).RegisterRoutes(router, auth)
	handler.NewRoomHandler(eventService, invalidator).RegisterRoutes(router, auth)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Info("starting server", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", zap.Error(err))
			stop <- syscall.SIGTERM
		}
	}()

	sig := <-stop
	log.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("failed to shut down server", zap.Error(err))
	}

	log.Info("server stopped")
}
