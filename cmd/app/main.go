package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quest_admin/internal/api"
	"quest_admin/internal/middleware"
	"quest_admin/internal/model"
	"quest_admin/internal/repository"
	"quest_admin/internal/service"
	"quest_admin/pkg/auth"
	"quest_admin/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	repo, err := repository.New(cfg.Database)
	var monitor *repository.Monitor
	switch {
	case errors.Is(err, repository.ErrNotConfigured):
		zapLogger.Warn("database is not configured, serving demo data")
		monitor = repository.NewUnconfiguredMonitor()
	case err != nil:
		zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
	default:
		defer repo.Close()
		monitor = repository.NewMonitor(repo, cfg.Monitor.Interval)
	}
	if err := monitor.Start(); err != nil {
		zapLogger.Fatal("Failed to start store monitor", zap.Error(err))
	}
	defer monitor.Stop()

	allowList := model.NewAllowList(cfg.Auth.AllowList...)
	if len(allowList) == 0 {
		zapLogger.Warn("admin allow-list is empty, every credential will be denied")
	}

	privy := auth.NewPrivyClient(cfg.Privy)
	defer privy.Close()

	feed := service.NewActivityFeed(cfg.Review.FeedBuffer)
	adminService := service.NewAdminService(privy, allowList)
	reviewService := service.NewReviewService(repo, monitor,
		service.WithAtomicApproval(cfg.Review.AtomicApproval),
		service.WithActivityFeed(feed),
	)
	dashboardService := service.NewDashboardService(repo, monitor, cfg.Dashboard.RecentLimit)
	authz := middleware.NewAuthorization(adminService)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware())
	router.Use(middleware.Metrics())

	config := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		config.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPatch,
	}
	config.AllowHeaders = []string{"Authorization", "Content-Type"}
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	api.NewHealthRoutes(router, monitor)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a := router.Group("/api")
	api.NewAuthRoutes(a, adminService)

	admin := a.Group("/admin")
	api.NewQuestProofRoutes(admin, reviewService, dashboardService, authz, cfg.Auth.ProtectReads)
	api.NewStatsRoutes(admin, dashboardService, authz, cfg.Auth.ProtectReads)
	api.NewActivityRoutes(admin, feed, authz)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		zapLogger.Info("Starting server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
}
