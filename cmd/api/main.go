package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "salesanalytics/api/swagger" // swagger docs
	"salesanalytics/internal/analytics"
	"salesanalytics/internal/config"
	"salesanalytics/internal/database"
	"salesanalytics/internal/handler"
	"salesanalytics/internal/logger"
	"salesanalytics/internal/metrics"
	"salesanalytics/internal/middleware"
	"salesanalytics/internal/repository"
	"salesanalytics/internal/service"
	"salesanalytics/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Sales Analytics API
// @version         1.0
// @description     Filtering and aggregation over imported sales records.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg := config.Load()

	log := logger.New(logger.Config{
		Level:     cfg.LogLevel,
		Component: "api",
		JSON:      cfg.GinMode == gin.ReleaseMode,
	})
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	categories, err := analytics.LoadCategoryMapFile(cfg.CategoryMapFile)
	if err != nil {
		log.Error("failed to load category map", "file", cfg.CategoryMapFile, "error", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(cfg.DBDriver, cfg.DSN(), log)
	if err != nil {
		log.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	log.Info("connected to database", "driver", cfg.DBDriver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Set up WebSocket Hub
	wsHub := websocket.NewHub(log.WithComponent("ws").Logger)
	go wsHub.Run(ctx)

	// Set up dependencies (Repository -> Service -> Handler)
	salesRepo := repository.NewSalesRepository(db)
	importRepo := repository.NewImportRepository(db)
	txManager := repository.NewTransactionManager(db)

	salesService := service.NewSalesService(salesRepo, categories, cfg.QueryTimeout, log)
	importService := service.NewImportService(salesRepo, importRepo, txManager, wsHub, log)

	salesHandler := handler.NewSalesHandler(salesService)
	importHandler := handler.NewImportHandler(importService, cfg.UploadDir, cfg.MaxUploadBytes)

	// Set up Gin Router
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log.WithComponent("http")), middleware.Metrics())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DEGRADED", "database": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK", "wsClients": wsHub.ClientCount()})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c)
	})

	salesHandler.RegisterRoutes(router.Group(""))
	importHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
	}()

	log.Info("server listening", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
