package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/osidou/osidou-web/internal/chat"
	"github.com/osidou/osidou-web/internal/config"
	"github.com/osidou/osidou-web/internal/database"
	"github.com/osidou/osidou-web/internal/handler"
	"github.com/osidou/osidou-web/internal/middleware"
	"github.com/osidou/osidou-web/internal/migration"
	"github.com/osidou/osidou-web/internal/repository"
	"github.com/osidou/osidou-web/internal/routes"
	"github.com/osidou/osidou-web/internal/service"
	"github.com/osidou/osidou-web/internal/upstream"
	"github.com/osidou/osidou-web/internal/ws"
	pkgcache "github.com/osidou/osidou-web/pkg/cache"
	pkglogger "github.com/osidou/osidou-web/pkg/logger"
	pkgredis "github.com/osidou/osidou-web/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
)

// @title           osidou-web API
// @version         1.0
// @description     Browser-facing web tier of the Osidou SNS
//
// @host            localhost:8080
// @BasePath        /api

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	pkglogger.Info("Loading config from: %s", configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config.LogResolved(cfg)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Token store
	db, err := database.Open(cfg.Database, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to open token store: %v", err)
	}
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	pkglogger.Info("Token store ready (%s)", cfg.Database.Driver)

	// Redis (optional: snapshot cache, multi-instance fan-out, write rate limit)
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisClient, err = pkgredis.NewClient(pkgredis.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			pkglogger.Warn("Failed to connect to Redis: %v (continuing without Redis)", err)
			redisClient = nil
		} else {
			pkglogger.Info("Connected to Redis")
		}
	}
	cacheService := pkgcache.NewService(redisClient)

	wsHub := ws.NewHub(redisClient)
	go wsHub.Run()

	// Upstream client; the token is looked up per call from the session store
	sessionService := service.NewSessionService(repository.NewSessionRepository(db))
	api := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, sessionService)

	profileService := service.NewProfileService(api)
	moodService := service.NewMoodService(api)
	communityService := service.NewCommunityService(api)
	friendService := service.NewFriendService(api)

	board := chat.NewBoard(api, cacheService, wsHub)
	poller := chat.NewPoller(board, cfg.Chat.PollInterval)

	router := gin.New()
	router.Use(gin.Recovery())

	allowOrigins := splitAndTrim(cfg.CORS.AllowOrigins, ",")
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.InputSanitizer())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Session(cfg.Session))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  "osidou-web",
			"upstream": cfg.Upstream.BaseURL,
			"redis":    cacheService.IsAvailable(),
			"time":     time.Now().Unix(),
		})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.Setup(
		router,
		handler.NewAppHandler(profileService),
		handler.NewSessionHandler(sessionService),
		handler.NewProfileHandler(profileService),
		handler.NewMoodHandler(moodService),
		handler.NewCommunityHandler(communityService, board),
		handler.NewFriendHandler(friendService),
		handler.NewWSHandler(wsHub, board, poller, cfg.CORS.AllowOrigins),
		redisClient,
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "NOT_FOUND", "message": "not found"}})
	})

	stopGauge := make(chan struct{})
	go reportDBStats(db, stopGauge)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		pkglogger.Info("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	pkglogger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		pkglogger.Error("Server shutdown: %v", err)
	}
	close(stopGauge)
	wsHub.Stop()
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// reportDBStats exports the token store's open connection count
func reportDBStats(db *gorm.DB, stop <-chan struct{}) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if sqlDB, err := db.DB(); err == nil {
				middleware.SetDBConnectionsActive(float64(sqlDB.Stats().OpenConnections))
			}
		case <-stop:
			return
		}
	}
}

// splitAndTrim splits a string by delimiter and trims spaces
func splitAndTrim(s, delimiter string) []string {
	parts := []string{}
	for _, part := range strings.Split(s, delimiter) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
