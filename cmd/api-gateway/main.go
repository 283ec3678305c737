package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campushq/schoolops-api/api/swagger"
	"github.com/campushq/schoolops-api/internal/handler"
	"github.com/campushq/schoolops-api/internal/middleware"
	"github.com/campushq/schoolops-api/internal/repository"
	"github.com/campushq/schoolops-api/internal/service"
	"github.com/campushq/schoolops-api/pkg/cache"
	"github.com/campushq/schoolops-api/pkg/config"
	"github.com/campushq/schoolops-api/pkg/database"
	"github.com/campushq/schoolops-api/pkg/logger"
	corsmiddleware "github.com/campushq/schoolops-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushq/schoolops-api/pkg/middleware/requestid"
)

// @title SchoolOps Console API
// @version 0.1.0
// @description Calendar and timetable backend for the school-operations console
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if redisClient, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Warn("redis unavailable, timetable cache disabled", zap.Error(err))
	} else {
		repo := repository.NewCacheRepository(redisClient, logr)
		defer repo.Close() //nolint:errcheck
		cacheRepo = repo
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Timetable.CacheTTL, logr, cfg.Timetable.CacheEnabled && cacheRepo != nil)

	validate := validator.New()

	eventRepo := repository.NewEventRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)

	authSvc := service.NewAuthService(cfg.JWT, logr)
	calendarSvc := service.NewCalendarService(eventRepo, validate, logr, cfg.Calendar)
	timetableSvc := service.NewTimetableService(timetableRepo, cacheSvc, cfg.Timetable.CacheTTL, validate, logr)

	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(authSvc))
	{
		api.GET("/calendar/events", calendarHandler.ListEvents)
		api.POST("/calendar/events", calendarHandler.CreateEvent)
		api.GET("/calendar/view", calendarHandler.View)

		api.GET("/classes/:id/timetable", timetableHandler.GetByClass)
		api.GET("/timetable/catalogue", timetableHandler.Catalogue)
		api.POST("/timetable/entries", timetableHandler.CreateEntry)
		api.PUT("/timetable/entries/:id", timetableHandler.UpdateEntry)
		api.DELETE("/timetable/entries/:id", timetableHandler.DeleteEntry)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
