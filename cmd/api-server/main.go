package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamehub/internal/api/handler"
	"gamehub/internal/api/middleware"
	"gamehub/internal/api/repository"
	"gamehub/internal/api/service"
	"gamehub/internal/cache"
	"gamehub/internal/config"
	"gamehub/internal/database"
	"gamehub/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger.InitLogger(cfg)
	logger.Log.WithField("env", cfg.GoEnv).Info("starting api-server")

	db, err := database.Connect(cfg, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("could not connect to database")
	}
	if err := database.Migrate(db); err != nil {
		logger.Log.WithError(err).Fatal("could not run migrations")
	}

	// Redis is optional; rankings fall back to computing on every request.
	if err := cache.InitRedis(cfg); err != nil {
		logger.Log.WithError(err).Warn("redis unavailable, response caching disabled")
	} else {
		defer cache.CloseRedis()
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepo(db)
	platformRepo := repository.NewPlatformRepo(db)
	ratingRepo := repository.NewRatingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := platformRepo.EnsureDefaults(seedCtx); err != nil {
		cancel()
		logger.Log.WithError(err).Fatal("could not seed platforms")
	}
	cancel()

	// Services
	authServ := service.NewAuthService(userRepo, cfg)
	libraryServ := service.NewLibraryService(libraryRepo, gameRepo)
	ratingServ := service.NewRatingService(ratingRepo, gameRepo, libraryServ)
	reviewServ := service.NewReviewService(reviewRepo, gameRepo, libraryServ)
	gameServ := service.NewGameService(gameRepo, platformRepo, ratingRepo, reviewRepo)
	rankingServ := service.NewRankingService(gameRepo, ratingRepo)
	userServ := service.NewUserService(userRepo, reviewServ, ratingServ, libraryServ)

	// Handlers
	authHandler := handler.NewAuthHandler(authServ, cfg)
	gameHandler := handler.NewGameHandler(gameServ)
	ratingHandler := handler.NewRatingHandler(ratingServ)
	reviewHandler := handler.NewReviewHandler(reviewServ)
	libraryHandler := handler.NewLibraryHandler(libraryServ)
	rankingHandler := handler.NewRankingHandler(rankingServ, cfg.CacheTTL)
	userHandler := handler.NewUserHandler(userServ)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	middleware.InitMetrics()
	r.Use(middleware.PrometheusMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", middleware.MetricsHandler())

	requireAuth := middleware.AuthMiddleware(authServ)

	v1 := r.Group("/api/v1")

	authHandler.RegisterRoutes(v1.Group("/auth"))

	games := v1.Group("/games")
	gamesAuthed := v1.Group("/games")
	gamesAuthed.Use(requireAuth)
	gameHandler.RegisterRoutes(games, gamesAuthed)
	ratingHandler.RegisterRoutes(games, gamesAuthed)

	reviews := v1.Group("/reviews")
	reviewsAuthed := v1.Group("/reviews")
	reviewsAuthed.Use(requireAuth)
	reviewHandler.RegisterRoutes(reviews, gamesAuthed, reviewsAuthed)

	library := v1.Group("/library")
	library.Use(requireAuth)
	libraryHandler.RegisterRoutes(library)

	rankingHandler.RegisterRoutes(v1.Group("/rankings"))
	userHandler.RegisterRoutes(v1.Group("/users"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Log.WithField("addr", addr).Info("server listening")
	if err := r.Run(addr); err != nil {
		logger.Log.WithError(err).Fatal("server stopped")
	}
}
