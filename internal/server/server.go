package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/autoaidc6/dalilscan-V2/config"
	"github.com/autoaidc6/dalilscan-V2/internal/api"
	"github.com/autoaidc6/dalilscan-V2/internal/middleware"
	"github.com/autoaidc6/dalilscan-V2/internal/service"
)

// Server wires the services together and owns the HTTP lifecycle.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New assembles the full service graph and router.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*Server, error) {
	sessions := service.NewSessionStore(rdb)
	leaderboard := service.NewLeaderboardService(rdb)
	profiles := service.NewProfileService(sessions)
	gamification := service.NewGamificationService()
	logs := service.NewLogService(gamification, profiles, sessions, leaderboard)
	challenges := service.NewChallengeService(logs)
	auth := service.NewAuthService(db, cfg.JWTSecret, profiles, logs, sessions)

	vision, err := service.NewVisionService()
	if err != nil {
		return nil, err
	}

	// Image storage is optional: without S3 credentials meals are still
	// logged, just without a stored photo reference.
	var images *service.ImageService
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, meal photos will not be stored: %v", err)
	} else {
		images = service.NewImageService(s3Cfg)
	}

	authHandler := api.NewAuthHandler(auth)
	logHandler := api.NewLogHandler(logs)
	profileHandler := api.NewProfileHandler(profiles, sessions)
	gamificationHandler := api.NewGamificationHandler(profiles, challenges, leaderboard)
	scanHandler := api.NewScanHandler(vision, images, logs)

	router := gin.Default()
	router.Use(middleware.CORS())

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(auth))
	{
		protected.POST("/auth/logout", authHandler.Logout)
		logHandler.RegisterRoutes(protected)
		profileHandler.RegisterRoutes(protected)
		gamificationHandler.RegisterRoutes(protected)
		scanHandler.RegisterRoutes(protected)
	}

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
	}, nil
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
