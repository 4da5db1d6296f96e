package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"gorm.io/gorm"

	"github.com/bytetrack/backend/config"
	"github.com/bytetrack/backend/internal/api"
	"github.com/bytetrack/backend/internal/database"
	"github.com/bytetrack/backend/internal/router"
)

// Server represents the HTTP server
type Server struct {
	cfg  *config.Config
	db   *gorm.DB
	http *http.Server
}

// New assembles the database, Redis and S3 clients and builds the HTTP
// server around them. Redis and S3 are optional; the server starts
// without them and the dependent features degrade.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}

	deps := api.Deps{
		DB:  db,
		Cfg: cfg,
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
	} else {
		deps.Redis = redisClient
	}

	s3Cfg, err := config.NewS3Config(context.Background())
	if err != nil {
		log.Printf("S3 unavailable, continuing without profile picture uploads: %v", err)
	} else {
		deps.S3 = s3Cfg
	}

	engine := router.SetupRouter(deps)

	return &Server{
		cfg: cfg,
		db:  db,
		http: &http.Server{
			Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}, nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
