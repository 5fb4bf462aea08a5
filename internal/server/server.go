package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolio-api/internal/api/handlers"
	"portfolio-api/internal/api/middleware"
	"portfolio-api/internal/config"
	"portfolio-api/internal/logging"
	"portfolio-api/internal/mail"
	"portfolio-api/internal/ratelimit"
	"portfolio-api/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	store  *ratelimit.MemoryStore
	http   *http.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	// Always add recovery middleware for panic handling
	router.Use(gin.Recovery())

	return &Server{
		router: router,
		cfg:    cfg,
		store:  ratelimit.NewMemoryStore(),
	}
}

// Store exposes the submission ledger so the sweep task can run over it
func (s *Server) Store() *ratelimit.MemoryStore {
	return s.store
}

// Init wires middleware, handlers and routes
func (s *Server) Init() {
	sender := mail.NewResendSender(s.cfg.ResendAPIKey)
	contactService := service.NewContactService(s.store, sender, s.cfg.ContactFrom, s.cfg.ContactTo)

	contactHandler := handlers.NewContactHandler(contactService)
	portfolioHandler := handlers.NewPortfolioHandler()
	healthHandler := handlers.NewHealthHandler()

	// Global middleware
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.CORS(s.cfg.Environment, s.cfg.AllowedOrigins))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   s.cfg.RateLimitRPS,
		Burst: s.cfg.RateLimitBurst,
	}))

	// Health check endpoint - outside the versioned API
	s.router.GET("/health", healthHandler.Check)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/contact/submit", contactHandler.Submit)

		portfolio := v1.Group("/portfolio")
		{
			portfolio.GET("/projects", portfolioHandler.ListProjects)
			portfolio.GET("/skills", portfolioHandler.ListSkills)
			portfolio.GET("/experience", portfolioHandler.ListExperience)
		}
	}
}

// Start runs the server until the context is cancelled, then shuts
// down gracefully
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetLogger()

	s.http = &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening on port %s", s.cfg.Port)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
