package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/numwords/internal/numwords"
	"github.com/numwords/internal/web/handlers"
	"github.com/numwords/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *Config
	codec      *numwords.Codec
	metrics    *Metrics
	httpServer *http.Server
	router     *mux.Router
	handler    http.Handler
}

// NewServer creates a new web server instance over codec.
func NewServer(config *Config, codec *numwords.Codec) (*Server, error) {
	if codec == nil {
		return nil, fmt.Errorf("web server needs a codec")
	}
	if config.RateLimit.RequestsPerSecond <= 0 || config.RateLimit.Burst <= 0 {
		return nil, fmt.Errorf("invalid rate limit %d/s burst %d",
			config.RateLimit.RequestsPerSecond, config.RateLimit.Burst)
	}

	server := &Server{
		config:  config,
		codec:   codec,
		metrics: NewMetrics(),
	}

	if err := server.setupRoutes(); err != nil {
		return nil, err
	}

	server.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port),
		Handler:      server.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() error {
	s.router = mux.NewRouter()

	// Convert config for handlers (to avoid import cycle)
	handlerConfig := &handlers.Config{
		Precision: s.config.Precision,
		Debug:     s.config.Debug,
	}
	convert := &handlers.ConvertHandler{
		Codec:    s.codec,
		Config:   handlerConfig,
		Recorder: s.metrics,
	}

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/integers/{value:-?[0-9]+}", convert.FormatInteger).Methods(http.MethodGet)
	api.HandleFunc("/integers/parse", convert.ParseInteger).Methods(http.MethodPost)
	api.HandleFunc("/decimals/format", convert.FormatDecimal).Methods(http.MethodPost)
	api.HandleFunc("/decimals/parse", convert.ParseDecimal).Methods(http.MethodPost)
	api.HandleFunc("/lexicon", convert.Lexicon).Methods(http.MethodGet)

	if s.config.Features.CorrectEnabled {
		api.HandleFunc("/correct", convert.Correct).Methods(http.MethodPost)
	}

	s.router.HandleFunc("/health", convert.Health).Methods(http.MethodGet)
	if s.config.Features.MetricsEnabled {
		s.router.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}

	limiter, err := middleware.NewRateLimiter(
		s.config.RateLimit.RequestsPerSecond,
		s.config.RateLimit.Burst,
		s.config.RateLimit.TrustedProxies...,
	)
	if err != nil {
		return fmt.Errorf("configuring rate limit: %w", err)
	}
	s.router.Use(middleware.RequestLogging(s.metrics, routeTemplate))
	s.router.Use(limiter.Middleware())

	// CORS answers preflight requests before route matching.
	s.handler = middleware.RequestID()(middleware.CORS()(s.router))
	return nil
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start starts the web server
func (s *Server) Start() error {
	// Setup graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on http://%s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	log.Println("Server stopped")
	return nil
}
