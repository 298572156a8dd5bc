package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Sardtok/kingsheep-ladder/internal/service"
	"github.com/Sardtok/kingsheep-ladder/internal/web"
	"github.com/gorilla/mux"
)

// Server represents the ladder HTTP server.
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates the HTTP server: JSON API under /api/v1, HTML pages at
// the root.
func NewServer(port string, ladder *service.LadderService, renderer *web.Renderer) *Server {
	handler := NewHandler(ladder, renderer)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(RequestIDMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/ladder", handler.GetLadder).Methods("GET")
	api.HandleFunc("/teams/{team}", handler.GetTeamHistory).Methods("GET")

	// HTML pages and client-side assets
	router.PathPrefix("/static/").Handler(web.Static()).Methods("GET")
	router.HandleFunc("/teams/{team}", handler.TeamPage).Methods("GET")
	router.HandleFunc("/", handler.LadderPage).Methods("GET")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Handler returns the route handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
