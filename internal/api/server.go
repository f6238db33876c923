// Package api exposes the game engine over HTTP: one state-changing
// verb (advance), a read-only hint side-channel, and the mastery list.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/game"
	"github.com/AdityaPandey-Pravya/Pravya-demo/internal/question"
)

// Server holds the handler dependencies.
type Server struct {
	engine *game.Engine
	repo   question.Repo
}

// New creates a Server around an engine and its question repository.
func New(engine *game.Engine, repo question.Repo) *Server {
	return &Server{engine: engine, repo: repo}
}

// Router assembles the chi router with the standard middleware stack.
func (s *Server) Router(allowedOrigins []string, timeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", s.handleHealth)
	r.Get("/masteries", s.handleMasteries)
	r.Post("/advance", s.handleAdvance)
	r.Post("/hint", s.handleHint)

	return r
}
