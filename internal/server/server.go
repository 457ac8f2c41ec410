// Package server exposes the progress engine over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/progress"
)

// Options configures a Server.
type Options struct {
	AllowedOrigins []string
	Localizer      achievements.Localizer
	Logger         *zap.Logger
}

// Server serves the progress API for one engine.
type Server struct {
	engine    *progress.Engine
	localizer achievements.Localizer
	log       *zap.Logger
	router    chi.Router
}

// New builds the router.
func New(engine *progress.Engine, opts Options) *Server {
	if opts.Localizer == nil {
		opts.Localizer = achievements.English
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	s := &Server{
		engine:    engine,
		localizer: opts.Localizer,
		log:       opts.Logger,
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.log))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Get("/health", s.health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/progress", s.getProgress)
		r.Get("/history", s.getHistory)
		r.Get("/achievements", s.getAchievements)

		r.Route("/notifications/latest", func(r chi.Router) {
			r.Get("/", s.getLatestNotification)
			r.Delete("/", s.clearLatestNotification)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/words", s.postWords)
			r.Post("/reviews", s.postReviews)
			r.Post("/exercises", s.postExercise)
			r.Post("/answers", s.postAnswer)
			r.Post("/time", s.postTime)
			r.Post("/games", s.postGame)
			r.Post("/streak", s.postStreak)
		})

		r.Put("/goal", s.putGoal)

		r.Route("/word-index/{context}", func(r chi.Router) {
			r.Get("/", s.getWordIndex)
			r.Put("/", s.putWordIndex)
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
