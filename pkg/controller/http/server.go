package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/atharvsinh-codez/codedevs/pkg/usecase"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/safe"
)

type Server struct {
	router     *chi.Mux
	starsOwner string
	starsRepo  string
}

type Options func(*Server)

// WithStarsRepo sets the repository whose star count is served by the
// stars endpoint.
func WithStarsRepo(owner, repo string) Options {
	return func(s *Server) {
		s.starsOwner = owner
		s.starsRepo = repo
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/image/generate", generateImageHandler(uc))

		r.Route("/portfolio", func(r chi.Router) {
			r.Post("/track", trackHandler(uc))
			r.Get("/stats", statsHandler(uc))
			r.Post("/generate", generatePortfolioHandler(uc))
		})

		r.Get("/github/stars", starsHandler(uc, s.starsOwner, s.starsRepo))
	})

	r.Get("/health", healthHandler)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
