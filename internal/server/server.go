// Package server provides the HTTP REST API for the career comeback service.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jonathan/career-comeback/internal/coach"
	"github.com/jonathan/career-comeback/internal/config"
	"github.com/jonathan/career-comeback/internal/db"
	"github.com/jonathan/career-comeback/internal/llm"
	"github.com/jonathan/career-comeback/internal/logger"
	authmw "github.com/jonathan/career-comeback/internal/server/middleware"
	"github.com/jonathan/career-comeback/internal/server/ratelimit"
)

const (
	slowRequest     = 2 * time.Second
	shutdownTimeout = 30 * time.Second
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	router      chi.Router
	store       Store
	coach       *coach.Coach
	rateLimiter *ratelimit.Limiter
	authHandler *AuthHandler
	validator   authmw.TokenValidator
	now         func() time.Time
	closers     []func()
}

// Deps are the collaborators a Server is built from.
type Deps struct {
	Store          Store
	Coach          *coach.Coach
	Passwords      *config.PasswordConfig
	JWT            *JWTService
	RateLimit      *ratelimit.Config
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// New connects to the database and the model provider and builds a server
// from the environment.
func New(ctx context.Context, cfg *config.ServerConfig) (*Server, error) {
	log := logger.Named("server")

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}

	var client llm.Client
	if cfg.GeminiAPIKey != "" {
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, coach will answer with fallback replies")
	}

	s := NewWithDeps(Deps{
		Store:          database,
		Coach:          coach.New(client),
		Passwords:      passwordConfig,
		JWT:            NewJWTService(jwtConfig),
		RateLimit:      ratelimit.LoadConfig(),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})
	if client != nil {
		s.closers = append(s.closers, func() { _ = client.Close() })
	}
	s.closers = append(s.closers, database.Close)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s, nil
}

// NewWithDeps builds a server around existing collaborators. It does not
// listen; use Handler to serve it.
func NewWithDeps(deps Deps) *Server {
	s := &Server{
		store:       deps.Store,
		coach:       deps.Coach,
		rateLimiter: ratelimit.NewLimiter(deps.RateLimit),
		authHandler: NewAuthHandler(NewUserService(deps.Store, deps.Passwords), deps.JWT),
		validator:   deps.JWT.AsTokenValidator(),
		now:         time.Now,
	}
	if s.coach == nil {
		s.coach = coach.New(nil)
	}
	s.router = s.routes(deps)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes(deps Deps) chi.Router {
	origins := deps.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(withRequestLogger)
	r.Use(withAccessLog)
	r.Use(withRecover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:         300,
	}))
	r.Use(s.withRateLimit)
	r.Use(middleware.Timeout(timeout))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		errorResponse(w, http.StatusNotFound, "Route not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		errorResponse(w, http.StatusMethodNotAllowed, "Method not allowed.")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/auth/signup", s.authHandler.Signup)
		r.Post("/auth/login", s.authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authmw.AuthMiddleware(s.validator))

			r.Get("/auth/me", s.authHandler.Me)
			r.Put("/auth/password", s.authHandler.UpdatePassword)

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", s.handleGetProfile)
				r.Put("/", s.handleUpdateProfile)
				r.Post("/{section}", s.handleAddSection)
				r.Put("/{section}/{id}", s.handleUpdateSection)
				r.Delete("/{section}/{id}", s.handleDeleteSection)
			})

			r.Route("/onboarding", func(r chi.Router) {
				r.Get("/", s.handleGetOnboarding)
				r.Post("/", s.handleSaveOnboarding)
				r.Put("/", s.handleUpdateOnboarding)
			})

			r.Route("/recommendations", func(r chi.Router) {
				r.Get("/", s.handleListRecommendations)
				r.Get("/saved", s.handleListSaved)
				r.Post("/{id}/save", s.handleSaveRecommendation)
				r.Delete("/{id}/save", s.handleUnsaveRecommendation)
			})

			r.Route("/roadmap", func(r chi.Router) {
				r.Get("/", s.handleGetRoadmap)
				r.Post("/", s.handleAddMilestone)
				r.Post("/generate", s.handleGenerateRoadmap)
				r.Patch("/{id}", s.handleToggleMilestone)
				r.Put("/{id}", s.handleUpdateMilestone)
				r.Delete("/{id}", s.handleDeleteMilestone)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/metrics", s.handleGetMetrics)
				r.Put("/metrics", s.handleUpdateMetrics)
				r.Post("/confidence", s.handleAddConfidence)
				r.Get("/reminder", s.handleReminder)
			})

			r.Route("/ai", func(r chi.Router) {
				r.Post("/chat", s.handleChat)
				r.Post("/break-explanation", s.handleBreakExplanation)
				r.Post("/resume-review", s.handleResumeReview)
				r.Get("/history", s.handleHistory)
				r.Delete("/history", s.handleClearHistory)
			})
		})
	})
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	log := logger.Named("server")

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		s.close()
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.close()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func (s *Server) close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	for _, c := range s.closers {
		c()
	}
}

// withRequestLogger tags the request-scoped logger with chi's request ID.
func withRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if id := middleware.GetReqID(ctx); id != "" {
			ctx = logger.WithRequestID(ctx, id)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withAccessLog logs one line per request.
func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log := logger.C(r.Context())
		ev := log.Info()
		if elapsed >= slowRequest {
			ev = log.Warn().Bool("slow", true)
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Dur("elapsed", elapsed).
			Int("bytes", ww.BytesWritten()).
			Msg("request")
	})
}

// withRecover turns a handler panic into a JSON 500.
func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.C(r.Context()).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")
			errorResponse(w, http.StatusInternalServerError, "Internal server error.")
		}()
		next.ServeHTTP(w, r)
	})
}

// withRateLimit applies per client and endpoint token buckets.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			rateLimitResponse(w, r, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID uses the IP address from RemoteAddr. Forwarded headers are
// not trusted.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func rateLimitResponse(w http.ResponseWriter, r *http.Request, info ratelimit.Info) {
	response := map[string]any{
		"error":     "Too many requests. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Seconds())
		if secs == 0 {
			secs = 1
		}
		response["retry_after"] = secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}

	logger.C(r.Context()).Warn().
		Str("client", extractClientID(r)).
		Str("path", r.URL.Path).
		Int("limit", info.Limit).
		Time("reset", info.ResetTime).
		Msg("rate limit exceeded")

	jsonResponse(w, http.StatusTooManyRequests, response)
}

// handleHealth reports liveness and database reachability.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	database := "ok"
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.store.Ping(ctx); err != nil {
		logger.C(r.Context()).Warn().Err(err).Msg("database ping failed")
		database = "unavailable"
	}
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "database": database})
}
