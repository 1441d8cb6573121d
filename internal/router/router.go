package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"calculator-service/internal/auth"
	"calculator-service/internal/calculator"
	"calculator-service/internal/metrics"
)

// New assembles the HTTP routes. Everything under /api/v1 except
// registration and login sits behind the auth middleware.
func New(logger *zap.SugaredLogger, svc *auth.Service, authH *auth.Handler, calcH *calculator.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", authH.Register)
		r.Get("/users", authH.ListUsers)
		r.Get("/users/{id}", authH.GetUser)
		r.Delete("/users/{id}", authH.DeleteUser)
		r.Post("/login", authH.Login)

		r.Group(func(r chi.Router) {
			r.Use(svc.Middleware)
			r.Get("/me", authH.Me)
			r.Post("/calculator", calcH.Calculate)
			r.Get("/calculator/history", calcH.History)
			r.Delete("/calculator/history", calcH.ClearHistory)
			r.Post("/calculator/expression", calcH.Evaluate)
			r.Get("/calculator/expression/history", calcH.ExpressionHistory)
			r.Delete("/calculator/expression/history", calcH.ClearExpressionHistory)
		})
	})

	return r
}

// requestLogger logs one line per request with a generated request id.
func requestLogger(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.NewString()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Infow("request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
