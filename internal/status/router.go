// Tourguide - Smart Tourism Recommendation Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tourguide

package status

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/tourguide/internal/logging"
	"github.com/tomtom215/tourguide/internal/metrics"
)

// RouterConfig holds the optional middleware settings of the status router.
type RouterConfig struct {
	// RateLimit is the number of requests allowed per client IP in
	// RateWindow. Zero disables limiting.
	RateLimit  int
	RateWindow time.Duration

	// CORSOrigins lists origins allowed to read the endpoints from a
	// browser. Empty disables CORS.
	CORSOrigins []string
}

// DefaultRouterConfig allows 120 requests per minute per IP and no CORS.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{RateLimit: 120, RateWindow: time.Minute}
}

// NewRouter returns the status routes for h.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDWithLogging())
	r.Use(chimiddleware.Recoverer)
	r.Use(prometheusMetrics)
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", chimiddleware.RequestIDHeader},
			ExposedHeaders: []string{chimiddleware.RequestIDHeader},
			MaxAge:         300,
		}))
	}
	if cfg.RateLimit > 0 {
		window := cfg.RateWindow
		if window <= 0 {
			window = time.Minute
		}
		r.Use(httprate.Limit(cfg.RateLimit, window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
				respondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests")
			}),
		))
	}
	r.Use(securityHeaders())
	r.Use(chimiddleware.Compress(5, "application/json"))

	r.Get("/healthz", h.Health)
	r.Get("/state", h.State)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
	})
	return r
}

// NewServer builds the *http.Server for addr.
func NewServer(addr string, h *Handler, cfg RouterConfig) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           NewRouter(h, cfg),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// requestIDWithLogging puts X-Request-ID and a correlation ID on the
// request context and echoes the request ID back.
func requestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(chimiddleware.RequestIDHeader)
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set(chimiddleware.RequestIDHeader, requestID)
			}
			w.Header().Set(chimiddleware.RequestIDHeader, requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			ctx = logging.ContextWithNewCorrelationID(ctx)
			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// prometheusMetrics records each request under its route pattern so
// unknown paths collapse into one label.
func prometheusMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		metrics.RecordStatusRequest(route, status, time.Since(start))
		logging.Ctx(r.Context()).Debug().
			Str("route", route).
			Str("status", strconv.Itoa(status)).
			Dur("duration", time.Since(start)).
			Msg("Status request")
	})
}

func securityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	}
}
