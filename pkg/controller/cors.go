package controller

import (
	"casino/pkg/logger"
	"casino/pkg/metrics"
	"net/http"
	"slices"

	"go.uber.org/zap"
)

const (
	allowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

	// OriginRejectedMessage is returned to browsers whose Origin is not allowed.
	OriginRejectedMessage = "CORS policy violation: Origin not allowed"
)

// OriginGate decides whether a request may proceed based on its Origin
// header. The allow-list is copied on construction and never changes.
type OriginGate struct {
	allowed []string
}

func NewOriginGate(allowed []string) *OriginGate {
	return &OriginGate{allowed: slices.Clone(allowed)}
}

// Allows reports whether origin is accepted. Requests without an Origin
// (curl, server to server) are accepted; otherwise the match is exact.
func (g *OriginGate) Allows(origin string) bool {
	if origin == "" {
		return true
	}

	return slices.Contains(g.allowed, origin)
}

// WithCORS rejects requests from origins outside the gate's allow-list before
// they reach next, and sets credentialed CORS headers on the others.
// Preflight requests are answered directly with 204 No Content.
func WithCORS(gate *OriginGate, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if !gate.Allows(origin) {
			metrics.OriginRejections.Inc()
			logger.Warn(r.Context(), "origin rejected", zap.String("origin", origin))
			WriteError(w, http.StatusForbidden, OriginRejectedMessage)

			return
		}

		logger.Debug(r.Context(), "origin allowed", zap.String("origin", origin))

		h := w.Header()
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Credentials", "true")
		if origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			h.Set("Access-Control-Allow-Methods", allowedMethods)
			if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
				h.Add("Vary", "Access-Control-Request-Headers")
				h.Set("Access-Control-Allow-Headers", reqHeaders)
			}
			h.Set("Content-Length", "0")
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
