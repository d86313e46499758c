package controller_test

import (
	"casino/pkg/controller"
	"casino/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var testOrigins = []string{"http://localhost:3000", "https://dumm-y-deploy-frontend.vercel.app"}

func TestOriginGate_Allows(t *testing.T) {
	gate := controller.NewOriginGate(testOrigins)

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"https://dumm-y-deploy-frontend.vercel.app", true},
		{"http://localhost:3001", false},
		{"https://evil.com", false},
		{"http://LOCALHOST:3000", false},
		{"http://localhost:3000/", false},
		{"https://dumm-y-deploy-frontend.vercel.app.evil.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			require.Equal(t, tt.want, gate.Allows(tt.origin))
		})
	}
}

func TestOriginGate_CopiesAllowList(t *testing.T) {
	origins := []string{"http://a.example"}
	gate := controller.NewOriginGate(origins)
	origins[0] = "http://b.example"

	require.True(t, gate.Allows("http://a.example"))
	require.False(t, gate.Allows("http://b.example"))
}

func TestWithCORS_AllowedOrigin(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetDefault(zap.New(core))
	t.Cleanup(func() { logger.SetDefault(zap.NewNop()) })

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()

	controller.WithCORS(controller.NewOriginGate(testOrigins), next).ServeHTTP(rec, req)

	require.True(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.Equal(t, "http://localhost:3000", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Values("Vary"), "Origin")
	require.Equal(t, 1, logs.FilterMessage("origin allowed").Len())
}

func TestWithCORS_NoOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(controller.NewOriginGate(testOrigins), next).ServeHTTP(rec, req)

	require.True(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", res.Header.Get("Access-Control-Allow-Credentials"))
}

func TestWithCORS_RejectedOrigin(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/users", nil)
			req.Header.Set("Origin", "https://evil.com")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rec := httptest.NewRecorder()

			controller.WithCORS(controller.NewOriginGate(testOrigins), next).ServeHTTP(rec, req)

			res := rec.Result()
			require.Equal(t, http.StatusForbidden, res.StatusCode)
			require.Empty(t, res.Header.Get("Access-Control-Allow-Origin"))
			require.JSONEq(t,
				`{"status":"error","message":"CORS policy violation: Origin not allowed"}`,
				rec.Body.String())
		})
	}
	require.False(t, called, "no handler may run for a rejected origin")
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/auth/login", nil)
	req.Header.Set("Origin", "https://dumm-y-deploy-frontend.vercel.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "content-type,authorization")
	rec := httptest.NewRecorder()

	controller.WithCORS(controller.NewOriginGate(testOrigins), next).ServeHTTP(rec, req)

	require.False(t, called)
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "https://dumm-y-deploy-frontend.vercel.app", res.Header.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET,HEAD,PUT,PATCH,POST,DELETE", res.Header.Get("Access-Control-Allow-Methods"))
	require.Equal(t, "content-type,authorization", res.Header.Get("Access-Control-Allow-Headers"))
}
