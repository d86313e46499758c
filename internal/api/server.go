// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware of the casino API.
package api

import (
	"casino/internal/api/handler/v1handler"
	"casino/internal/config"
	"casino/pkg/controller"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"status":"error","message":"request timed out"}`

// Options holds configuration for the HTTP server and its middleware.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":5000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is applied to every request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	// AllowedOrigins is the Origin allow-list of the CORS gate.
	AllowedOrigins []string
	// AuthRateLimit and AuthRateBurst throttle /api/auth per client IP.
	AuthRateLimit float64
	AuthRateBurst int
	// TrustedProxies may set X-Forwarded-For for the rate limiter.
	TrustedProxies []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Addr(),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		AuthRateLimit:     cfg.Auth.RateLimit,
		AuthRateBurst:     cfg.Auth.RateBurst,
		TrustedProxies:    cfg.HTTP.TrustedProxies,
	}
}

type Deps struct {
	v1handler.Deps

	// MeterProvider receives the HTTP metrics. When nil an OpenTelemetry
	// provider exporting to the default Prometheus registry is created.
	MeterProvider metric.MeterProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry HTTP metrics exported through Prometheus
// - Embedded OpenAPI spec and Swagger UI
// - the inline routes and the mounted route modules
// The router runs under a request timeout, inside the CORS gate and the
// logging middleware.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mp := deps.MeterProvider
	if mp == nil {
		exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
		if err != nil {
			return nil, fmt.Errorf("could not create otel exporter: %w", err)
		}
		mp = sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	}
	withMetrics, err := controller.WithMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	h := v1handler.New(deps.Deps)
	sec := v1handler.NewSecHandler(deps.Auth, deps.Users)
	proxies, err := controller.ParseTrustedProxies(opts.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("could not create auth rate limiter: %w", err)
	}
	authLimiter := controller.NewIPRateLimiter(opts.AuthRateLimit, opts.AuthRateBurst, proxies...)

	r := chi.NewRouter()
	r.Use(withMetrics)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	// specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// swagger playground
	r.Handle("/docs/*", v5emb.New(
		"Crypto Casino API",
		"/specs/v1.yaml",
		"/docs/",
	))

	h.MountInline(r, sec)
	h.Mount(r, sec, authLimiter.Middleware)

	// the timeout answers on the writer the CORS headers were already set on
	var handler http.Handler = http.TimeoutHandler(r, opts.RequestTimeout, timeoutBody)

	// cors
	handler = controller.WithCORS(controller.NewOriginGate(opts.AllowedOrigins), handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
