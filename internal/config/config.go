// Package config loads the service configuration from the environment and an
// optional .env or YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultAllowedOrigins are the browser origins accepted when
// CORS_ALLOWED_ORIGINS is not set.
var DefaultAllowedOrigins = []string{ //nolint: gochecknoglobals
	"http://localhost:3000",
	"https://dumm-y-deploy-frontend.vercel.app",
}

// Config is built once at startup and treated as read-only afterwards.
type Config struct {
	// Environment selects the logger mode (development, production).
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment" validate:"oneof=development production"` //nolint: lll

	HTTP struct {
		// Host is the interface to bind; empty means all interfaces.
		Host string `env:"HTTP_HOST" yaml:"host"`
		// Port is the TCP port to listen on.
		Port int `env:"PORT" env-default:"5000" yaml:"port" validate:"gte=0,lte=65535"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout" validate:"gt=0"`
		MaxHeaderBytes int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		MetricsPath    string        `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath" validate:"startswith=/"` //nolint: lll
		// TrustedProxies lists the IPs or CIDRs of reverse proxies whose
		// X-Forwarded-For header identifies the client. Empty trusts nobody.
		TrustedProxies []string `env:"HTTP_TRUSTED_PROXIES" env-separator:"," yaml:"trustedProxies" validate:"dive,cidr|ip"` //nolint: lll
	} `yaml:"http"`

	CORS struct {
		// AllowedOrigins are compared byte for byte with the Origin header.
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
	} `yaml:"cors"`

	Database struct {
		// URI is a PostgreSQL connection URL. MONGO_URI is read as a fallback
		// name so existing deployments keep their variable.
		URI                string        `env:"DATABASE_URI,MONGO_URI" env-required:"true" yaml:"uri" validate:"required"`
		MaxOpenConnections int           `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections" validate:"gte=0"`  //nolint: lll
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections" validate:"gte=0"`   //nolint: lll
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`                   //nolint: lll
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`                  //nolint: lll
		ConnectTimeout     time.Duration `env:"DATABASE_CONNECT_TIMEOUT" env-default:"10s" yaml:"connectTimeout" validate:"gt=0"`           //nolint: lll
	} `yaml:"database"`

	JWT struct {
		// PrivateKey is a PEM encoded RSA key used to sign tokens. Without it
		// the service can verify tokens but not issue them.
		PrivateKey string        `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		PublicKey  string        `env:"JWT_PUBLIC_KEY" yaml:"publicKey" validate:"required"`
		TTL        time.Duration `env:"JWT_TTL" env-default:"24h" yaml:"ttl" validate:"gt=0"`
	} `yaml:"jwt"`

	Auth struct {
		// RateLimit is the sustained number of auth requests per second per client IP.
		RateLimit float64 `env:"AUTH_RATE_LIMIT" env-default:"0.2" yaml:"rateLimit" validate:"gt=0"`
		RateBurst int     `env:"AUTH_RATE_BURST" env-default:"5" yaml:"rateBurst" validate:"gte=1"`
	} `yaml:"auth"`

	Users struct {
		ListLimit uint `env:"USERS_LIST_LIMIT" env-default:"500" yaml:"listLimit" validate:"gte=1"`
	} `yaml:"users"`

	Referral struct {
		MaxTreeDepth int `env:"REFERRAL_MAX_TREE_DEPTH" env-default:"5" yaml:"maxTreeDepth" validate:"gte=1,lte=20"`
	} `yaml:"referral"`

	MLM struct {
		// LevelRates are the commission rates in basis points, index 0 being
		// the direct referrer of the depositor.
		LevelRates []int64 `env:"MLM_LEVEL_RATES" env-default:"1000,500,300,200,100" env-separator:"," yaml:"levelRates" validate:"min=1,max=20,dive,gte=0,lte=10000"` //nolint: lll
	} `yaml:"mlm"`

	Worker struct {
		MaxWorkers  int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers" validate:"gte=1"`
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts" validate:"gte=1"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}

// Load reads configPath when it exists (.env, .yml or .yaml) and the process
// environment otherwise. Environment variables always win over the file.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(configPath)
	switch {
	case configPath != "" && statErr == nil:
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	case configPath == "" || errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not stat config file: %w", statErr)
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
