package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv string

	HTTPAddr string

	// Resource store
	StoreDriver string // mongo | memory
	MongoURI    string
	MongoDB     string
	MongoPool   int

	// Identity verification: HS256 secret or RS256 public key
	JWTSecret       string
	JWTPublicKeyPEM string
	JWTIssuer       string
	JWTAudience     string

	// RabbitMQ
	RabbitURL      string
	RabbitExchange string

	// Redis & Caching
	RedisURL        string
	CacheTTLDetails time.Duration // GET /scholarships/{id}

	// Payments
	StripeSecretKey    string
	PaymentCurrency    string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	CORSAllowedOrigins []string

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

func (c *Config) IsDev() bool { return c.AppEnv == "dev" }

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.AppEnv = getEnv("APP_ENV", "dev")
	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":5000")

	cfg.StoreDriver = strings.ToLower(getEnv("STORE_DRIVER", "mongo"))
	cfg.MongoURI = getEnv("MONGO_URI", "")
	cfg.MongoDB = getEnv("MONGO_DB", "elevateScholar")
	cfg.MongoPool = getIntEnv("MONGO_MAX_POOL_SIZE", 20)

	cfg.JWTSecret = getEnv("JWT_SECRET", "")
	cfg.JWTPublicKeyPEM = getEnv("JWT_PUBLIC_KEY_PEM", "")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", "")
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", "")

	cfg.RabbitURL = getEnv("RABBIT_URL", "")
	cfg.RabbitExchange = getEnv("RABBIT_EXCHANGE", "scholarship.events")

	cfg.RedisURL = getEnv("REDIS_URL", "")
	cfg.CacheTTLDetails = getDuration("CACHE_TTL_DETAILS", 5*time.Minute)

	cfg.StripeSecretKey = getEnv("STRIPE_SECRET_KEY", "")
	cfg.PaymentCurrency = strings.ToLower(getEnv("PAYMENT_CURRENCY", "usd"))
	cfg.CheckoutSuccessURL = getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:5173/payment-success")
	cfg.CheckoutCancelURL = getEnv("CHECKOUT_CANCEL_URL", "http://localhost:5173/payment-cancel")

	cfg.CORSAllowedOrigins = getList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("LOG_FORMAT", "console")

	cfg.HTTPReadTimeout = getDuration("HTTP_READ_TIMEOUT", 10*time.Second)
	cfg.HTTPWriteTimeout = getDuration("HTTP_WRITE_TIMEOUT", 20*time.Second)
	cfg.HTTPIdleTimeout = getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second)

	// validation
	switch cfg.StoreDriver {
	case "mongo":
		if cfg.MongoURI == "" {
			return nil, fmt.Errorf("missing MONGO_URI")
		}
	case "memory":
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q (want mongo or memory)", cfg.StoreDriver)
	}
	if cfg.JWTSecret == "" && cfg.JWTPublicKeyPEM == "" {
		return nil, fmt.Errorf("missing JWT_SECRET or JWT_PUBLIC_KEY_PEM")
	}

	// dev may run without a broker or a payment provider
	if !cfg.IsDev() && cfg.RabbitURL == "" {
		return nil, fmt.Errorf("missing RABBIT_URL (required when APP_ENV != dev)")
	}
	if !cfg.IsDev() && cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("missing STRIPE_SECRET_KEY (required when APP_ENV != dev)")
	}

	return cfg, nil
}

func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getIntEnv(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// getList splits a comma-separated value, dropping empty items.
func getList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
