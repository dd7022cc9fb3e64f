package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/elevatescholar/scholarship-api/internal/application/applications"
	"github.com/elevatescholar/scholarship-api/internal/application/payment"
	"github.com/elevatescholar/scholarship-api/internal/application/review"
	"github.com/elevatescholar/scholarship-api/internal/application/scholarship"
	"github.com/elevatescholar/scholarship-api/internal/application/user"
	"github.com/elevatescholar/scholarship-api/internal/audit"
	"github.com/elevatescholar/scholarship-api/internal/config"
	rediscache "github.com/elevatescholar/scholarship-api/internal/infrastructure/caching/redis"
	"github.com/elevatescholar/scholarship-api/internal/infrastructure/db/mongodb"
	"github.com/elevatescholar/scholarship-api/internal/infrastructure/memory"
	rabbitpub "github.com/elevatescholar/scholarship-api/internal/infrastructure/messaging/rabbitmq"
	stripeprovider "github.com/elevatescholar/scholarship-api/internal/infrastructure/payment/stripe"
	"github.com/elevatescholar/scholarship-api/internal/logger"
	"github.com/elevatescholar/scholarship-api/internal/metrics"
	"github.com/elevatescholar/scholarship-api/internal/security"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/handlers"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/middleware"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/router"
)

// sysClock satisfies every service's Clock port.
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// repos is the set of stores a backend driver provides.
type repos struct {
	pinger       handlers.Pinger
	scholarships scholarship.Repo
	users        user.Repo
	reviews      review.Repo
	applications applications.Repo
	close        func(context.Context) error
}

type App struct {
	Config *config.Config
	Server *http.Server

	closers []func(context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("info", "json")
		zlog.Fatal().Err(err).Msg("config load failed")
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	app, err := NewApp(context.Background(), cfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("startup failed")
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		zlog.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-errCh:
		zlog.Error().Err(err).Msg("server crashed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	app.Shutdown(ctx)
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}
	clock := sysClock{}

	// 1) Infrastructure
	store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	app.closers = append(app.closers, store.close)

	var cache scholarship.Cache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unavailable: scholarship details will not be cached")
			metrics.SetDependencyHealth("redis", false)
		} else {
			cache = c
			metrics.SetDependencyHealth("redis", true)
			app.closers = append(app.closers, func(context.Context) error { return c.Close() })
		}
	}

	var pub applications.EventPublisher = applications.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			app.close(ctx)
			return nil, err
		}
		pub = p
		metrics.SetDependencyHealth("rabbitmq", true)
		app.closers = append(app.closers, func(context.Context) error { return p.Close() })
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	if cfg.StripeSecretKey == "" {
		zlog.Warn().Msg("STRIPE_SECRET_KEY empty: checkout is disabled")
	}
	provider := stripeprovider.New(cfg.StripeSecretKey)

	verifier, err := security.NewJWTVerifier(security.VerifierConfig{
		Secret:       cfg.JWTSecret,
		PublicKeyPEM: cfg.JWTPublicKeyPEM,
		Issuer:       cfg.JWTIssuer,
		Audience:     cfg.JWTAudience,
	})
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	// 2) Application
	auditLog := audit.New(zlog.Logger)

	userSvc := user.NewService(store.users, clock).WithAudit(auditLog.Record)
	scholarshipSvc := scholarship.New(store.scholarships, clock, cache, cfg.CacheTTLDetails).WithAudit(auditLog.Record)
	reviewSvc := review.New(store.reviews, userSvc, clock).WithAudit(auditLog.Record)
	applicationSvc := applications.New(store.applications, userSvc, pub, clock)
	paymentSvc := payment.New(payment.Config{
		Currency:   cfg.PaymentCurrency,
		SuccessURL: cfg.CheckoutSuccessURL,
		CancelURL:  cfg.CheckoutCancelURL,
	}, provider, scholarshipSvc, applicationSvc, pub, clock).WithAudit(auditLog.Record)

	// 3) Transport
	h, err := router.New(router.Deps{
		Health:         handlers.NewHealthHandler(store.pinger),
		Scholarships:   handlers.NewScholarshipsHandler(scholarshipSvc),
		Users:          handlers.NewUsersHandler(userSvc),
		Reviews:        handlers.NewReviewsHandler(reviewSvc),
		Applications:   handlers.NewApplicationsHandler(applicationSvc),
		Payments:       handlers.NewPaymentsHandler(paymentSvc),
		AuthMW:         middleware.Auth(verifier, response.WriteError),
		AdminMW:        middleware.RequireAdmin(userSvc, response.WriteError),
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	if err != nil {
		app.close(ctx)
		return nil, err
	}

	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
	return app, nil
}

func openStore(ctx context.Context, cfg *config.Config) (repos, error) {
	switch cfg.StoreDriver {
	case "memory":
		zlog.Warn().Msg("STORE_DRIVER=memory: data is lost on restart")
		m := memory.New()
		return repos{
			pinger:       m,
			scholarships: m.Scholarships(),
			users:        m.Users(),
			reviews:      m.Reviews(),
			applications: m.Applications(),
			close:        func(context.Context) error { return nil },
		}, nil
	default:
		s, err := mongodb.Connect(ctx, mongodb.Options{
			URI:         cfg.MongoURI,
			Database:    cfg.MongoDB,
			MaxPoolSize: uint64(max(cfg.MongoPool, 0)),
		})
		if err != nil {
			metrics.SetDependencyHealth("store", false)
			return repos{}, err
		}
		metrics.SetDependencyHealth("store", true)
		zlog.Info().Str("db", cfg.MongoDB).Msg("mongodb connected")
		return repos{
			pinger:       s,
			scholarships: s.Scholarships(),
			users:        s.Users(),
			reviews:      s.Reviews(),
			applications: s.Applications(),
			close:        s.Close,
		}, nil
	}
}

func (a *App) Shutdown(ctx context.Context) {
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			zlog.Error().Err(err).Msg("http shutdown")
		}
	}
	a.close(ctx)
}

// close releases infrastructure in reverse order of acquisition.
func (a *App) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			zlog.Warn().Err(err).Msg("close failed")
		}
	}
	a.closers = nil
}
