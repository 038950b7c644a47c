package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/auth"
	"github.com/example/anime-catalog/internal/platform/config"
	"github.com/example/anime-catalog/internal/platform/events"
	"github.com/example/anime-catalog/internal/platform/httpserver"
	"github.com/example/anime-catalog/internal/platform/logging"
	"github.com/example/anime-catalog/internal/platform/natsconn"
	"github.com/example/anime-catalog/internal/platform/run"
	gwconfig "github.com/example/anime-catalog/services/gateway/internal/config"
	"github.com/example/anime-catalog/services/gateway/internal/handlers"
	gwhttp "github.com/example/anime-catalog/services/gateway/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.NewService(cfg.ServiceName, cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	gwCfg, err := gwconfig.LoadGateway()
	if err != nil {
		log.Error("load gateway config", zap.Error(err))
		run.Exit(1)
	}

	cache := jikan.NewCache(jikan.CacheOptions{TTL: gwCfg.CacheTTL, MaxEntries: gwCfg.CacheMaxEntries})
	opts := jikan.Options{
		BaseURL:    gwCfg.JikanBaseURL,
		HTTPClient: &http.Client{Timeout: gwCfg.JikanHTTPTimeout},
		Cache:      cache,
		Log:        log.Named("jikan"),
	}
	if gwCfg.JikanRPS > 0 {
		opts.Limiter = rate.NewLimiter(rate.Limit(gwCfg.JikanRPS), 1)
	}
	client := jikan.New(opts)

	nc, err := natsconn.ConnectOptional(natsconn.Options{URL: gwCfg.NATSURL, Name: cfg.ServiceName, Logger: log})
	if err != nil {
		log.Error("connect nats", zap.Error(err))
		run.Exit(1)
	}

	invalidator := handlers.InvalidatorFunc(func(key string) error {
		cache.Invalidate(key)
		return nil
	})
	ready := func() error { return nil }
	if nc != nil {
		if _, err := cache.SubscribeInvalidation(nc, gwCfg.CacheInvalidationSubject); err != nil {
			log.Error("subscribe cache invalidation", zap.Error(err))
			run.Exit(1)
		}
		// Every replica, this one included, drops the key when the message arrives.
		invalidator = func(key string) error {
			return jikan.PublishInvalidation(nc, gwCfg.CacheInvalidationSubject, key)
		}
		ready = func() error {
			if nc.Status() != nats.CONNECTED {
				return errors.New("nats not connected")
			}
			return nil
		}
		log.Info("cache invalidation enabled", zap.String("subject", gwCfg.CacheInvalidationSubject))
	}

	var pubConn events.Conn
	if nc != nil {
		pubConn = nc
	}
	pub := events.New(pubConn, log)

	r := chi.NewRouter()
	httpserver.SetupRouter(r, httpserver.RouterConfig{ReadyFunc: ready, Logger: log})

	limiter := gwhttp.NewRateLimiter(gwCfg.RateLimitRPS, gwCfg.RateLimitBurst)
	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		handlers.Mount(r, handlers.Deps{
			Provider:    client,
			Events:      pub,
			Logger:      log,
			Invalidator: invalidator,
			Verifier:    auth.JWTVerifier{Secret: gwCfg.AdminJWTSecret},
		})
	})
	if len(gwCfg.AdminJWTSecret) == 0 {
		log.Info("admin routes disabled: ADMIN_JWT_SECRET not set")
	}

	srv := httpserver.New(httpserver.Options{
		Addr:         cfg.HTTP.Addr,
		ServiceName:  cfg.ServiceName,
		Logger:       log,
		Router:       r,
		WriteTimeout: 30 * time.Second,
	})

	runner := run.New(log)
	code := runner.WithSignals(func(context.Context) error {
		return srv.Start()
	})
	runner.Graceful(srv.Shutdown)
	if nc != nil {
		nc.Close()
	}

	log.Info("exit", zap.Int("code", code))
	_ = log.Sync()
	run.Exit(code)
}
