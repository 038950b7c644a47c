// Package natsconn provides a shared NATS connection factory with
// configurable reconnect behaviour and fail-fast semantics.
package natsconn

import (
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/platform/config"
)

// Options configures the NATS connection behaviour.
// Zero values fall back to env vars or built-in defaults.
type Options struct {
	URL           string
	Name          string
	MaxReconnects int           // default from NATS_MAX_RECONNECTS or 5
	ReconnectWait time.Duration // default from NATS_RECONNECT_WAIT or 2s
	Logger        *zap.Logger
}

// Connect establishes a NATS connection with the configured retry policy.
// On failure it returns an error so the caller can fail fast.
func Connect(opts Options) (*nats.Conn, error) {
	env := config.NewEnv()
	if opts.URL == "" {
		opts.URL = strings.TrimSpace(env.GetString("NATS_URL"))
	}
	if opts.URL == "" {
		return nil, fmt.Errorf("nats connect: NATS_URL is required")
	}
	if opts.MaxReconnects == 0 {
		opts.MaxReconnects = envInt(env, "NATS_MAX_RECONNECTS", 5)
	}
	if opts.ReconnectWait == 0 {
		opts.ReconnectWait = envDuration(env, "NATS_RECONNECT_WAIT", 2*time.Second)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	nc, err := nats.Connect(opts.URL,
		nats.Name(opts.Name),
		nats.MaxReconnects(opts.MaxReconnects),
		nats.ReconnectWait(opts.ReconnectWait),
		nats.RetryOnFailedConnect(false),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.Info("nats reconnected", zap.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s (max_reconnects=%d, wait=%s): %w",
			opts.URL, opts.MaxReconnects, opts.ReconnectWait, err)
	}
	return nc, nil
}

// ConnectOptional is Connect, except that an empty URL (and no NATS_URL)
// yields a nil connection instead of an error.
func ConnectOptional(opts Options) (*nats.Conn, error) {
	if opts.URL == "" && strings.TrimSpace(config.NewEnv().GetString("NATS_URL")) == "" {
		return nil, nil
	}
	return Connect(opts)
}

func envInt(v *viper.Viper, key string, fallback int) int {
	if strings.TrimSpace(v.GetString(key)) == "" {
		return fallback
	}
	n := v.GetInt(key)
	if n < 0 || (n == 0 && strings.TrimSpace(v.GetString(key)) != "0") {
		return fallback
	}
	return n
}

func envDuration(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(v.GetString(key)) == "" {
		return fallback
	}
	d := v.GetDuration(key)
	if d <= 0 {
		return fallback
	}
	return d
}
