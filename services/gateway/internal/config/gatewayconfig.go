package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/example/anime-catalog/internal/jikan"
	platformconfig "github.com/example/anime-catalog/internal/platform/config"
)

type GatewayConfig struct {
	JikanBaseURL     string
	JikanHTTPTimeout time.Duration
	// JikanRPS paces outbound calls; 0 disables pacing.
	JikanRPS float64

	CacheTTL        time.Duration
	CacheMaxEntries int

	// NATSURL is optional; without it cache invalidation stays local.
	NATSURL                  string
	CacheInvalidationSubject string

	RateLimitRPS   float64
	RateLimitBurst int

	// AdminJWTSecret guards the cache admin endpoint; empty disables it.
	AdminJWTSecret []byte
}

func LoadGateway() (GatewayConfig, error) {
	return LoadGatewayFrom(platformconfig.NewEnv())
}

func LoadGatewayFrom(v *viper.Viper) (GatewayConfig, error) {
	v.SetDefault("JIKAN_BASE_URL", jikan.DefaultBaseURL)
	v.SetDefault("JIKAN_HTTP_TIMEOUT", "10s")
	v.SetDefault("JIKAN_RPS", 3)
	v.SetDefault("CACHE_TTL", jikan.DefaultTTL.String())
	v.SetDefault("CACHE_MAX_ENTRIES", 10000)
	v.SetDefault("CACHE_INVALIDATION_SUBJECT", "jikan.cache.invalidate")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	cfg := GatewayConfig{
		JikanBaseURL:             strings.TrimSpace(v.GetString("JIKAN_BASE_URL")),
		JikanHTTPTimeout:         v.GetDuration("JIKAN_HTTP_TIMEOUT"),
		JikanRPS:                 v.GetFloat64("JIKAN_RPS"),
		CacheTTL:                 v.GetDuration("CACHE_TTL"),
		CacheMaxEntries:          v.GetInt("CACHE_MAX_ENTRIES"),
		NATSURL:                  strings.TrimSpace(v.GetString("NATS_URL")),
		CacheInvalidationSubject: strings.TrimSpace(v.GetString("CACHE_INVALIDATION_SUBJECT")),
		RateLimitRPS:             v.GetFloat64("RATE_LIMIT_RPS"),
		RateLimitBurst:           v.GetInt("RATE_LIMIT_BURST"),
	}
	if s := strings.TrimSpace(v.GetString("ADMIN_JWT_SECRET")); s != "" {
		cfg.AdminJWTSecret = []byte(s)
	}

	if cfg.JikanBaseURL == "" {
		return GatewayConfig{}, errors.New("JIKAN_BASE_URL is required")
	}
	if cfg.CacheTTL <= 0 {
		return GatewayConfig{}, fmt.Errorf("CACHE_TTL must be positive, got %q", v.GetString("CACHE_TTL"))
	}
	if cfg.JikanHTTPTimeout < 0 || cfg.JikanRPS < 0 || cfg.CacheMaxEntries < 0 {
		return GatewayConfig{}, errors.New("JIKAN_HTTP_TIMEOUT, JIKAN_RPS and CACHE_MAX_ENTRIES must not be negative")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return GatewayConfig{}, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if cfg.NATSURL != "" && cfg.CacheInvalidationSubject == "" {
		return GatewayConfig{}, errors.New("CACHE_INVALIDATION_SUBJECT is required when NATS_URL is set")
	}
	return cfg, nil
}
