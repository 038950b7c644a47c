package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/api"
	"github.com/example/anime-catalog/internal/platform/auth"
	"github.com/example/anime-catalog/internal/platform/events"
	"github.com/example/anime-catalog/internal/platform/httpserver"
)

// Invalidator drops cached responses. key is "<keyspace>:<request key>" or
// jikan.InvalidateAll.
type Invalidator interface {
	Invalidate(key string) error
}

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func(key string) error

func (f InvalidatorFunc) Invalidate(key string) error { return f(key) }

type invalidateRequest struct {
	Key string `json:"key"`
}

type invalidateResponse struct {
	Invalidated string `json:"invalidated"`
}

// InvalidateCache handles POST /v1/admin/cache/invalidate. An empty body or
// key flushes everything.
func InvalidateCache(inv Invalidator, pub *events.Publisher, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		var req invalidateRequest
		if !decodeJSON(w, r, rid, &req) {
			return
		}
		key := strings.TrimSpace(req.Key)
		if key == "" {
			key = jikan.InvalidateAll
		}
		if err := inv.Invalidate(key); err != nil {
			log.Error("cache invalidation failed", zap.String("request_id", rid), zap.String("key", key), zap.Error(err))
			api.Unavailable(w, "INVALIDATION_FAILED", "Cache invalidation could not be delivered", rid, nil)
			return
		}
		sub, _ := auth.SubjectFromContext(r.Context())
		log.Info("cache invalidated", zap.String("request_id", rid), zap.String("key", key), zap.String("by", sub))
		pub.Publish(events.SubjectCacheFlushed, "cache_flushed", rid, map[string]any{"key": key, "by": sub})
		api.WriteJSON(w, http.StatusAccepted, invalidateResponse{Invalidated: key})
	}
}
