package handlers

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/api"
)

// writeUpstreamError maps accessor failures onto the gateway error envelope.
// The accessor already logged the failure; only the mapping is logged here.
func writeUpstreamError(w http.ResponseWriter, log *zap.Logger, requestID string, err error) {
	var (
		stErr  *jikan.HTTPStatusError
		valErr *jikan.ValidationError
	)
	kind := jikan.Kind(err)
	switch {
	case errors.Is(err, jikan.ErrInvalidID):
		api.BadRequest(w, "INVALID_ID", "id must be a positive integer", requestID, nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		api.WriteError(w, http.StatusGatewayTimeout, "UPSTREAM_TIMEOUT", "Upstream did not answer in time", requestID, nil)
	case kind == jikan.KindRateLimit:
		w.Header().Set("Retry-After", "5")
		api.Unavailable(w, "UPSTREAM_RATE_LIMITED", "Upstream rate limit reached, try again shortly", requestID, nil)
	case errors.As(err, &stErr):
		if stErr.Status == http.StatusNotFound {
			api.NotFound(w, "NOT_FOUND", "Not found", requestID)
			break
		}
		api.BadGateway(w, "UPSTREAM_ERROR", "Upstream request failed", requestID, map[string]any{"status": stErr.Status})
	case errors.As(err, &valErr):
		api.BadGateway(w, "UPSTREAM_CONTRACT", "Upstream returned an unexpected payload", requestID, map[string]any{"path": valErr.Path})
	case kind == jikan.KindParse:
		api.BadGateway(w, "UPSTREAM_CONTRACT", "Upstream returned an unexpected payload", requestID, nil)
	case errors.Is(err, jikan.ErrResponseTooLarge):
		api.BadGateway(w, "UPSTREAM_TOO_LARGE", "Upstream response too large", requestID, nil)
	case kind == jikan.KindNetwork:
		api.BadGateway(w, "UPSTREAM_UNAVAILABLE", "Upstream is unreachable", requestID, nil)
	default:
		log.Error("unmapped upstream error", zap.String("request_id", requestID), zap.Error(err))
		api.Internal(w, requestID)
		return
	}
	log.Debug("upstream error mapped",
		zap.String("request_id", requestID),
		zap.String("kind", kind),
		zap.Error(err))
}
