package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/api"
	"github.com/example/anime-catalog/internal/platform/events"
	"github.com/example/anime-catalog/internal/platform/httpserver"
)

// topFilters are the ranking tabs upstream understands.
var topFilters = map[string]bool{
	"":             true,
	"airing":       true,
	"upcoming":     true,
	"bypopularity": true,
	"favorite":     true,
}

// animeResponse adds the preferred cover image to an anime.
type animeResponse struct {
	*jikan.Anime
	Image string `json:"image"`
}

type recommendationsResponse struct {
	Data []jikan.Recommendation `json:"data"`
}

// TopAnime handles GET /v1/anime/top?page=&filter=
func TopAnime(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		page, ok := queryPage(w, r, rid)
		if !ok {
			return
		}
		filter := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter")))
		if !topFilters[filter] {
			api.BadRequest(w, "INVALID_FILTER", "filter must be one of airing, upcoming, bypopularity, favorite", rid, map[string]any{"filter": filter})
			return
		}
		res, err := p.TopAnime(r.Context(), page, filter)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, res)
	}
}

// SearchAnime handles GET /v1/anime/search?q=
func SearchAnime(p jikan.Provider, pub *events.Publisher, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		q := strings.TrimSpace(r.URL.Query().Get("q"))
		if q == "" {
			api.BadRequest(w, "MISSING_QUERY", "q is required", rid, nil)
			return
		}
		res, err := p.SearchAnime(r.Context(), q)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		pub.Publish(events.SubjectSearchPerformed, "search_performed", rid, map[string]any{
			"query":   q,
			"results": len(res.Data),
		})
		api.WriteJSON(w, http.StatusOK, res)
	}
}

// SeasonNow handles GET /v1/anime/season/now
func SeasonNow(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		res, err := p.SeasonNow(r.Context())
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, res)
	}
}

// GetAnime handles GET /v1/anime/{id}
func GetAnime(p jikan.Provider, pub *events.Publisher, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		id, ok := pathID(w, r, rid)
		if !ok {
			return
		}
		a, err := p.AnimeByID(r.Context(), id)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		pub.Publish(events.SubjectAnimeViewed, "anime_viewed", rid, map[string]any{"mal_id": a.MalID})
		api.WriteJSON(w, http.StatusOK, map[string]any{"data": animeResponse{Anime: a, Image: a.BestImage()}})
	}
}

// AnimeVideos handles GET /v1/anime/{id}/videos
func AnimeVideos(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		id, ok := pathID(w, r, rid)
		if !ok {
			return
		}
		res, err := p.AnimeVideos(r.Context(), id)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, map[string]any{"data": res})
	}
}

// Recommendations handles GET /v1/anime/{id}/recommendations
func Recommendations(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		id, ok := pathID(w, r, rid)
		if !ok {
			return
		}
		res, err := p.Recommendations(r.Context(), id)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		if res == nil {
			res = []jikan.Recommendation{}
		}
		api.WriteJSON(w, http.StatusOK, recommendationsResponse{Data: res})
	}
}

// Episodes handles GET /v1/anime/{id}/episodes?page=
func Episodes(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		id, ok := pathID(w, r, rid)
		if !ok {
			return
		}
		page, ok := queryPage(w, r, rid)
		if !ok {
			return
		}
		res, err := p.Episodes(r.Context(), id, page)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, res)
	}
}

// Reviews handles GET /v1/anime/{id}/reviews?page=
func Reviews(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		id, ok := pathID(w, r, rid)
		if !ok {
			return
		}
		page, ok := queryPage(w, r, rid)
		if !ok {
			return
		}
		res, err := p.Reviews(r.Context(), id, page)
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, res)
	}
}

// PopularPromos handles GET /v1/watch/promos/popular
func PopularPromos(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		res, err := p.PopularPromos(r.Context())
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, res)
	}
}

// Dashboard handles GET /v1/dashboard
func Dashboard(p jikan.Provider, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rid := httpserver.RequestIDFromContext(r.Context())
		res, err := p.Dashboard(r.Context())
		if err != nil {
			writeUpstreamError(w, log, rid, err)
			return
		}
		api.WriteJSON(w, http.StatusOK, res)
	}
}
