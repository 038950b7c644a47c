package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/platform/auth"
	"github.com/example/anime-catalog/internal/platform/events"
)

type Deps struct {
	Provider    jikan.Provider
	Events      *events.Publisher
	Logger      *zap.Logger
	Invalidator Invalidator
	// Verifier with an empty secret leaves the admin routes unmounted.
	Verifier auth.JWTVerifier
}

// Mount registers the catalogue routes on r.
func Mount(r chi.Router, d Deps) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	p := d.Provider

	r.Route("/v1", func(r chi.Router) {
		r.Get("/dashboard", Dashboard(p, log))
		r.Get("/watch/promos/popular", PopularPromos(p, log))

		r.Route("/anime", func(r chi.Router) {
			r.Get("/top", TopAnime(p, log))
			r.Get("/search", SearchAnime(p, d.Events, log))
			r.Get("/season/now", SeasonNow(p, log))
			r.Get("/{id}", GetAnime(p, d.Events, log))
			r.Get("/{id}/videos", AnimeVideos(p, log))
			r.Get("/{id}/recommendations", Recommendations(p, log))
			r.Get("/{id}/episodes", Episodes(p, log))
			r.Get("/{id}/reviews", Reviews(p, log))
		})

		if len(d.Verifier.Secret) > 0 && d.Invalidator != nil {
			r.Group(func(r chi.Router) {
				r.Use(auth.RequireRole(d.Verifier, auth.RoleAdmin))
				r.Post("/admin/cache/invalidate", InvalidateCache(d.Invalidator, d.Events, log))
			})
		}
	})
}
