package jikan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func imagesFixture() map[string]any {
	return map[string]any{
		"jpg": map[string]any{
			"image_url":       "https://cdn.myanimelist.net/images/anime/1/1.jpg",
			"small_image_url": "https://cdn.myanimelist.net/images/anime/1/1t.jpg",
			"large_image_url": "https://cdn.myanimelist.net/images/anime/1/1l.jpg",
		},
		"webp": map[string]any{
			"image_url":       "https://cdn.myanimelist.net/images/anime/1/1.webp",
			"large_image_url": "https://cdn.myanimelist.net/images/anime/1/1l.webp",
		},
	}
}

func animeFixture(id int) map[string]any {
	return map[string]any{
		"mal_id":   id,
		"title":    fmt.Sprintf("Anime %d", id),
		"synopsis": "A story.",
		"images":   imagesFixture(),
		"genres": []any{
			map[string]any{"mal_id": 1, "name": "Action"},
			map[string]any{"mal_id": 24, "name": "Sci-Fi"},
		},
		"episodes": 24,
		"score":    9.1,
		"year":     nil,
		"status":   "Finished Airing",
	}
}

func animePageFixture(n int, hasNext bool) map[string]any {
	data := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		data = append(data, animeFixture(i))
	}
	return map[string]any{
		"data": data,
		"pagination": map[string]any{
			"last_visible_page": 10,
			"has_next_page":     hasNext,
			"current_page":      1,
			"items":             map[string]any{"count": n, "total": 250, "per_page": 25},
		},
	}
}

func reviewFixture(id int) map[string]any {
	return map[string]any{
		"mal_id":    id,
		"type":      "anime",
		"reactions": map[string]any{"overall": 12, "nice": 3},
		"date":      "2024-03-01T00:00:00+00:00",
		"review":    "Worth every episode.",
		"score":     9,
		"user":      map[string]any{"username": fmt.Sprintf("user%d", id)},
	}
}

func reviewPageFixture(hasNext bool, ids ...int) map[string]any {
	data := make([]any, 0, len(ids))
	for _, id := range ids {
		data = append(data, reviewFixture(id))
	}
	return map[string]any{
		"data":       data,
		"pagination": map[string]any{"last_visible_page": 2, "has_next_page": hasNext},
	}
}

func episodeFixture(id int) map[string]any {
	return map[string]any{
		"mal_id":         id,
		"url":            fmt.Sprintf("https://myanimelist.net/anime/1/x/episode/%d", id),
		"title":          fmt.Sprintf("Episode %d", id),
		"title_japanese": nil,
		"title_romanji":  nil,
		"aired":          "2011-04-06T00:00:00+00:00",
		"score":          4.6,
		"filler":         false,
		"recap":          false,
		"forum_url":      nil,
	}
}

func promoPageFixture() map[string]any {
	return map[string]any{
		"pagination": map[string]any{"last_visible_page": 1, "has_next_page": false},
		"data": []any{
			map[string]any{
				"title": "PV 1",
				"entry": map[string]any{
					"mal_id": 5114,
					"url":    "https://myanimelist.net/anime/5114",
					"images": imagesFixture(),
					"title":  "Fullmetal Alchemist: Brotherhood",
				},
				"trailer": map[string]any{
					"youtube_id": "abc123",
					"url":        "https://www.youtube.com/watch?v=abc123",
					"embed_url":  "https://www.youtube.com/embed/abc123",
					"images":     map[string]any{"image_url": "https://img.youtube.com/vi/abc123/default.jpg"},
				},
			},
		},
	}
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

// delayRecorder replaces the fetcher's real sleep.
type delayRecorder struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (r *delayRecorder) sleep(ctx context.Context, d time.Duration) error {
	r.mu.Lock()
	r.delays = append(r.delays, d)
	r.mu.Unlock()
	return ctx.Err()
}

func (r *delayRecorder) recorded() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}

type testEnv struct {
	client *Client
	srv    *httptest.Server
	hits   *atomic.Int32
	delays *delayRecorder
}

func newTestEnv(t *testing.T, h http.HandlerFunc) *testEnv {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)

	rec := &delayRecorder{}
	c := New(Options{
		BaseURL:    srv.URL,
		HTTPClient: srv.Client(),
		Sleep:      rec.sleep,
	})
	return &testEnv{client: c, srv: srv, hits: &hits, delays: rec}
}

func writeJSON(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
