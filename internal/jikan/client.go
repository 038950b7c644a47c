package jikan

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultBaseURL = "https://api.jikan.moe/v4"

// Client exposes typed accessors over the Jikan v4 API. Results are shared
// with the cache and must be treated as read-only.
type Client struct {
	BaseURL string
	Fetcher *Fetcher
	Cache   *Cache
	Log     *zap.Logger

	flights singleflight.Group
}

type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Cache      *Cache
	Log        *zap.Logger
	Limiter    Waiter

	MaxAttempts int
	BaseDelay   time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
}

func New(opts Options) *Client {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	cache := opts.Cache
	if cache == nil {
		cache = NewCache(CacheOptions{})
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		BaseURL: base,
		Cache:   cache,
		Log:     log,
		Fetcher: &Fetcher{
			HTTPClient:  httpClient,
			Log:         log,
			MaxAttempts: opts.MaxAttempts,
			BaseDelay:   opts.BaseDelay,
			Limiter:     opts.Limiter,
			Sleep:       opts.Sleep,
		},
	}
}

// TopAnime returns a page of the top anime ranking. filter is optional
// (airing, upcoming, bypopularity, favorite).
func (c *Client) TopAnime(ctx context.Context, page int, filter string) (*AnimePage, error) {
	params := url.Values{"page": {strconv.Itoa(normalizePage(page))}}
	if f := strings.TrimSpace(filter); f != "" {
		params.Set("filter", f)
	}
	return get(ctx, c, "top_anime", "/top/anime", params, identity[AnimePage])
}

func (c *Client) AnimeByID(ctx context.Context, id int) (*Anime, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return get(ctx, c, "anime", fmt.Sprintf("/anime/%d", id), nil, func(e *animeEnvelope) *Anime {
		return &e.Data
	})
}

// SearchAnime runs a safe-for-work full-text search.
func (c *Client) SearchAnime(ctx context.Context, q string) (*AnimePage, error) {
	params := url.Values{"q": {q}, "sfw": {"true"}}
	return get(ctx, c, "search", "/anime", params, identity[AnimePage])
}

func (c *Client) AnimeVideos(ctx context.Context, id int) (*AnimeVideos, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return get(ctx, c, "videos", fmt.Sprintf("/anime/%d/videos", id), nil, func(e *videosEnvelope) *AnimeVideos {
		return &e.Data
	})
}

func (c *Client) PopularPromos(ctx context.Context) (*PromoPage, error) {
	return get(ctx, c, "promos", "/watch/promos/popular", nil, identity[PromoPage])
}

func (c *Client) Recommendations(ctx context.Context, id int) ([]Recommendation, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return get(ctx, c, "recommendations", fmt.Sprintf("/anime/%d/recommendations", id), nil, func(e *recommendationsEnvelope) []Recommendation {
		return e.Data
	})
}

func (c *Client) SeasonNow(ctx context.Context) (*AnimePage, error) {
	return get(ctx, c, "season_now", "/seasons/now", nil, identity[AnimePage])
}

func (c *Client) Episodes(ctx context.Context, id, page int) (*EpisodePage, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	params := url.Values{"page": {strconv.Itoa(normalizePage(page))}}
	return get(ctx, c, "episodes", fmt.Sprintf("/anime/%d/episodes", id), params, identity[EpisodePage])
}

func (c *Client) Reviews(ctx context.Context, id, page int) (*ReviewPage, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	params := url.Values{"page": {strconv.Itoa(normalizePage(page))}}
	return get(ctx, c, "reviews", fmt.Sprintf("/anime/%d/reviews", id), params, identity[ReviewPage])
}

// get runs the accessor pipeline: key, cache lookup, fetch, decode,
// validate, reshape, store. Concurrent misses for one key share a fetch.
// The shared fetch is detached from every caller's cancellation; a caller
// whose context ends stops waiting without failing the others.
func get[T any, R any](ctx context.Context, c *Client, op, path string, params url.Values, reshape func(*T) R) (R, error) {
	var zero R
	key := RequestKey(path, params)
	ks := NewKeyspace[R](c.Cache, op)
	if v, ok := ks.Lookup(key); ok {
		return v, nil
	}
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("jikan %s: %w", op, err)
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(op+":"+key, func() (any, error) {
		if v, ok := ks.Lookup(key); ok {
			return v, nil
		}
		body, err := c.Fetcher.Fetch(fetchCtx, c.BaseURL+key)
		if err != nil {
			return nil, err
		}
		parsed, err := decode[T](body)
		if err != nil {
			return nil, err
		}
		out := reshape(&parsed)
		ks.Store(key, out)
		return out, nil
	})

	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("jikan %s: %w", op, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			c.Log.Error("jikan request failed",
				zap.String("op", op),
				zap.String("key", key),
				zap.String("kind", Kind(res.Err)),
				zap.Error(res.Err))
			return zero, fmt.Errorf("jikan %s: %w", op, res.Err)
		}
		return res.Val.(R), nil
	}
}

func identity[T any](v *T) *T { return v }

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
