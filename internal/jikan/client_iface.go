package jikan

import "context"

//go:generate mockgen -package=mocks -source=client_iface.go -destination=mocks/provider.go

// Provider is the port for reading the Jikan catalogue. *Client implements it.
type Provider interface {
	TopAnime(ctx context.Context, page int, filter string) (*AnimePage, error)
	AnimeByID(ctx context.Context, id int) (*Anime, error)
	SearchAnime(ctx context.Context, q string) (*AnimePage, error)
	AnimeVideos(ctx context.Context, id int) (*AnimeVideos, error)
	PopularPromos(ctx context.Context) (*PromoPage, error)
	Recommendations(ctx context.Context, id int) ([]Recommendation, error)
	SeasonNow(ctx context.Context) (*AnimePage, error)
	Episodes(ctx context.Context, id, page int) (*EpisodePage, error)
	Reviews(ctx context.Context, id, page int) (*ReviewPage, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
}

var _ Provider = (*Client)(nil)
