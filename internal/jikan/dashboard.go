package jikan

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Dashboard is the home screen: ranking, current season and trailers.
type Dashboard struct {
	Top    *AnimePage `json:"top"`
	Season *AnimePage `json:"season"`
	Promos *PromoPage `json:"promos"`
}

// Dashboard loads every section concurrently. Sections complete in any
// order; the first failure fails the whole dashboard and cancels the rest.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.TopAnime(gctx, 1, "")
		d.Top = p
		return err
	})
	g.Go(func() error {
		p, err := c.SeasonNow(gctx)
		d.Season = p
		return err
	})
	g.Go(func() error {
		p, err := c.PopularPromos(gctx)
		d.Promos = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
