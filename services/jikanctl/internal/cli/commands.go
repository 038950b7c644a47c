package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/anime-catalog/internal/jikan"
)

func (a *app) topCmd() *cobra.Command {
	var (
		page   int
		filter string
	)
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the top anime ranking",
		Example: `  jikanctl top
  jikanctl top --filter airing --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.provider.TopAnime(cmd.Context(), page, filter)
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderAnimePage(w, res) })
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().StringVar(&filter, "filter", "", "airing, upcoming, bypopularity or favorite")
	return cmd
}

func (a *app) searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "search QUERY",
		Short:   "Search anime by title (safe for work only)",
		Example: `  jikanctl search "cowboy bebop"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.provider.SearchAnime(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderAnimePage(w, res) })
		},
	}
}

func (a *app) animeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "anime ID",
		Short: "Show one anime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.provider.AnimeByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderAnime(w, res) })
		},
	}
}

func (a *app) episodesCmd() *cobra.Command {
	var page, pages int
	cmd := &cobra.Command{
		Use:   "episodes ID",
		Short: "List episodes of an anime",
		Long: `List episodes of an anime. With --pages N, up to N pages starting at
--page are fetched and merged, stopping early when upstream has no more.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var (
				all  [][]jikan.Episode
				last jikan.PageInfo
			)
			for p := page; p < page+max(pages, 1); p++ {
				res, err := a.provider.Episodes(cmd.Context(), id, p)
				if err != nil {
					return err
				}
				all = append(all, res.Data)
				last = res.Pagination
				if !res.Pagination.HasNextPage {
					break
				}
			}
			merged := &jikan.EpisodePage{Data: jikan.MergeEpisodes(all...), Pagination: last}
			return a.emit(merged, func(w io.Writer) error { return renderEpisodes(w, merged.Data, last) })
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "first page")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch")
	return cmd
}

func (a *app) reviewsCmd() *cobra.Command {
	var page, pages int
	cmd := &cobra.Command{
		Use:   "reviews ID",
		Short: "List user reviews of an anime",
		Long: `List user reviews of an anime. With --pages N, up to N pages starting at
--page are fetched and merged without duplicates.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			var (
				all  [][]jikan.Review
				last jikan.PageInfo
			)
			for p := page; p < page+max(pages, 1); p++ {
				res, err := a.provider.Reviews(cmd.Context(), id, p)
				if err != nil {
					return err
				}
				all = append(all, res.Data)
				last = res.Pagination
				if !res.Pagination.HasNextPage {
					break
				}
			}
			merged := &jikan.ReviewPage{Data: jikan.MergeReviews(all...), Pagination: last}
			return a.emit(merged, func(w io.Writer) error { return renderReviews(w, merged.Data, last) })
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "first page")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch")
	return cmd
}

func (a *app) seasonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "season",
		Short: "Show anime airing this season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.provider.SeasonNow(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderAnimePage(w, res) })
		},
	}
}

func (a *app) promosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promos",
		Short: "Show popular promotional videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.provider.PopularPromos(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderPromos(w, res) })
		},
	}
}

func (a *app) recommendationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "recommendations ID",
		Aliases: []string{"recs"},
		Short:   "Show titles recommended alongside an anime",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.provider.Recommendations(cmd.Context(), id)
			if err != nil {
				return err
			}
			if res == nil {
				res = []jikan.Recommendation{}
			}
			return a.emit(res, func(w io.Writer) error { return renderRecommendations(w, res) })
		},
	}
}

func (a *app) videosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "videos ID",
		Short: "List promos, episode previews and music videos of an anime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			res, err := a.provider.AnimeVideos(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderVideos(w, res) })
		},
	}
}

func (a *app) dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the home screen: ranking, this season and promos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := a.provider.Dashboard(cmd.Context())
			if err != nil {
				return err
			}
			return a.emit(res, func(w io.Writer) error { return renderDashboard(w, res) })
		},
	}
}

func printLine(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format+"\n", args...)
	return err
}
