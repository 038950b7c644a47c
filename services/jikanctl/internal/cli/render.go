package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/example/anime-catalog/internal/jikan"
)

var (
	highScore = color.New(color.FgGreen, color.Bold)
	midScore  = color.New(color.FgYellow)
	lowScore  = color.New(color.FgRed)
	dim       = color.New(color.FgHiBlack)
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

func renderAnimePage(w io.Writer, p *jikan.AnimePage) error {
	rows := make([][]string, 0, len(p.Data))
	for _, a := range p.Data {
		rows = append(rows, []string{
			optInt(a.Rank),
			strconv.Itoa(a.MalID),
			a.Title,
			optStr(a.Type),
			optInt(a.Episodes),
			scoreLabel(a.Score),
			a.Status,
		})
	}
	if err := renderTable(w, []string{"Rank", "ID", "Title", "Type", "Episodes", "Score", "Status"}, rows); err != nil {
		return err
	}
	pg := p.Pagination
	_, err := fmt.Fprintf(w, "Page %d of %s, %d shown, more: %t\n", pg.CurrentPage, optInt(pg.LastVisiblePage), len(p.Data), pg.HasNextPage)
	return err
}

func renderAnime(w io.Writer, a *jikan.Anime) error {
	genres := make([]string, 0, len(a.Genres))
	for _, g := range a.Genres {
		genres = append(genres, g.Name)
	}
	rows := [][]string{
		{"ID", strconv.Itoa(a.MalID)},
		{"Title", a.Title},
		{"English", optStr(a.TitleEnglish)},
		{"Japanese", optStr(a.TitleJapanese)},
		{"Type", optStr(a.Type)},
		{"Episodes", optInt(a.Episodes)},
		{"Score", scoreLabel(a.Score)},
		{"Year", optInt(a.Year)},
		{"Status", a.Status},
		{"Genres", strings.Join(genres, ", ")},
		{"Image", a.BestImage()},
	}
	if err := renderTable(w, []string{"Field", "Value"}, rows); err != nil {
		return err
	}
	if s := strings.TrimSpace(a.Synopsis); s != "" {
		_, err := fmt.Fprintf(w, "\n%s\n", s)
		return err
	}
	return nil
}

func renderEpisodes(w io.Writer, eps []jikan.Episode, info jikan.PageInfo) error {
	rows := make([][]string, 0, len(eps))
	for _, e := range eps {
		rows = append(rows, []string{
			strconv.Itoa(e.MalID),
			optStr(e.Title),
			optStr(e.Aired),
			scoreLabel(e.Score),
			flag(e.Filler),
			flag(e.Recap),
		})
	}
	if err := renderTable(w, []string{"#", "Title", "Aired", "Score", "Filler", "Recap"}, rows); err != nil {
		return err
	}
	return pageFooter(w, len(eps), info)
}

func renderReviews(w io.Writer, reviews []jikan.Review, info jikan.PageInfo) error {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		reactions := "-"
		if r.Reactions != nil {
			reactions = strconv.Itoa(r.Reactions.Overall)
		}
		score := r.Score
		rows = append(rows, []string{
			strconv.Itoa(r.MalID),
			r.User.Username,
			scoreLabel(&score),
			r.Date,
			reactions,
			strings.Join(r.Tags, ", "),
			flag(r.IsSpoiler),
		})
	}
	if err := renderTable(w, []string{"ID", "User", "Score", "Date", "Reactions", "Tags", "Spoiler"}, rows); err != nil {
		return err
	}
	return pageFooter(w, len(reviews), info)
}

func renderPromos(w io.Writer, p *jikan.PromoPage) error {
	rows := make([][]string, 0, len(p.Data))
	for _, pr := range p.Data {
		rows = append(rows, []string{
			strconv.Itoa(pr.Entry.MalID),
			pr.Entry.Title,
			optStr(pr.Title),
			optStr(pr.Trailer.URL),
		})
	}
	if err := renderTable(w, []string{"ID", "Anime", "Promo", "Trailer"}, rows); err != nil {
		return err
	}
	return pageFooter(w, len(p.Data), p.Pagination)
}

func renderRecommendations(w io.Writer, recs []jikan.Recommendation) error {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{strconv.Itoa(r.Entry.MalID), r.Entry.Title, strconv.Itoa(r.Votes)})
	}
	return renderTable(w, []string{"ID", "Title", "Votes"}, rows)
}

func renderVideos(w io.Writer, v *jikan.AnimeVideos) error {
	var rows [][]string
	for _, p := range v.Promo {
		rows = append(rows, []string{"promo", p.Title, optStr(p.Trailer.URL)})
	}
	for _, e := range v.Episodes {
		rows = append(rows, []string{"episode", e.Episode + " " + e.Title, e.URL})
	}
	for _, m := range v.MusicVideos {
		title := m.Title
		if m.Meta.Author != "" {
			title += " (" + m.Meta.Author + ")"
		}
		rows = append(rows, []string{"music", title, optStr(m.Video.URL)})
	}
	return renderTable(w, []string{"Kind", "Title", "URL"}, rows)
}

func renderDashboard(w io.Writer, d *jikan.Dashboard) error {
	sections := []struct {
		title  string
		render func() error
	}{
		{"Top anime", func() error { return renderAnimePage(w, d.Top) }},
		{"This season", func() error { return renderAnimePage(w, d.Season) }},
		{"Popular promos", func() error { return renderPromos(w, d.Promos) }},
	}
	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", s.title); err != nil {
			return err
		}
		if err := s.render(); err != nil {
			return err
		}
	}
	return nil
}

func pageFooter(w io.Writer, shown int, info jikan.PageInfo) error {
	cur := "?"
	if info.CurrentPage != nil {
		cur = strconv.Itoa(*info.CurrentPage)
	}
	_, err := fmt.Fprintf(w, "Page %s of %d, %d shown, more: %t\n", cur, info.LastVisiblePage, shown, info.HasNextPage)
	return err
}

// scoreLabel colours a 0-10 score: green from 8, yellow from 6, red below.
func scoreLabel(score *float64) string {
	if score == nil {
		return dim.Sprint("-")
	}
	s := strconv.FormatFloat(*score, 'f', 2, 64)
	switch {
	case *score >= 8:
		return highScore.Sprint(s)
	case *score >= 6:
		return midScore.Sprint(s)
	default:
		return lowScore.Sprint(s)
	}
}

func optStr(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func optInt(p *int) string {
	if p == nil {
		return "-"
	}
	return strconv.Itoa(*p)
}

func flag(p *bool) string {
	if p == nil {
		return "-"
	}
	if *p {
		return "yes"
	}
	return "no"
}
