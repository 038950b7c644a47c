package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/example/anime-catalog/internal/jikan"
	"github.com/example/anime-catalog/internal/jikan/mocks"
	"github.com/example/anime-catalog/internal/platform/auth"
)

func ptr[T any](v T) *T { return &v }

func run(t *testing.T, p jikan.Provider, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out, func(Settings, *zap.Logger) jikan.Provider { return p })
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--no-color"}, args...))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func animePage(hasNext bool, titles ...string) *jikan.AnimePage {
	p := &jikan.AnimePage{Pagination: jikan.Pagination{CurrentPage: 1, HasNextPage: hasNext, LastVisiblePage: ptr(40)}}
	for i, title := range titles {
		p.Data = append(p.Data, jikan.Anime{MalID: i + 1, Title: title, Status: "Airing", Score: ptr(8.5), Rank: ptr(i + 1)})
	}
	return p
}

func reviewPage(hasNext bool, ids ...int) *jikan.ReviewPage {
	p := &jikan.ReviewPage{Pagination: jikan.PageInfo{LastVisiblePage: 3, HasNextPage: hasNext}}
	for _, id := range ids {
		p.Data = append(p.Data, jikan.Review{MalID: id, Type: "anime", Date: "2024-01-01", Review: "r", Score: 7, User: jikan.ReviewUser{Username: "u"}})
	}
	return p
}

func TestTop_Table(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().TopAnime(gomock.Any(), 2, "airing").Return(animePage(true, "Frieren", "Bebop"), nil)

	out, err := run(t, p, "top", "--page", "2", "--filter", "airing")
	require.NoError(t, err)
	assert.Contains(t, out, "Frieren")
	assert.Contains(t, out, "Bebop")
	assert.Contains(t, out, "8.50")
	assert.Contains(t, out, "Page 1 of 40, 2 shown, more: true")
}

func TestSearch_JSON(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().SearchAnime(gomock.Any(), "zzzznotreal").Return(&jikan.AnimePage{Data: []jikan.Anime{}}, nil)

	out, err := run(t, p, "--json", "search", "zzzznotreal")
	require.NoError(t, err)

	var page jikan.AnimePage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Empty(t, page.Data)
}

func TestAnime_InvalidID(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))

	_, err := run(t, p, "anime", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive integer")
}

func TestAnime_Detail(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().AnimeByID(gomock.Any(), 1).Return(&jikan.Anime{
		MalID:    1,
		Title:    "Cowboy Bebop",
		Synopsis: "Space bounty hunters.",
		Genres:   []jikan.Genre{{MalID: 1, Name: "Action"}, {MalID: 24, Name: "Sci-Fi"}},
		Images:   jikan.ImageSet{JPG: jikan.ImageURLs{ImageURL: "https://cdn.example/1.jpg"}},
	}, nil)

	out, err := run(t, p, "anime", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Cowboy Bebop")
	assert.Contains(t, out, "Action, Sci-Fi")
	assert.Contains(t, out, "Space bounty hunters.")
}

func TestReviews_MergesPages(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	gomock.InOrder(
		p.EXPECT().Reviews(gomock.Any(), 5, 1).Return(reviewPage(true, 10, 11, 12), nil),
		p.EXPECT().Reviews(gomock.Any(), 5, 2).Return(reviewPage(false, 12, 13), nil),
	)

	out, err := run(t, p, "--json", "reviews", "5", "--pages", "5")
	require.NoError(t, err)

	var page jikan.ReviewPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	ids := make([]int, 0, len(page.Data))
	for _, r := range page.Data {
		ids = append(ids, r.MalID)
	}
	assert.Equal(t, []int{10, 11, 12, 13}, ids)
	assert.False(t, page.Pagination.HasNextPage)
}

func TestEpisodes_SinglePage(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().Episodes(gomock.Any(), 5, 3).Return(&jikan.EpisodePage{
		Data:       []jikan.Episode{{MalID: 1, Title: ptr("Asteroid Blues"), Filler: ptr(false)}},
		Pagination: jikan.PageInfo{LastVisiblePage: 3, HasNextPage: true, CurrentPage: ptr(3)},
	}, nil)

	out, err := run(t, p, "episodes", "5", "--page", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Asteroid Blues")
	assert.Contains(t, out, "Page 3 of 3, 1 shown, more: true")
}

func TestRecommendations_NilIsEmptyJSON(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().Recommendations(gomock.Any(), 7).Return(nil, nil)

	out, err := run(t, p, "--json", "recs", "7")
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(out))
}

func TestDashboard_Sections(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().Dashboard(gomock.Any()).Return(&jikan.Dashboard{
		Top:    animePage(true, "Frieren"),
		Season: animePage(false, "Dandadan"),
		Promos: &jikan.PromoPage{Data: []jikan.WatchPromo{{
			Title: ptr("PV 2"),
			Entry: jikan.CatalogEntry{MalID: 3, Title: "Kaiju"},
		}}},
	}, nil)

	out, err := run(t, p, "dashboard")
	require.NoError(t, err)
	for _, want := range []string{"== Top anime ==", "Frieren", "== This season ==", "Dandadan", "== Popular promos ==", "Kaiju", "PV 2"} {
		assert.Contains(t, out, want)
	}
}

func TestUpstreamErrorPropagates(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))
	p.EXPECT().SeasonNow(gomock.Any()).Return(nil, &jikan.RateLimitError{URL: "u"})

	_, err := run(t, p, "season")
	require.Error(t, err)
	assert.Equal(t, jikan.KindRateLimit, jikan.Kind(err))
}

func TestToken_Mint(t *testing.T) {
	p := mocks.NewMockProvider(gomock.NewController(t))

	out, err := run(t, p, "token", "--admin-secret", "s3cret", "--subject", "ops")
	require.NoError(t, err)

	claims, err := auth.JWTVerifier{Secret: []byte("s3cret")}.Parse(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestToken_RequiresSecret(t *testing.T) {
	t.Setenv("JIKANCTL_ADMIN_SECRET", "")
	p := mocks.NewMockProvider(gomock.NewController(t))

	_, err := run(t, p, "token")
	assert.Error(t, err)
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "-", scoreLabel(nil))
	assert.Equal(t, "9.10", scoreLabel(ptr(9.1)))
	assert.Equal(t, "5.00", scoreLabel(ptr(5.0)))
}
