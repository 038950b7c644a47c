package jikan

// The types below double as the response schemas. decode derives the
// structural rules from them:
//
//   - plain fields are required and must not be null
//   - pointer fields may be null or absent
//   - fields tagged omitempty may be absent
//
// validate tags add value constraints on top of the shape.

// ImageURLs is one image format of an ImageSet.
type ImageURLs struct {
	ImageURL      string  `json:"image_url"`
	SmallImageURL *string `json:"small_image_url"`
	LargeImageURL *string `json:"large_image_url"`
}

// ImageSet holds per-format image URLs of a catalogue entry.
type ImageSet struct {
	JPG  ImageURLs `json:"jpg"`
	WebP ImageURLs `json:"webp"`
}

type Genre struct {
	MalID int    `json:"mal_id" validate:"gt=0"`
	Name  string `json:"name"`
}

type Anime struct {
	MalID         int      `json:"mal_id" validate:"gt=0"`
	URL           *string  `json:"url"`
	Title         string   `json:"title"`
	TitleEnglish  *string  `json:"title_english"`
	TitleJapanese *string  `json:"title_japanese"`
	Type          *string  `json:"type"`
	Synopsis      string   `json:"synopsis"`
	Images        ImageSet `json:"images"`
	Genres        []Genre  `json:"genres" validate:"dive"`
	Episodes      *int     `json:"episodes" validate:"omitempty,gte=0"`
	Score         *float64 `json:"score" validate:"omitempty,gte=0,lte=10"`
	Year          *int     `json:"year"`
	Rank          *int     `json:"rank"`
	Status        string   `json:"status"`
}

// BestImage prefers the large webp rendition, then large jpg, then the
// default jpg URL.
func (a *Anime) BestImage() string {
	if a.Images.WebP.LargeImageURL != nil && *a.Images.WebP.LargeImageURL != "" {
		return *a.Images.WebP.LargeImageURL
	}
	if a.Images.JPG.LargeImageURL != nil && *a.Images.JPG.LargeImageURL != "" {
		return *a.Images.JPG.LargeImageURL
	}
	return a.Images.JPG.ImageURL
}

type PaginationItems struct {
	Count   int `json:"count" validate:"gte=0"`
	Total   int `json:"total" validate:"gte=0"`
	PerPage int `json:"per_page" validate:"gte=0"`
}

// Pagination is the full pagination block sent with anime lists.
type Pagination struct {
	LastVisiblePage *int            `json:"last_visible_page"`
	HasNextPage     bool            `json:"has_next_page"`
	CurrentPage     int             `json:"current_page" validate:"gte=1"`
	Items           PaginationItems `json:"items"`
}

// PageInfo is the pagination block sent with episodes, reviews and promos.
// Fields beyond last_visible_page and has_next_page are kept when upstream
// sends them.
type PageInfo struct {
	LastVisiblePage int              `json:"last_visible_page" validate:"gte=0"`
	HasNextPage     bool             `json:"has_next_page"`
	CurrentPage     *int             `json:"current_page"`
	Items           *PaginationItems `json:"items"`
}

// AnimePage is a page of /top/anime, /anime?q= or /seasons/now.
type AnimePage struct {
	Data       []Anime    `json:"data" validate:"dive"`
	Pagination Pagination `json:"pagination"`
}

type animeEnvelope struct {
	Data Anime `json:"data"`
}

// TrailerImages are the thumbnails of a YouTube trailer.
type TrailerImages struct {
	ImageURL        string  `json:"image_url"`
	SmallImageURL   *string `json:"small_image_url"`
	MediumImageURL  *string `json:"medium_image_url"`
	LargeImageURL   *string `json:"large_image_url"`
	MaximumImageURL *string `json:"maximum_image_url"`
}

type Trailer struct {
	YoutubeID *string       `json:"youtube_id"`
	URL       *string       `json:"url"`
	EmbedURL  *string       `json:"embed_url"`
	Images    TrailerImages `json:"images"`
}

type Promo struct {
	Title   string  `json:"title"`
	Trailer Trailer `json:"trailer"`
}

type MusicVideoMeta struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

type MusicVideo struct {
	Title string         `json:"title"`
	Video Trailer        `json:"video"`
	Meta  MusicVideoMeta `json:"meta"`
}

type EpisodeVideoImage struct {
	ImageURL string `json:"image_url"`
}

type EpisodeVideoImages struct {
	JPG EpisodeVideoImage `json:"jpg"`
}

// EpisodeVideo is an episode preview listed under /anime/{id}/videos.
type EpisodeVideo struct {
	MalID   int                `json:"mal_id" validate:"gt=0"`
	Title   string             `json:"title"`
	Episode string             `json:"episode"`
	URL     string             `json:"url"`
	Images  EpisodeVideoImages `json:"images"`
}

// AnimeVideos bundles promos, episode videos and music videos of one title.
type AnimeVideos struct {
	Promo       []Promo        `json:"promo" validate:"dive"`
	Episodes    []EpisodeVideo `json:"episodes" validate:"dive"`
	MusicVideos []MusicVideo   `json:"music_videos" validate:"dive"`
}

type videosEnvelope struct {
	Data AnimeVideos `json:"data"`
}

// CatalogEntry is the short anime reference embedded in promos and
// recommendations.
type CatalogEntry struct {
	MalID  int      `json:"mal_id" validate:"gt=0"`
	URL    string   `json:"url"`
	Images ImageSet `json:"images"`
	Title  string   `json:"title"`
}

type WatchPromo struct {
	Title   *string      `json:"title"`
	Entry   CatalogEntry `json:"entry"`
	Trailer Trailer      `json:"trailer"`
}

// PromoPage is a page of /watch/promos/popular.
type PromoPage struct {
	Data       []WatchPromo `json:"data" validate:"dive"`
	Pagination PageInfo     `json:"pagination"`
}

type Recommendation struct {
	Entry CatalogEntry `json:"entry"`
	URL   string       `json:"url"`
	Votes int          `json:"votes" validate:"gte=0"`
}

type recommendationsEnvelope struct {
	Data []Recommendation `json:"data" validate:"dive"`
}

type Episode struct {
	MalID         int      `json:"mal_id" validate:"gt=0"`
	URL           string   `json:"url"`
	Title         *string  `json:"title"`
	TitleJapanese *string  `json:"title_japanese"`
	TitleRomanji  *string  `json:"title_romanji"`
	Aired         *string  `json:"aired"`
	Score         *float64 `json:"score"`
	Filler        *bool    `json:"filler"`
	Recap         *bool    `json:"recap"`
	ForumURL      *string  `json:"forum_url"`
}

// EpisodePage is a page of /anime/{id}/episodes.
type EpisodePage struct {
	Data       []Episode `json:"data" validate:"dive"`
	Pagination PageInfo  `json:"pagination"`
}

// Reactions is the reaction tally of a review. Only overall is guaranteed.
type Reactions struct {
	Overall     int  `json:"overall" validate:"gte=0"`
	Nice        *int `json:"nice"`
	LoveIt      *int `json:"love_it"`
	Funny       *int `json:"funny"`
	Confusing   *int `json:"confusing"`
	Informative *int `json:"informative"`
	WellWritten *int `json:"well_written"`
	Creative    *int `json:"creative"`
}

type AvatarImage struct {
	ImageURL string `json:"image_url"`
}

type UserImages struct {
	JPG  *AvatarImage `json:"jpg"`
	WebP *AvatarImage `json:"webp"`
}

type ReviewUser struct {
	Username string      `json:"username"`
	URL      *string     `json:"url"`
	Images   *UserImages `json:"images"`
}

type Review struct {
	MalID           int        `json:"mal_id" validate:"gt=0"`
	URL             *string    `json:"url"`
	Type            string     `json:"type"`
	Reactions       *Reactions `json:"reactions"`
	Date            string     `json:"date"`
	Review          string     `json:"review"`
	Score           float64    `json:"score" validate:"gte=0"`
	Tags            []string   `json:"tags,omitempty"`
	IsSpoiler       *bool      `json:"is_spoiler"`
	IsPreliminary   *bool      `json:"is_preliminary"`
	EpisodesWatched *int       `json:"episodes_watched"`
	User            ReviewUser `json:"user"`
}

// ReviewPage is a page of /anime/{id}/reviews.
type ReviewPage struct {
	Data       []Review `json:"data" validate:"dive"`
	Pagination PageInfo `json:"pagination"`
}
