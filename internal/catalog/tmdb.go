// Package catalog implements the client for the TMDB movie catalog API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.themoviedb.org/3"
	imageBaseURL   = "https://image.tmdb.org/t/p/w500"
)

// genreNames maps TMDB genre ids to display names. TMDB serves the list from a
// separate endpoint; it changes rarely enough to keep a static copy.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// MovieSummary is one entry of a catalog listing page.
type MovieSummary struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	PosterPath  *string  `json:"poster_path"`
	PosterURL   *string  `json:"poster_url"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	VoteAverage float64  `json:"vote_average"`
	GenreIDs    []int    `json:"genre_ids"`
	Genres      []string `json:"genres"`
}

// Page is one page of catalog results.
type Page struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
	Results      []MovieSummary `json:"results"`
}

// Client talks to the TMDB API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Intended for tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient returns a TMDB client using the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Browse fetches one page of movies. A non-empty name searches by title
// (optionally narrowed by year); a year alone lists that year's releases by
// popularity; neither lists currently popular movies.
func (c *Client) Browse(ctx context.Context, name string, year, page int) (*Page, error) {
	var endpoint string
	params := url.Values{}

	switch {
	case name != "":
		endpoint = c.baseURL + "/search/movie"
		params.Set("query", name)
		if year > 0 {
			params.Set("year", strconv.Itoa(year))
		}
	case year > 0:
		endpoint = c.baseURL + "/discover/movie"
		params.Set("primary_release_year", strconv.Itoa(year))
		params.Set("sort_by", "popularity.desc")
	default:
		endpoint = c.baseURL + "/movie/popular"
	}

	if page <= 0 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var result Page
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode catalog response: %w", err)
	}

	for i := range result.Results {
		m := &result.Results[i]
		if m.PosterPath != nil && *m.PosterPath != "" {
			full := imageBaseURL + *m.PosterPath
			m.PosterURL = &full
		}
		m.Genres = GenreNames(m.GenreIDs)
	}

	return &result, nil
}

// GenreNames converts TMDB genre ids to display names, skipping unknown ids.
func GenreNames(ids []int) []string {
	var names []string
	for _, id := range ids {
		if name, ok := genreNames[id]; ok {
			names = append(names, name)
		}
	}
	return names
}
