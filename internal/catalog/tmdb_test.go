package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowse_SearchByName(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"total_pages": 1,
			"total_results": 1,
			"results": [{
				"id": 438631,
				"title": "Dune",
				"poster_path": "/dune.jpg",
				"overview": "Paul Atreides",
				"release_date": "2021-10-22",
				"vote_average": 7.8,
				"genre_ids": [878, 12]
			}]
		}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))
	page, err := client.Browse(context.Background(), "Dune", 2021, 1)
	require.NoError(t, err)

	assert.Equal(t, "/search/movie", gotPath)
	assert.Equal(t, "Dune", gotQuery["query"][0])
	assert.Equal(t, "2021", gotQuery["year"][0])
	assert.Equal(t, "test-key", gotQuery["api_key"][0])

	require.Len(t, page.Results, 1)
	m := page.Results[0]
	assert.Equal(t, uint(438631), m.ID)
	require.NotNil(t, m.PosterURL)
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/dune.jpg", *m.PosterURL)
	assert.Equal(t, []string{"Science Fiction", "Adventure"}, m.Genres)
}

func TestBrowse_EndpointSelection(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[]}`))
	}))
	defer srv.Close()

	client := NewClient("test-key", WithBaseURL(srv.URL))

	_, err := client.Browse(context.Background(), "", 2021, 1)
	require.NoError(t, err)
	assert.Equal(t, "/discover/movie", gotPath)

	_, err = client.Browse(context.Background(), "", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "/movie/popular", gotPath)
}

func TestBrowse_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient("bad-key", WithBaseURL(srv.URL))
	_, err := client.Browse(context.Background(), "Dune", 0, 1)
	assert.Error(t, err)
}

func TestGenreNames_SkipsUnknown(t *testing.T) {
	assert.Equal(t, []string{"Drama"}, GenreNames([]int{18, 99999}))
	assert.Nil(t, GenreNames(nil))
}
