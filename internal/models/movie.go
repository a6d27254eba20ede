package models

import (
	"time"
)

// Movie is a locally cached snapshot of a TMDB catalog entry. The primary key
// is the TMDB id itself, so the row is shared by every user who liked it.
// All metadata columns besides the title are nullable: rows created by older
// clients may carry gaps that later likes fill in.
type Movie struct {
	ID          uint     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	MovieName   string   `gorm:"size:255;not null" json:"movie_name"`
	PosterPath  *string  `gorm:"size:255" json:"poster_path"`
	PosterURL   *string  `gorm:"size:500" json:"poster_url"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `gorm:"size:10" json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// MovieSnapshot is the denormalized metadata a client sends when liking a
// movie. Optional fields are pointers so "absent" and "empty" are distinguishable.
type MovieSnapshot struct {
	ID          uint     `json:"id"`
	MovieName   string   `json:"movie_name"`
	PosterPath  *string  `json:"poster_path"`
	PosterURL   *string  `json:"poster_url"`
	Overview    *string  `json:"overview"`
	ReleaseDate *string  `json:"release_date"`
	VoteAverage *float64 `json:"vote_average"`
}

// NewMovieFromSnapshot builds a Movie row from the first-ever like payload.
func NewMovieFromSnapshot(snap MovieSnapshot) *Movie {
	return &Movie{
		ID:          snap.ID,
		MovieName:   snap.MovieName,
		PosterPath:  snap.PosterPath,
		PosterURL:   snap.PosterURL,
		Overview:    snap.Overview,
		ReleaseDate: snap.ReleaseDate,
		VoteAverage: snap.VoteAverage,
	}
}

// Backfill copies non-nil snapshot fields into columns that are still empty.
// Populated columns are never overwritten: the first stored snapshot stays
// authoritative and later likes only repair gaps. Returns true if any column
// changed.
func (m *Movie) Backfill(snap MovieSnapshot) bool {
	changed := false
	if emptyStr(m.PosterPath) && !emptyStr(snap.PosterPath) {
		m.PosterPath = snap.PosterPath
		changed = true
	}
	if emptyStr(m.PosterURL) && !emptyStr(snap.PosterURL) {
		m.PosterURL = snap.PosterURL
		changed = true
	}
	if emptyStr(m.Overview) && !emptyStr(snap.Overview) {
		m.Overview = snap.Overview
		changed = true
	}
	if emptyStr(m.ReleaseDate) && !emptyStr(snap.ReleaseDate) {
		m.ReleaseDate = snap.ReleaseDate
		changed = true
	}
	if (m.VoteAverage == nil || *m.VoteAverage == 0) && snap.VoteAverage != nil && *snap.VoteAverage != 0 {
		m.VoteAverage = snap.VoteAverage
		changed = true
	}
	return changed
}

func emptyStr(s *string) bool {
	return s == nil || *s == ""
}
