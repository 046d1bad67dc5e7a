// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Movie is a single entry of a listing returned by discover or search.
// Only the fields rendered by the pages are decoded.
type Movie struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	OriginalTitle string  `json:"original_title"`
	Overview      string  `json:"overview"`
	PosterPath    string  `json:"poster_path"`
	BackdropPath  string  `json:"backdrop_path"`
	ReleaseDate   string  `json:"release_date"`
	VoteAverage   float64 `json:"vote_average"`
	VoteCount     int64   `json:"vote_count"`
	Popularity    float64 `json:"popularity"`
	GenreIDs      []int   `json:"genre_ids"`
	Adult         bool    `json:"adult"`
}

// MovieList is the {results: [...]} envelope of listing endpoints.
//
// Results stays nil when the key is missing from the body, which is how an
// unusable upstream answer is told apart from an empty listing.
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// MovieDetail is the single-title payload of /movie/{id}.
type MovieDetail struct {
	ID               int64   `json:"id"`
	IMDbID           string  `json:"imdb_id"`
	Title            string  `json:"title"`
	OriginalTitle    string  `json:"original_title"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	ReleaseDate      string  `json:"release_date"`
	Runtime          int     `json:"runtime"`
	Status           string  `json:"status"`
	Homepage         string  `json:"homepage"`
	OriginalLanguage string  `json:"original_language"`
	Budget           int64   `json:"budget"`
	Revenue          int64   `json:"revenue"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Genres           []Genre `json:"genres"`
}

// CastMember is one billed actor of a title.
type CastMember struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Character   string `json:"character"`
	ProfilePath string `json:"profile_path"`
	Order       int    `json:"order"`
}

// Credits is the {cast: [...]} envelope of /movie/{id}/credits.
// Cast is nil when the key is missing from the body.
type Credits struct {
	ID   int64        `json:"id"`
	Cast []CastMember `json:"cast"`
}

// MoviePage is everything the movie detail page needs.
type MoviePage struct {
	Detail MovieDetail
	Cast   []CastMember
}

// GenrePage is a genre-filtered listing with the resolved genre name.
// Name is empty and Known is false when the id is not in the genre table.
type GenrePage struct {
	ID     int
	Name   string
	Known  bool
	Movies []Movie
}
