package models

import "time"

// CrewMember is one supplemental-source crew credit carried into the merged
// record verbatim.
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// MergedFilm is the union of the seed record, the resolution outcome and the
// supplemental catalog record under the fixed precedence rules of the merge
// step. Built once per resolution run and stored as a document; only the
// rating-refresh flow updates it afterward.
type MergedFilm struct {
	CSFDID        int64             `json:"csfdId"`
	Title         string            `json:"title"`
	OriginalTitle string            `json:"originalTitle"`
	Year          string            `json:"year"`
	Duration      int               `json:"duration"`
	Genres        []string          `json:"genres"`
	Directors     []string          `json:"directors"`
	Cast          []string          `json:"cast"`
	Titles        map[string]string `json:"titles"`
	Description   string            `json:"description"` // Primary-language plot text, from the seed
	Origin        string            `json:"origin"`
	OriginCodes   []string          `json:"originCodes"` // ISO 3166-1 alpha-2
	CSFDRating    float64           `json:"csfdRating"`
	CSFDPosterURL string            `json:"csfdPosterUrl"` // Seed poster, retained verbatim

	IMDBID     string  `json:"imdbId"`
	IMDBRating float64 `json:"imdbRating"`
	IMDBVotes  int     `json:"imdbVotes"`

	TMDBID           int64        `json:"tmdbId"`
	Overview         string       `json:"overview"` // Secondary-language plot text, from the supplement
	PosterURL        string       `json:"posterUrl"`
	BackdropURL      string       `json:"backdropUrl"`
	ReleaseDate      *time.Time   `json:"releaseDate"`
	VoteAverage      float64      `json:"voteAverage"`
	VoteCount        int          `json:"voteCount"`
	Popularity       float64      `json:"popularity"`
	OriginalLanguage string       `json:"originalLanguage"`
	Adult            bool         `json:"adult"`
	Homepage         string       `json:"homepage"`
	TrailerURL       string       `json:"trailerUrl"`
	Crew             []CrewMember `json:"crew"`
}
