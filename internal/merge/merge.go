// Package merge combines the seed record, the resolution outcome and the
// supplemental catalog record into one document under fixed precedence
// rules: descriptive fields the seed page curates stay the seed's, fields
// only the supplemental source has always come from it, and the two plot
// languages are kept side by side. The merge is pure; the same inputs always
// produce the same document.
package merge

import (
	"time"

	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/text"
	"github.com/steelspace/kinograb/internal/tmdb"
)

// Merge builds the stored document for a film. movie may be nil when the
// supplemental lookup found nothing; the seed side of the document is
// complete without it.
func Merge(film *models.Film, res models.Resolution, movie *tmdb.Movie) models.MergedFilm {
	merged := models.MergedFilm{
		CSFDID:        film.CSFDID,
		Title:         film.Title,
		OriginalTitle: film.OriginalTitle,
		Year:          film.Year,
		Duration:      film.Duration,
		Genres:        film.Genres,
		Directors:     film.Directors,
		Cast:          film.Cast,
		Titles:        film.Titles,
		Description:   film.Description,
		Origin:        film.Origin,
		OriginCodes:   CountryCodes(text.SplitCountries(film.Origin)),
		CSFDRating:    film.Rating,
		CSFDPosterURL: film.PosterURL,
		PosterURL:     film.PosterURL,

		IMDBID:     res.IMDBID,
		IMDBRating: res.Rating,
		IMDBVotes:  res.Votes,
	}

	if movie == nil {
		return merged
	}

	if merged.Title == "" {
		merged.Title = movie.Title
	}
	if merged.OriginalTitle == "" {
		merged.OriginalTitle = movie.OriginalTitle
	}
	if movie.PosterURL != "" {
		merged.PosterURL = movie.PosterURL
	}

	merged.TMDBID = movie.ID
	merged.Overview = movie.Overview
	merged.BackdropURL = movie.BackdropURL
	merged.ReleaseDate = parseReleaseDate(movie.ReleaseDate)
	merged.VoteAverage = movie.VoteAverage
	merged.VoteCount = movie.VoteCount
	merged.Popularity = movie.Popularity
	merged.OriginalLanguage = movie.OriginalLanguage
	merged.Adult = movie.Adult
	merged.Homepage = movie.Homepage
	merged.TrailerURL = movie.TrailerURL
	merged.Crew = movie.Crew

	return merged
}

// parseReleaseDate parses the supplemental source's date-only format. Blank
// or malformed dates simply vanish from the document.
func parseReleaseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
