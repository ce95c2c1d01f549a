package resolver

import (
	"context"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/metrics"
	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/text"
)

// validate fetches the detail page behind a candidate id and decides whether
// it describes the seed film. A fetch failure rejects the candidate but never
// aborts the run; the next candidate may still validate fine. yearHint is the
// year gleaned from the search listing, consulted only when the detail page
// itself carries none.
func (r *Resolver) validate(ctx context.Context, id string, film *models.Film, yearHint string) (bool, *models.TitleMetadata) {
	log := config.GetLogger()

	meta, err := r.catalog.TitleMetadata(ctx, id)
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("Failed to fetch title metadata")
		return false, nil
	}

	if meta.Type.Rejected() {
		log.Debug().Str("id", id).Str("type", meta.Type.String()).Msg("Candidate rejected by title type")
		metrics.CandidatesValidatedTotal.WithLabelValues("type_rejected").Inc()
		return false, nil
	}

	if !judge(film, meta, yearHint, r.validateTolerance) {
		log.Debug().Str("id", id).Str("year", meta.Year).Strs("directors", meta.Directors).Msg("Candidate metadata does not match film")
		metrics.CandidatesValidatedTotal.WithLabelValues("mismatch").Inc()
		return false, nil
	}

	metrics.CandidatesValidatedTotal.WithLabelValues("accepted").Inc()
	return true, meta
}

// judge applies the year and director checks. A seed with neither field has
// nothing to check against and accepts any candidate that survived the type
// gate.
func judge(film *models.Film, meta *models.TitleMetadata, yearHint string, tolerance int) bool {
	hasYear := film.Year != ""
	hasDirectors := len(film.Directors) > 0
	if !hasYear && !hasDirectors {
		return true
	}

	candidateYear := meta.Year
	if candidateYear == "" {
		candidateYear = yearHint
	}
	yearValid := candidateYear != "" && text.YearsMatch(film.Year, candidateYear, tolerance)
	directorsValid := containsAllDirectors(film.Directors, meta.Directors)

	switch {
	case hasYear && hasDirectors:
		// A candidate page listing no directors at all cannot contradict the
		// seed, so a year match alone carries it.
		if yearValid && len(meta.Directors) == 0 {
			return true
		}
		return yearValid && directorsValid
	case hasYear:
		return yearValid
	default:
		return directorsValid
	}
}

// containsAllDirectors reports whether every seed director appears in the
// candidate's director list, compared in normalized form. Extra candidate
// directors are fine; an empty candidate list never contains anything.
func containsAllDirectors(seed, candidate []string) bool {
	if len(candidate) == 0 {
		return false
	}

	have := make(map[string]bool, len(candidate))
	for _, name := range candidate {
		have[text.NormalizePersonName(name)] = true
	}
	for _, name := range seed {
		if !have[text.NormalizePersonName(name)] {
			return false
		}
	}
	return true
}
