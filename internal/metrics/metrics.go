package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Resolution pipeline metrics
var (
	// IMDBSearchesTotal counts IMDb find-page fetches by the result-list
	// layout the parser recognized ("legacy", "modern" or "empty").
	IMDBSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "imdb_searches_total",
			Help: "Total number of IMDb search result pages parsed.",
		},
		[]string{"layout"},
	)

	// IMDBSoftBlocksTotal counts searches abandoned because IMDb kept
	// answering 202 after the retry.
	IMDBSoftBlocksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "imdb_soft_blocks_total",
			Help: "Total number of IMDb requests given up on due to soft blocking.",
		},
	)

	// CandidatesValidatedTotal counts candidate verdicts by result
	// ("accepted", "type_rejected" or "mismatch").
	CandidatesValidatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "candidates_validated_total",
			Help: "Total number of search candidates checked against the source film.",
		},
		[]string{"result"},
	)

	// ResolutionsTotal counts finished resolutions by status
	// ("matched", "unmatched" or "error").
	ResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolutions_total",
			Help: "Total number of film resolutions attempted.",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(
		IMDBSearchesTotal,
		IMDBSoftBlocksTotal,
		CandidatesValidatedTotal,
		ResolutionsTotal,
	)
}
