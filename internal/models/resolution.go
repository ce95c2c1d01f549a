package models

// Resolution is the orchestrator's only output. The zero value means "no
// acceptable match found", which is a legitimate outcome, not an error.
type Resolution struct {
	IMDBID string  `json:"imdbId"`
	Rating float64 `json:"rating"`
	Votes  int     `json:"votes"`
}

// Resolved reports whether an external identifier was accepted.
func (r Resolution) Resolved() bool {
	return r.IMDBID != ""
}
