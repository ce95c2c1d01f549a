package models

// Film is the seed record scraped from the ČSFD film page. It is the
// immutable input to identity resolution; the resolver reads it and never
// mutates it.
type Film struct {
	CSFDID        int64             `json:"csfdId"`
	Title         string            `json:"title"`
	OriginalTitle string            `json:"originalTitle"`
	Year          string            `json:"year"` // Free text, may carry non-digit noise
	Directors     []string          `json:"directors"`
	Genres        []string          `json:"genres"`
	Cast          []string          `json:"cast"`
	Duration      int               `json:"duration"` // Minutes
	Origin        string            `json:"origin"`   // May list several countries separated by "/" or ","
	Titles        map[string]string `json:"titles"`   // Country/locale label -> localized title
	Description   string            `json:"description"`
	PosterURL     string            `json:"posterUrl"`
	Rating        float64           `json:"rating"` // ČSFD percentage, 0-100
}
