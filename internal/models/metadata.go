package models

// TitleMetadata is the authoritative snapshot extracted from a candidate's
// detail page: structured data when the page carries it, the page title text
// as fallback. Zero values mean the field could not be extracted; rating 0
// with votes 0 means no rating was published.
type TitleMetadata struct {
	Year      string    `json:"year"`
	Directors []string  `json:"directors"`
	Rating    float64   `json:"rating"`
	Votes     int       `json:"votes"`
	Type      TitleType `json:"type"`
}
