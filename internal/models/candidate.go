package models

// Candidate is one search hit from the external catalog. It is ephemeral:
// produced per search call, consumed by prioritization and validation, never
// persisted. Nothing in a Candidate is authoritative until the detail page
// behind its ID has been validated.
type Candidate struct {
	ID    string    `json:"id"`    // External identifier, "tt" followed by digits
	Title string    `json:"title"` // Display title as shown in the result list
	Year  string    `json:"year"`  // Optional, may be a range like "2019-2022"
	Text  string    `json:"text"`  // Raw descriptive text, may embed several years
	Type  TitleType `json:"type"`  // Optional type hint from the result layout
}
