package imdb

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/steelspace/kinograb/internal/config"
	"github.com/steelspace/kinograb/internal/models"
	"github.com/steelspace/kinograb/internal/text"
)

// ldNode is the subset of a structured-data block the extractor reads.
// Field shapes vary across pages (single object vs array, number vs quoted
// string), so the loose fields stay raw and get coerced afterwards.
type ldNode struct {
	Type          json.RawMessage   `json:"@type"`
	Graph         []json.RawMessage `json:"@graph"`
	DatePublished string            `json:"datePublished"`
	DateCreated   string            `json:"dateCreated"`
	Director      json.RawMessage   `json:"director"`
	ReleasedEvent json.RawMessage   `json:"releasedEvent"`
	Rating        *ldRating         `json:"aggregateRating"`
}

type ldRating struct {
	RatingValue json.RawMessage `json:"ratingValue"`
	RatingCount json.RawMessage `json:"ratingCount"`
}

type ldPerson struct {
	Name string `json:"name"`
}

type ldEvent struct {
	StartDate string `json:"startDate"`
}

// extraction is the result of reading one structured-data node. Nodes
// without a year lose to later nodes that have one, but their rating is
// still worth remembering.
type extraction struct {
	meta    models.TitleMetadata
	hasYear bool
}

// parenTypeMarkers tag non-movie entries in the page title, e.g.
// "Framed (TV Series 2008) - IMDb". Longer markers come first.
var parenTypeMarkers = []struct {
	marker string
	t      models.TitleType
}{
	{"(Podcast Series", models.TitleTypePodcastSeries},
	{"(Podcast Episode", models.TitleTypePodcastEpisode},
	{"(TV Mini Series", models.TitleTypeTVMiniSeries},
	{"(TV Series", models.TitleTypeTVSeries},
	{"(TV Episode", models.TitleTypeTVEpisode},
	{"(TV Movie", models.TitleTypeTVMovie},
	{"(TV Special", models.TitleTypeTVSpecial},
	{"(TV Short", models.TitleTypeTVShort},
	{"(Video Game", models.TitleTypeVideoGame},
	{"(Music Video", models.TitleTypeMusicVideo},
	{"(Short", models.TitleTypeShort},
	{"(Video", models.TitleTypeVideo},
}

var parenGroup = regexp.MustCompile(`\(([^)]*)\)`)

// parseTitleMetadata extracts the metadata snapshot from a title detail
// page. Structured data blocks are preferred; the first node carrying a year
// wins. When no block yields a year the page <title> text is the fallback,
// and a rating seen in any structured block is attached to it.
func parseTitleMetadata(body io.Reader) (*models.TitleMetadata, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse title page: %w", err)
	}

	var savedRating float64
	var savedVotes int
	var winner *models.TitleMetadata

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, script *goquery.Selection) bool {
		for _, node := range decodeStructuredNodes([]byte(script.Text())) {
			ext := extractFromNode(node)
			if ext.meta.Rating > 0 && savedRating == 0 {
				savedRating = ext.meta.Rating
				savedVotes = ext.meta.Votes
			}
			if !ext.hasYear {
				continue
			}
			m := ext.meta
			winner = &m
			return false
		}
		return true
	})

	if winner != nil {
		return winner, nil
	}

	meta := fallbackFromPageTitle(doc)
	meta.Rating = savedRating
	meta.Votes = savedVotes
	return meta, nil
}

// decodeStructuredNodes unmarshals one script block into its metadata nodes.
// A block holds either a single node or a @graph with several. Malformed
// blocks yield nothing; scanning continues with the next block.
func decodeStructuredNodes(raw []byte) []ldNode {
	var node ldNode
	if err := json.Unmarshal(raw, &node); err != nil {
		logger := config.GetLogger()
		logger.Debug().Err(err).Msg("Skipping malformed structured data block")
		return nil
	}
	if len(node.Graph) == 0 {
		return []ldNode{node}
	}

	nodes := make([]ldNode, 0, len(node.Graph))
	for _, rawNode := range node.Graph {
		var n ldNode
		if err := json.Unmarshal(rawNode, &n); err != nil {
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func extractFromNode(node ldNode) extraction {
	var ext extraction

	ext.meta.Type = nodeType(node.Type)
	ext.meta.Directors = personNames(node.Director)

	if node.Rating != nil {
		ext.meta.Rating = toFloat(node.Rating.RatingValue)
		ext.meta.Votes = int(toFloat(node.Rating.RatingCount))
	}

	for _, date := range []string{node.DatePublished, node.DateCreated, eventStartDate(node.ReleasedEvent)} {
		if y := text.ExtractYear(date); y != "" {
			ext.meta.Year = y
			ext.hasYear = true
			break
		}
	}

	return ext
}

// fallbackFromPageTitle reconstructs what it can from the <title> text, e.g.
// "Framed (TV Series 2008) - IMDb". The year is the first parenthesized
// 4-digit run; the type comes from literal markers in the same text.
func fallbackFromPageTitle(doc *goquery.Document) *models.TitleMetadata {
	meta := &models.TitleMetadata{}

	titleText := strings.TrimSpace(doc.Find("title").First().Text())
	if titleText == "" {
		return meta
	}

	for _, m := range parenGroup.FindAllStringSubmatch(titleText, -1) {
		if y := text.ExtractYear(m[1]); y != "" {
			meta.Year = y
			break
		}
	}
	for _, p := range parenTypeMarkers {
		if strings.Contains(titleText, p.marker) {
			meta.Type = p.t
			break
		}
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("title", titleText).
		Str("year", meta.Year).
		Msg("No structured data with a year, used page title")
	return meta
}

// nodeType reads a JSON-LD @type, which may be a single string or an array
// of them.
func nodeType(raw json.RawMessage) models.TitleType {
	if len(raw) == 0 {
		return models.TitleTypeUnknown
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return models.ParseTitleType(single)
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, label := range many {
			if t := models.ParseTitleType(label); t != models.TitleTypeUnknown {
				return t
			}
		}
	}
	return models.TitleTypeUnknown
}

// personNames reads a director field, which may be one person object or an
// array of them.
func personNames(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var one ldPerson
	if err := json.Unmarshal(raw, &one); err == nil && one.Name != "" {
		return []string{one.Name}
	}

	var many []ldPerson
	if err := json.Unmarshal(raw, &many); err == nil {
		names := make([]string, 0, len(many))
		for _, p := range many {
			if p.Name != "" {
				names = append(names, p.Name)
			}
		}
		if len(names) > 0 {
			return names
		}
	}
	return nil
}

// eventStartDate reads a releasedEvent field, one event object or an array.
func eventStartDate(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var one ldEvent
	if err := json.Unmarshal(raw, &one); err == nil && one.StartDate != "" {
		return one.StartDate
	}

	var many []ldEvent
	if err := json.Unmarshal(raw, &many); err == nil {
		for _, e := range many {
			if e.StartDate != "" {
				return e.StartDate
			}
		}
	}
	return ""
}

// toFloat coerces a rating field that may arrive as a number or a quoted
// string ("8.5").
func toFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}
	return 0
}
