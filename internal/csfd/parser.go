package csfd

import (
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

// imdbLink pulls the tt identifier out of an embedded IMDb link.
var imdbLink = regexp.MustCompile(`imdb\.com/title/(tt\d+)`)

// Document is a parsed film page. It keeps the goquery tree so resolution
// can look for the directly embedded IMDb link alongside the extracted seed.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses a film page from the given reader.
func NewDocument(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse film page: %w", err)
	}
	return &Document{doc: doc}, nil
}

// IMDBID returns the IMDb identifier the page links to directly, or an empty
// string when the page carries no such link.
func (d *Document) IMDBID() string {
	var id string
	d.doc.Find(`a[href*="imdb.com/title/"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, exists := link.Attr("href")
		if !exists {
			return true
		}
		m := imdbLink.FindStringSubmatch(href)
		if m == nil {
			return true
		}
		id = m[1]
		return false
	})
	return id
}

// Film extracts the seed record from the page. The caller fills in CSFDID.
func (d *Document) Film() (*models.Film, error) {
	film := &models.Film{
		Titles: make(map[string]string),
	}

	film.Title = strings.TrimSpace(d.doc.Find(".film-header h1").First().Text())
	if film.Title == "" {
		return nil, fmt.Errorf("film page has no title header")
	}

	// Alternative titles carry a flag image whose alt text names the country.
	// Annotations like "(pracovní název)" sit in a span next to the title.
	var firstAlternate string
	d.doc.Find(".film-names li").Each(func(_ int, item *goquery.Selection) {
		country := strings.TrimSpace(item.Find("img.flag").AttrOr("alt", ""))
		if country == "" {
			return
		}
		title := strings.TrimSpace(item.Contents().Not("span.info").Text())
		if title == "" {
			return
		}
		if firstAlternate == "" {
			firstAlternate = title
		}
		film.Titles[country] = title
	})

	// "USA / Velká Británie, 1998, 119 min"
	origin := strings.TrimSpace(d.doc.Find(".origin").First().Text())
	if origin != "" {
		parts := strings.Split(origin, ",")
		film.Origin = strings.TrimSpace(parts[0])
		for _, part := range parts[1:] {
			part = strings.TrimSpace(part)
			if film.Year == "" {
				if y := text.ExtractYear(part); y != "" {
					film.Year = y
					continue
				}
			}
			if strings.HasSuffix(part, "min") {
				value := strings.TrimSpace(strings.TrimSuffix(part, "min"))
				if minutes, err := strconv.Atoi(value); err == nil {
					film.Duration = minutes
				}
			}
		}
	}

	// The original title is the alternate listed for the first origin
	// country; without one, the first alternate in document order.
	if countries := text.SplitCountries(film.Origin); len(countries) > 0 {
		for country, title := range film.Titles {
			if strings.EqualFold(country, countries[0]) {
				film.OriginalTitle = title
				break
			}
		}
	}
	if film.OriginalTitle == "" {
		film.OriginalTitle = firstAlternate
	}

	d.doc.Find(".genres a").Each(func(_ int, link *goquery.Selection) {
		if genre := strings.TrimSpace(link.Text()); genre != "" {
			film.Genres = append(film.Genres, genre)
		}
	})

	d.doc.Find(".creators div").Each(func(_ int, group *goquery.Selection) {
		label := strings.TrimSpace(group.Find("h4").First().Text())
		var names []string
		group.Find("a").Each(func(_ int, link *goquery.Selection) {
			name := strings.TrimSpace(link.Text())
			if name == "" || name == "více" {
				return
			}
			names = append(names, name)
		})
		switch {
		case strings.HasPrefix(label, "Režie"):
			film.Directors = append(film.Directors, names...)
		case strings.HasPrefix(label, "Hrají"):
			film.Cast = append(film.Cast, names...)
		}
	})

	film.Description = strings.TrimSpace(d.doc.Find(".plots p").First().Text())

	if src, exists := d.doc.Find(".film-posters img").First().Attr("src"); exists {
		film.PosterURL = absoluteImageURL(src)
	}

	rating := strings.TrimSpace(d.doc.Find(".film-rating-average").First().Text())
	rating = strings.TrimSuffix(rating, "%")
	if rating != "" && rating != "?" {
		if percent, err := strconv.ParseFloat(rating, 64); err == nil {
			film.Rating = percent
		}
	}

	logger := config.GetLogger()
	logger.Debug().
		Str("title", film.Title).
		Str("year", film.Year).
		Int("alternate_titles", len(film.Titles)).
		Int("directors", len(film.Directors)).
		Msg("Extracted film fields")
	return film, nil
}

// absoluteImageURL completes protocol-relative image sources.
func absoluteImageURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}
