package testutil

import (
	"fmt"
	"strings"
)

// AlternateTitleOptions contains options for generating one alternate-title
// row of a seed film page
type AlternateTitleOptions struct {
	Country string // flag alt text, e.g. "USA"
	Title   string
	Info    string // optional annotation, e.g. "pracovní název"
}

// FilmPageOptions contains options for generating a seed film page
type FilmPageOptions struct {
	Title      string
	Alternates []AlternateTitleOptions
	Genres     []string
	Origin     string // "USA / Velká Británie, 1998, 119 min"
	Directors  []string
	Cast       []string
	Plot       string
	PosterSrc  string
	Rating     string // rendered verbatim, e.g. "87%"
	IMDBLink   string // rendered as a footer link when non-empty
}

// GenerateFilmPageHTML generates a film detail page based on the real
// csfd.cz markup
func GenerateFilmPageHTML(opts FilmPageOptions) string {
	var sb strings.Builder

	sb.WriteString("<html>\n<head><title>")
	sb.WriteString(opts.Title)
	sb.WriteString(" | ČSFD.cz</title></head>\n<body>\n")

	sb.WriteString(`<div class="film-header-name film-header">`)
	sb.WriteString(fmt.Sprintf("<h1>%s</h1>", opts.Title))
	sb.WriteString("</div>\n")

	if len(opts.Alternates) > 0 {
		sb.WriteString(`<ul class="film-names">` + "\n")
		for _, alt := range opts.Alternates {
			sb.WriteString(fmt.Sprintf(`<li><img src="/images/flags/flag.png" class="flag" alt="%s"> %s`, alt.Country, alt.Title))
			if alt.Info != "" {
				sb.WriteString(fmt.Sprintf(` <span class="info">(%s)</span>`, alt.Info))
			}
			sb.WriteString("</li>\n")
		}
		sb.WriteString("</ul>\n")
	}

	if len(opts.Genres) > 0 {
		sb.WriteString(`<div class="genres">`)
		for i, genre := range opts.Genres {
			if i > 0 {
				sb.WriteString(" / ")
			}
			sb.WriteString(fmt.Sprintf(`<a href="/podrobne-vyhledavani/">%s</a>`, genre))
		}
		sb.WriteString("</div>\n")
	}

	if opts.Origin != "" {
		sb.WriteString(fmt.Sprintf(`<div class="origin">%s</div>`+"\n", opts.Origin))
	}

	sb.WriteString(`<div class="creators">` + "\n")
	if len(opts.Directors) > 0 {
		sb.WriteString("<div><h4>Režie:</h4> ")
		sb.WriteString(personLinks(opts.Directors))
		sb.WriteString("</div>\n")
	}
	if len(opts.Cast) > 0 {
		sb.WriteString("<div><h4>Hrají:</h4> ")
		sb.WriteString(personLinks(opts.Cast))
		sb.WriteString(`, <a href="#">více</a></div>` + "\n")
	}
	sb.WriteString("</div>\n")

	if opts.Plot != "" {
		sb.WriteString(fmt.Sprintf(`<div class="plots"><p>%s</p></div>`+"\n", opts.Plot))
	}

	if opts.PosterSrc != "" {
		sb.WriteString(fmt.Sprintf(`<div class="film-posters"><img src="%s"></div>`+"\n", opts.PosterSrc))
	}

	if opts.Rating != "" {
		sb.WriteString(fmt.Sprintf(`<div class="film-rating-average">%s</div>`+"\n", opts.Rating))
	}

	if opts.IMDBLink != "" {
		sb.WriteString(fmt.Sprintf(`<a href="%s" class="button-imdb">IMDb</a>`+"\n", opts.IMDBLink))
	}

	sb.WriteString("</body>\n</html>")

	return sb.String()
}

func personLinks(names []string) string {
	links := make([]string, 0, len(names))
	for _, name := range names {
		links = append(links, fmt.Sprintf(`<a href="/tvurce/">%s</a>`, name))
	}
	return strings.Join(links, ", ")
}
