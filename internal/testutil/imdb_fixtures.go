package testutil

import (
	"fmt"
	"strings"
)

// LegacyFindResultOptions contains options for generating one row of the
// legacy find-page table
type LegacyFindResultOptions struct {
	ID    string
	Title string
	Rest  string // text after the title link, e.g. "(1998)" or "(2008) (TV Series)"
	Href  string // overrides the default /title/{ID}/ link target
}

// ModernFindResultOptions contains options for generating one card of the
// modern find-page list
type ModernFindResultOptions struct {
	ID        string
	Title     string
	AriaLabel string   // overrides the default "View title page for {Title}"
	Labels    []string // secondary label spans: year, kind of entry, cast line
}

// TitlePageOptions contains options for generating a title detail page
type TitlePageOptions struct {
	PageTitle string   // <title> text
	JSONLD    []string // raw structured-data script bodies, in order
}

// GenerateLegacyFindHTML generates a find results page in the legacy table
// layout based on the real imdb.com markup
func GenerateLegacyFindHTML(results []LegacyFindResultOptions) string {
	var sb strings.Builder

	sb.WriteString(`<html>
<head><title>Find - IMDb</title></head>
<body>
<div class="findSection">
<h3 class="findSectionHeader">Titles</h3>
<table class="findList">
<tbody>
`)

	for _, r := range results {
		href := r.Href
		if href == "" {
			href = fmt.Sprintf("/title/%s/", r.ID)
		}
		sb.WriteString(`<tr class="findResult">`)
		sb.WriteString(`<td class="primary_photo"><a href="` + href + `"><img src="poster.jpg"/></a></td>`)
		sb.WriteString(fmt.Sprintf(`<td class="result_text"><a href="%s">%s</a> %s</td>`, href, r.Title, r.Rest))
		sb.WriteString("</tr>\n")
	}

	sb.WriteString(`</tbody>
</table>
</div>
</body>
</html>`)

	return sb.String()
}

// GenerateModernFindHTML generates a find results page in the modern list
// layout based on the real imdb.com markup
func GenerateModernFindHTML(results []ModernFindResultOptions) string {
	var sb strings.Builder

	sb.WriteString(`<html>
<head><title>Find - IMDb</title></head>
<body>
<section data-testid="find-results-section-title">
<ul class="ipc-metadata-list">
`)

	for _, r := range results {
		ariaLabel := r.AriaLabel
		if ariaLabel == "" {
			ariaLabel = "View title page for " + r.Title
		}
		sb.WriteString(`<li class="ipc-metadata-list-summary-item">`)
		sb.WriteString(`<div class="ipc-metadata-list-summary-item__c">`)
		sb.WriteString(fmt.Sprintf(`<a class="ipc-metadata-list-summary-item__t" aria-label="%s" href="/title/%s/?ref_=fn_all_ttl_1">%s</a>`, ariaLabel, r.ID, r.Title))
		sb.WriteString(`<ul class="ipc-metadata-list-summary-item__tl">`)
		for _, label := range r.Labels {
			sb.WriteString(fmt.Sprintf(`<li class="ipc-inline-list__item"><span class="ipc-metadata-list-summary-item__li">%s</span></li>`, label))
		}
		sb.WriteString(`</ul>`)
		sb.WriteString(`</div>`)
		sb.WriteString("</li>\n")
	}

	sb.WriteString(`</ul>
</section>
</body>
</html>`)

	return sb.String()
}

// GenerateTitlePageHTML generates a title detail page carrying the given
// structured-data blocks
func GenerateTitlePageHTML(opts TitlePageOptions) string {
	var sb strings.Builder

	pageTitle := opts.PageTitle
	if pageTitle == "" {
		pageTitle = "IMDb"
	}

	sb.WriteString("<html>\n<head>\n")
	sb.WriteString(fmt.Sprintf("<title>%s</title>\n", pageTitle))
	for _, block := range opts.JSONLD {
		sb.WriteString(`<script type="application/ld+json">`)
		sb.WriteString(block)
		sb.WriteString("</script>\n")
	}
	sb.WriteString(`</head>
<body>
<div id="__next"><main>Title page body</main></div>
</body>
</html>`)

	return sb.String()
}
