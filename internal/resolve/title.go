package resolve

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

const DefaultTitleSeparator = "-"

var plainText = bluemonday.StrictPolicy()

// TitleContext carries the site-wide parts of a document title.
type TitleContext struct {
	SiteName        string
	SiteDescription string
	Separator       string
	// Home appends the site description to the site name.
	Home bool
}

// ArchiveTitle is the heading of a company page.
func ArchiveTitle(company string) string {
	return "Jobs at " + company
}

// DocumentTitle composes "Jobs at {company} {sep} {site}". An empty company
// gives the bare site title.
func DocumentTitle(company string, tc TitleContext) string {
	if company == "" {
		return PageTitle("", tc)
	}
	return PageTitle(ArchiveTitle(company), tc)
}

// PageTitle prefixes the site title with page.
func PageTitle(page string, tc TitleContext) string {
	sep := strings.TrimSpace(tc.Separator)
	if sep == "" {
		sep = DefaultTitleSeparator
	}

	site := strings.TrimSpace(tc.SiteName)
	if desc := PlainText(tc.SiteDescription); desc != "" && tc.Home {
		site = join(site, sep, desc)
	}
	return join(page, sep, site)
}

// PlainText strips markup from configured site text.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(s)))
}

func join(left, sep, right string) string {
	switch {
	case left == "":
		return right
	case right == "":
		return left
	default:
		return left + " " + sep + " " + right
	}
}
