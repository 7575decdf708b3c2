package htmlx

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractLinks returns the href of every anchor in an HTML fragment, in
// document order, skipping empty, fragment-only and javascript: targets.
// Plain text without markup yields no links and no error.
func ExtractLinks(fragment string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		if strings.HasPrefix(strings.ToLower(href), "javascript:") {
			return
		}
		links = append(links, href)
	})
	return links, nil
}
