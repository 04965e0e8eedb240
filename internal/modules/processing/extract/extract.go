// Package extract fetches blog pages and pulls their visible article text.
package extract

import (
	"net/url"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
)

// ContentSelector matches the elements whose text makes up the article.
const ContentSelector = "p, h1, h2, h3, h4, h5, h6, li"

// minReadableLength is the shortest readability result accepted before
// falling back to selector extraction.
const minReadableLength = 200

const (
	ModeSelectors   = "selectors"
	ModeReadability = "readability"
)

// Extractor turns page HTML into plain text.
type Extractor struct {
	Mode string
}

// Extract returns the article text of page, or "" when nothing usable is found.
func (e Extractor) Extract(page, pageURL string) string {
	if e.Mode == ModeReadability {
		if text := Readable(page, pageURL); len(strings.TrimSpace(text)) >= minReadableLength {
			return text
		}
	}
	return Selected(page)
}

// Selected concatenates the text of every ContentSelector element in document
// order, each followed by a newline.
func Selected(page string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return ""
	}
	var b strings.Builder
	doc.Find(ContentSelector).Each(func(_ int, s *goquery.Selection) {
		b.WriteString(s.Text())
		b.WriteByte('\n')
	})
	return b.String()
}

// Readable runs go-readability over page and renders the main content as text.
func Readable(page, pageURL string) string {
	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}
	article, err := readability.FromReader(strings.NewReader(page), base)
	if err != nil {
		return ""
	}
	var b strings.Builder
	if err := article.RenderText(&b); err != nil {
		return ""
	}
	return strings.TrimSpace(b.String())
}
