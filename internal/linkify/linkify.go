// Package linkify finds the anchors in an entry or comment body and classifies
// each of them, the same way a tap on the rendered link would.
package linkify

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"linkrouter/internal/linkparser"
	"linkrouter/pkg/domain"
)

// Anchor is one link found in a body.
type Anchor struct {
	// Text is the visible, whitespace-normalised anchor text.
	Text string
	// Href is the link target; relative targets are resolved against linkparser.BaseURL.
	Href string
	// Destination is the classification of Href.
	Destination domain.Destination
}

var base, _ = url.Parse(linkparser.BaseURL + "/") //nolint: gochecknoglobals

// Extract parses body as HTML and returns its anchors in document order.
// Anchors without an href, and repeated hrefs, are skipped.
func Extract(body io.Reader) ([]Anchor, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("could not parse body: %w", err)
	}

	seen := map[string]bool{}
	anchors := []Anchor{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := Resolve(strings.TrimSpace(s.AttrOr("href", "")))
		if href == "" || seen[href] {
			return
		}
		seen[href] = true

		anchors = append(anchors, Anchor{
			Text:        strings.Join(strings.Fields(s.Text()), " "),
			Href:        href,
			Destination: linkparser.Classify(href),
		})
	})

	return anchors, nil
}

// ExtractString is Extract over an in-memory body.
func ExtractString(body string) ([]Anchor, error) {
	return Extract(strings.NewReader(body))
}

// Resolve turns an href into something Classify understands. Shorthand
// references are kept as-is; relative paths are made absolute.
func Resolve(href string) string {
	if href == "" || href[0] == linkparser.ProfilePrefix || href[0] == linkparser.TagPrefix {
		return href
	}

	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}

	u, err := url.Parse(href)
	if err != nil || u.IsAbs() {
		return href
	}

	return base.ResolveReference(u).String()
}
