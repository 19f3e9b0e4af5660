package blackboard

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	headerSelector      = "div.header"
	moreLinkSelector    = "a.more"
	publishedAtSelector = `time[itemprop="datePublished"]`
	descriptionSelector = `span[itemprop="description"]`
)

// ParseListing extracts the announcement titles and their detail links from the listing page.
// Headers and "more" links are paired by position, so both must occur equally often.
func ParseListing(r io.Reader) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	headers := doc.Find(headerSelector)
	moreLinks := doc.Find(moreLinkSelector)

	if headers.Length() != moreLinks.Length() {
		return nil, &StructureError{Headers: headers.Length(), MoreLinks: moreLinks.Length()}
	}

	links := make([]Link, 0, headers.Length())
	var missing *StructureError

	headers.Each(func(i int, header *goquery.Selection) {
		if missing != nil {
			return
		}

		href, ok := moreLinks.Eq(i).Attr("href")
		href = strings.TrimSpace(href)
		if !ok || href == "" {
			missing = &StructureError{
				Headers:   headers.Length(),
				MoreLinks: moreLinks.Length(),
				Detail:    fmt.Sprintf("more link %d has no href", i),
			}
			return
		}

		links = append(links, Link{
			Title: cleanText(header),
			Href:  href,
		})
	})

	if missing != nil {
		return nil, missing
	}

	return links, nil
}

// ParseDetail extracts the publishing date and the description from a detail page.
// A page without a publishing date yields an empty date; a page without a description is an error.
func ParseDetail(r io.Reader, pageURL string) (publishedAt, content string, err error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", "", err
	}

	description := doc.Find(descriptionSelector).First()
	if description.Length() == 0 {
		return "", "", &ContentMissingError{URL: pageURL}
	}

	publishedAt = cleanText(doc.Find(publishedAtSelector).First())
	return publishedAt, cleanText(description), nil
}

// ResolveURL resolves a detail link relative to the listing page.
// For the blackboard's root-relative links ("/schwarzes-brett/...") this is the
// listing URL cut at its last slash joined with the link.
func ResolveURL(listingURL, href string) (string, error) {
	base, err := url.Parse(listingURL)
	if err != nil {
		return "", fmt.Errorf("invalid listing URL %q: %w", listingURL, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid detail link %q: %w", href, err)
	}
	return base.ResolveReference(ref).String(), nil
}

func cleanText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}
