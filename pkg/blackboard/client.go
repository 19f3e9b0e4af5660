package blackboard

import (
	"context"
	"fmt"
	"log/slog"

	"othctl/pkg/web"

	"golang.org/x/sync/errgroup"
)

// DefaultURL is the listing page of the faculty blackboard
const DefaultURL = "https://informatik-mathematik.oth-regensburg.de/schwarzes-brett"

// DefaultParallelism bounds concurrent detail page fetches
const DefaultParallelism = 4

// Client scrapes the blackboard listing and its detail pages
type Client struct {
	web         *web.Client
	parallelism int
}

// NewClient creates a blackboard scraper on top of the shared HTTP client.
// A parallelism below 1 fetches detail pages one after another.
func NewClient(webClient *web.Client, parallelism int) *Client {
	if webClient == nil {
		webClient = web.NewClient()
	}
	if parallelism < 1 {
		parallelism = 1
	}
	return &Client{web: webClient, parallelism: parallelism}
}

// FetchListing downloads the listing page and returns its title/link pairs with absolute links
func (c *Client) FetchListing(ctx context.Context, listingURL string) ([]Link, error) {
	resp, err := c.web.Get(ctx, listingURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	links, err := ParseListing(resp.Body)
	if err != nil {
		return nil, err
	}

	for i := range links {
		abs, err := ResolveURL(listingURL, links[i].Href)
		if err != nil {
			return nil, err
		}
		links[i].Href = abs
	}

	slog.Debug("parsed blackboard listing", slog.Int("entries", len(links)))
	return links, nil
}

// FetchEntry downloads a single detail page and builds the announcement
func (c *Client) FetchEntry(ctx context.Context, link Link) (Entry, error) {
	resp, err := c.web.Get(ctx, link.Href)
	if err != nil {
		return Entry{}, err
	}
	defer resp.Body.Close()

	publishedAt, content, err := ParseDetail(resp.Body, link.Href)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Title:       link.Title,
		PublishedAt: publishedAt,
		Content:     content,
	}, nil
}

// Scrape retrieves all announcements in listing order.
// The first failing detail page aborts the whole scrape.
func (c *Client) Scrape(ctx context.Context, listingURL string) ([]Entry, error) {
	links, err := c.FetchListing(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("could not fetch blackboard listing: %w", err)
	}

	entries := make([]Entry, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.parallelism)

	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			entry, err := c.FetchEntry(gctx, link)
			if err != nil {
				return fmt.Errorf("could not fetch announcement %q: %w", link.Title, err)
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}
