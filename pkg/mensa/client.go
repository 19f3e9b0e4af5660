package mensa

import (
	"context"
	"fmt"
	"time"

	"othctl/pkg/web"

	"golang.org/x/text/encoding/charmap"
)

// DefaultURLTemplate is the weekly CSV export of the Regensburg university mensa, keyed by ISO week
const DefaultURLTemplate = "https://www.stwno.de/infomax/daten-extern/csv/HS-R-tag/%d.csv"

// Client fetches weekly plans from the Studentenwerk
type Client struct {
	web         *web.Client
	urlTemplate string
	useCache    bool
}

// NewClient creates a mensa client. An empty template uses DefaultURLTemplate.
func NewClient(webClient *web.Client, urlTemplate string, useCache bool) *Client {
	if webClient == nil {
		webClient = web.NewClient()
	}
	if urlTemplate == "" {
		urlTemplate = DefaultURLTemplate
	}
	return &Client{web: webClient, urlTemplate: urlTemplate, useCache: useCache}
}

// URL returns the CSV location for the given calendar week
func (c *Client) URL(week int) string {
	return fmt.Sprintf(c.urlTemplate, week)
}

// FetchWeek downloads and parses the plan of a calendar week; week <= 0 means the current week.
// The feed is Latin-1 encoded.
func (c *Client) FetchWeek(ctx context.Context, week int) (*Week, error) {
	if week <= 0 {
		week = CurrentWeek(time.Now())
	}

	url := c.URL(week)
	if c.useCache {
		if cached, ok := readCache(week, url); ok {
			return cached, nil
		}
	}

	resp, err := c.web.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	plan, err := ParseWeek(charmap.ISO8859_1.NewDecoder().Reader(resp.Body), week)
	if err != nil {
		return nil, fmt.Errorf("could not parse mensa plan for week %d: %w", week, err)
	}

	if c.useCache {
		writeCache(week, url, plan)
	}

	return plan, nil
}
