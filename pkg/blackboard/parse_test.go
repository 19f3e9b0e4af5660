package blackboard

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<!DOCTYPE html>
<html>
<body>
  <div class="news-list">
    <div class="article">
      <div class="header"><h3>  Prüfungsanmeldung
        Sommersemester </h3></div>
      <p class="teaser">Bitte beachten ...</p>
      <a class="more" href="/schwarzes-brett/detail/pruefungsanmeldung">mehr</a>
    </div>
    <div class="article">
      <div class="header"><h3>Raumänderung Analysis</h3></div>
      <a class="more" href="/schwarzes-brett/detail/raumaenderung">mehr</a>
    </div>
  </div>
</body>
</html>`

func TestParseListing(t *testing.T) {
	links, err := ParseListing(strings.NewReader(listingHTML))
	require.NoError(t, err)
	require.Len(t, links, 2)

	assert.Equal(t, Link{Title: "Prüfungsanmeldung Sommersemester", Href: "/schwarzes-brett/detail/pruefungsanmeldung"}, links[0])
	assert.Equal(t, Link{Title: "Raumänderung Analysis", Href: "/schwarzes-brett/detail/raumaenderung"}, links[1])
}

func TestParseListing_CountMismatch(t *testing.T) {
	html := `<div class="header">One</div><a class="more" href="/a">mehr</a>
<div class="header">Two</div>`

	_, err := ParseListing(strings.NewReader(html))

	var structErr *StructureError
	require.True(t, errors.As(err, &structErr), "expected *StructureError, got %v", err)
	assert.Equal(t, 2, structErr.Headers)
	assert.Equal(t, 1, structErr.MoreLinks)
}

func TestParseListing_MissingHref(t *testing.T) {
	html := `<div class="header">One</div><a class="more">mehr</a>`

	_, err := ParseListing(strings.NewReader(html))

	var structErr *StructureError
	require.True(t, errors.As(err, &structErr), "expected *StructureError, got %v", err)
	assert.Contains(t, structErr.Error(), "more link 0 has no href")
}

func TestParseListing_Empty(t *testing.T) {
	links, err := ParseListing(strings.NewReader(`<html><body><p>Keine Einträge</p></body></html>`))
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestParseDetail(t *testing.T) {
	html := `<article>
  <time itemprop="datePublished" datetime="2024-05-06">06.05.2024</time>
  <time itemprop="datePublished">07.05.2024</time>
  <span itemprop="description">Die Anmeldung ist
    ab <b>sofort</b> möglich.</span>
</article>`

	publishedAt, content, err := ParseDetail(strings.NewReader(html), "https://example.org/detail")
	require.NoError(t, err)
	assert.Equal(t, "06.05.2024", publishedAt)
	assert.Equal(t, "Die Anmeldung ist ab sofort möglich.", content)
}

func TestParseDetail_MissingDate(t *testing.T) {
	publishedAt, content, err := ParseDetail(strings.NewReader(`<span itemprop="description">Text</span>`), "u")
	require.NoError(t, err)
	assert.Empty(t, publishedAt)
	assert.Equal(t, "Text", content)
}

func TestParseDetail_MissingDescription(t *testing.T) {
	html := `<time itemprop="datePublished">06.05.2024</time><div class="body">moved</div>`

	_, _, err := ParseDetail(strings.NewReader(html), "https://example.org/detail/1")

	var missing *ContentMissingError
	require.True(t, errors.As(err, &missing), "expected *ContentMissingError, got %v", err)
	assert.Equal(t, "https://example.org/detail/1", missing.URL)
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		href    string
		want    string
	}{
		{
			name:    "root relative link",
			listing: "https://informatik-mathematik.oth-regensburg.de/schwarzes-brett",
			href:    "/schwarzes-brett/detail/pruefung",
			want:    "https://informatik-mathematik.oth-regensburg.de/schwarzes-brett/detail/pruefung",
		},
		{
			name:    "absolute link",
			listing: "https://informatik-mathematik.oth-regensburg.de/schwarzes-brett",
			href:    "https://www.oth-regensburg.de/news/1",
			want:    "https://www.oth-regensburg.de/news/1",
		},
		{
			name:    "path relative link",
			listing: "http://127.0.0.1:8080/board/list",
			href:    "detail/2",
			want:    "http://127.0.0.1:8080/board/detail/2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveURL(tt.listing, tt.href)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
