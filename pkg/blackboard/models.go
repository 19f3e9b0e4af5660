package blackboard

import "fmt"

// Entry is a single announcement on the faculty blackboard
type Entry struct {
	Title       string
	PublishedAt string // Free-form, e.g. "06.05.2024"
	Content     string
}

// Link pairs a listing header with the URL of its detail page
type Link struct {
	Title string
	Href  string
}

// StructureError means the listing markup no longer pairs headers with "more" links
type StructureError struct {
	Headers   int
	MoreLinks int
	Detail    string
}

func (e *StructureError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unexpected blackboard structure: %s", e.Detail)
	}
	return fmt.Sprintf("unexpected blackboard structure: %d headers but %d more links", e.Headers, e.MoreLinks)
}

// ContentMissingError means a detail page had no description node
type ContentMissingError struct {
	URL string
}

func (e *ContentMissingError) Error() string {
	return fmt.Sprintf("no content found at %s, the structure of the page may have changed", e.URL)
}
