package blackboard

import (
	"fmt"
	"strings"

	"othctl/pkg/render"
)

// String renders the entry as plain text
func (e Entry) String() string {
	return fmt.Sprintf("%s\n%s %s", e.Title, e.PublishedAt, e.Content)
}

// Markdown renders the entry as a markdown section
func (e Entry) Markdown() string {
	return fmt.Sprintf("## %s\n**%s** %s", e.Title, e.PublishedAt, e.Content)
}

// Render joins all entries in the requested format, one trailing newline per entry
func Render(entries []Entry, format render.Format) (string, error) {
	var sb strings.Builder
	for _, e := range entries {
		if format == render.Text {
			sb.WriteString(e.String())
		} else {
			sb.WriteString(e.Markdown())
		}
		sb.WriteByte('\n')
	}

	if format == render.HTML {
		return render.ToHTML(sb.String())
	}
	return sb.String(), nil
}
