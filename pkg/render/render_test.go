package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{"Markdown", Markdown, false},
		{"md", Markdown, false},
		{"HTML", HTML, false},
		{"pdf", Text, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToHTML(t *testing.T) {
	out, err := ToHTML("## Hauptgerichte\n- Schnitzel - 1,2,3: 3.50€\n")
	require.NoError(t, err)

	assert.Contains(t, out, "<h2>Hauptgerichte</h2>")
	assert.Contains(t, out, "<li>Schnitzel - 1,2,3: 3.50€</li>")
	assert.True(t, strings.HasPrefix(out, "<h2>"))
}
