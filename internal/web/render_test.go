package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0BSoD/moroccoTime/internal/model"
	"github.com/0x0BSoD/moroccoTime/internal/view"
)

func renderPage(t *testing.T, p Page) string {
	t.Helper()

	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, pageTemplate, p))
	return buf.String()
}

func TestNewPage_Loading(t *testing.T) {
	p := NewPage(view.Loading(), "Powered by Google Gemini")

	assert.True(t, p.Loading)
	assert.Empty(t, p.Error)
	assert.Empty(t, p.Time)
	assert.Empty(t, p.Sources)

	html := renderPage(t, p)
	assert.Contains(t, html, "Finding the time in Morocco...")
	assert.Contains(t, html, `http-equiv="refresh"`)
	assert.Contains(t, html, "Powered by Google Gemini")
	assert.NotContains(t, html, "An Error Occurred")
	assert.NotContains(t, html, "The time in Morocco is")
}

func TestNewPage_Error(t *testing.T) {
	p := NewPage(view.Failed("Failed to fetch time: network down"), "")

	assert.False(t, p.Loading)
	assert.Equal(t, "Failed to fetch time: network down", p.Error)

	html := renderPage(t, p)
	assert.Contains(t, html, "An Error Occurred")
	assert.Contains(t, html, "Failed to fetch time: network down")
	assert.NotContains(t, html, "Finding the time in Morocco...")
	assert.NotContains(t, html, `http-equiv="refresh"`)
	assert.NotContains(t, html, "Sources")
}

func TestNewPage_ReadyFiltersSources(t *testing.T) {
	p := NewPage(view.Ready(model.TimeResult{
		Time: "3:15 PM",
		Sources: []model.Citation{
			{URI: "https://a", Title: "A"},
			{URI: "", Title: "B"},
			{URI: "https://c"},
		},
	}), "")

	assert.Equal(t, "3:15", p.Clock)
	assert.Equal(t, "PM", p.Period)
	assert.Equal(t, []SourceLink{
		{URI: "https://a", Title: "A"},
		{URI: "https://c", Title: "Untitled Source"},
	}, p.Sources)

	html := renderPage(t, p)
	assert.Contains(t, html, "The time in Morocco is")
	assert.Contains(t, html, `<span>3:15</span><span class="period">PM</span>`)
	assert.Contains(t, html, `href="https://a"`)
	assert.Contains(t, html, `rel="noopener noreferrer"`)
	assert.NotContains(t, html, ">B<")
}

func TestNewPage_ReadyWithoutPeriodOrSources(t *testing.T) {
	p := NewPage(view.Ready(model.TimeResult{
		Time:    "noon",
		Sources: []model.Citation{{Title: "no link"}},
	}), "")

	assert.Equal(t, "noon", p.Clock)
	assert.Empty(t, p.Period)
	assert.Empty(t, p.Sources)

	html := renderPage(t, p)
	assert.Contains(t, html, "<span>noon</span></p>")
	assert.NotContains(t, html, `class="period"`)
	assert.NotContains(t, html, "<h3>Sources</h3>")
}
