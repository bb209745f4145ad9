// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package web

import (
	"embed"
	"html/template"

	"github.com/samber/lo"

	"github.com/0x0BSoD/moroccoTime/internal/model"
	"github.com/0x0BSoD/moroccoTime/internal/view"
)

const (
	pageTemplate   = "page.html"
	untitledSource = "Untitled Source"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

type SourceLink struct {
	URI   string
	Title string
}

// Page is everything page.html needs. Exactly one of Loading, Error and Time is set.
type Page struct {
	Title       string
	Attribution string

	Loading bool
	Error   string

	Time    string
	Clock   string
	Period  string
	Sources []SourceLink
}

// NewPage maps a view state onto the page. It has no side effects.
func NewPage(st view.State, attribution string) Page {
	p := Page{
		Title:       "Morocco Time Now",
		Attribution: attribution,
	}

	switch st.Phase() {
	case view.PhaseLoading:
		p.Loading = true
	case view.PhaseError:
		p.Error = st.Message()
	case view.PhaseReady:
		result, _ := st.Result()
		p.Time = result.Time
		p.Clock, p.Period = view.SplitTime(result.Time)
		p.Sources = lo.Map(view.ValidSources(result.Sources), func(c model.Citation, _ int) SourceLink {
			return SourceLink{URI: c.URI, Title: lo.Ternary(c.Title != "", c.Title, untitledSource)}
		})
	}

	return p
}
