// Copyright (c) 2024, 0x0BSoD. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package web serves the time page. Every load of "/" opens a new view; the view's own
// URL only re-renders its state.
package web

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0x0BSoD/moroccoTime/internal/model"
	"github.com/0x0BSoD/moroccoTime/internal/view"
)

type Server struct {
	views       *Registry
	attribution string
}

func NewServer(views *Registry, attribution string) *Server {
	return &Server{
		views:       views,
		attribution: attribution,
	}
}

// NewRouter registers the page, state and health routes.
func NewRouter(s *Server, tmpl *template.Template) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.openView)
	r.GET("/views/:id", s.showView)
	r.GET("/api/views/:id", s.viewState)
	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return r
}

func (s *Server) openView(c *gin.Context) {
	// The fetch outlives this request, which ends with the redirect.
	id, _ := s.views.Open(context.WithoutCancel(c.Request.Context()))
	c.Redirect(http.StatusSeeOther, "/views/"+id)
}

func (s *Server) showView(c *gin.Context) {
	ctrl, ok := s.views.Get(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "view not found, reload / to ask again")
		return
	}

	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, pageTemplate, NewPage(ctrl.State(), s.attribution))
}

type viewStateResponse struct {
	Phase   string           `json:"phase"`
	Error   string           `json:"error,omitempty"`
	Time    string           `json:"time,omitempty"`
	Clock   string           `json:"clock,omitempty"`
	Period  string           `json:"period,omitempty"`
	Sources []model.Citation `json:"sources,omitempty"`
}

func (s *Server) viewState(c *gin.Context) {
	ctrl, ok := s.views.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "view not found"})
		return
	}

	st := ctrl.State()
	resp := viewStateResponse{
		Phase: st.Phase().String(),
		Error: st.Message(),
	}
	if result, ok := st.Result(); ok {
		resp.Time = result.Time
		resp.Clock, resp.Period = view.SplitTime(result.Time)
		resp.Sources = view.ValidSources(result.Sources)
	}

	c.JSON(http.StatusOK, resp)
}
