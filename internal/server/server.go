// Package server serves the portfolio page and its htmx endpoints.
package server

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fremyrosso/site/internal/analytics"
	"github.com/fremyrosso/site/internal/contact"
	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
	"github.com/fremyrosso/site/internal/view"
)

const panelCookie = "nav_panel"

type Options struct {
	Site *content.Site
	// Analytics may be nil to disable tracking and the stats endpoint.
	Analytics *analytics.Store
	// AssetDir holds static/, images/ and videos/. Empty serves no assets.
	AssetDir string
	Now      func() time.Time
}

type Server struct {
	site      *content.Site
	analytics *analytics.Store
	assetDir  string
	now       func() time.Time
}

func New(opts Options) *Server {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Server{
		site:      opts.Site,
		analytics: opts.Analytics,
		assetDir:  opts.AssetDir,
		now:       now,
	}
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	if s.analytics != nil {
		r.Use(analytics.Middleware(s.analytics))
	}

	if s.assetDir != "" {
		r.Static("/static", filepath.Join(s.assetDir, "static"))
		r.Static("/images", filepath.Join(s.assetDir, "images"))
		r.Static("/videos", filepath.Join(s.assetDir, "videos"))
	}

	r.GET("/", s.home)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/nav/toggle", s.togglePanel)
	r.POST("/nav/:section", s.navigate)
	r.POST("/contact", s.submitContact)

	if s.analytics != nil {
		r.GET("/api/stats", s.stats)
	}
	return r
}

// Every full render starts with the panel closed.
func (s *Server) home(c *gin.Context) {
	setPanel(c, nav.Closed)
	c.Render(http.StatusOK, nodeRender{view.Page(s.site, view.State{
		Panel: nav.Closed,
		Year:  s.now().Year(),
	})})
}

func (s *Server) shell(c *gin.Context) *nav.Shell {
	p := nav.Closed
	if v, err := c.Cookie(panelCookie); err == nil {
		p = nav.ParsePanel(v)
	}
	return nav.Restore(pageDocument{site: s.site, c: c}, p)
}

func setPanel(c *gin.Context, p nav.Panel) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(panelCookie, p.String(), 0, "/", "", false, true)
}

func (s *Server) header(c *gin.Context, p nav.Panel) {
	c.Render(http.StatusOK, nodeRender{view.SiteHeader(s.site.Owner, p)})
}

func (s *Server) togglePanel(c *gin.Context) {
	shell := s.shell(c)
	p := shell.TogglePanel()
	setPanel(c, p)
	s.header(c, p)
}

// navigate closes the panel and, when the section is on the page, asks the
// browser to scroll to it. Unknown or unrendered sections only close the
// panel and are not counted.
func (s *Server) navigate(c *gin.Context) {
	shell := s.shell(c)
	id := c.Param("section")
	shell.ScrollToID(id)

	sec, ok := nav.ParseSection(id)
	if ok && s.site.Enabled(sec) && s.analytics != nil && c.GetHeader("DNT") != "1" {
		ip := c.ClientIP()
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.analytics.RecordNavigation(ctx, ip, sec); err != nil {
				log.Printf("Error recording navigation: %v", err)
			}
		}()
	}

	setPanel(c, shell.Panel())
	s.header(c, shell.Panel())
}

// submitContact runs the contact stub: the draft is logged and discarded.
func (s *Server) submitContact(c *gin.Context) {
	var draft contact.Draft
	for _, f := range contact.Fields() {
		draft.Set(f, c.PostForm(f.Name()))
	}

	values := draft.Values()
	ack := draft.Submit()
	log.Printf("Contact form submitted (ref %s): %q", ack.Ref, values)

	if c.GetHeader("HX-Request") != "true" {
		c.Render(http.StatusOK, nodeRender{view.Page(s.site, view.State{
			Panel: nav.Closed,
			Draft: &draft,
			Ack:   &ack,
			Year:  s.now().Year(),
		})})
		return
	}
	c.Render(http.StatusOK, nodeRender{view.ContactForm(&draft, &ack)})
}

func (s *Server) stats(c *gin.Context) {
	stats, err := s.analytics.Stats(c.Request.Context())
	if err != nil {
		log.Printf("Error loading stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
