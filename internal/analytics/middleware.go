package analytics

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/videos/",
	"/api/",
	"/favicon",
	"/healthz",
}

// shouldTrack reports whether a request counts as a page view.
func shouldTrack(method, path, dnt string) bool {
	if method != "GET" {
		return false
	}
	if dnt == "1" {
		return false
	}
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// Middleware records page views in the background.
func Middleware(s *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if !shouldTrack(c.Request.Method, path, c.GetHeader("DNT")) {
			c.Next()
			return
		}

		ip, ua := c.ClientIP(), c.GetHeader("User-Agent")
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.RecordVisit(ctx, ip, ua, path); err != nil {
				log.Printf("Error recording visitor: %v", err)
			}
		}()
		c.Next()
	}
}
