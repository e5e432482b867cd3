package server

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
)

// ScrollEvent is the htmx client event the page script turns into
// scrollIntoView.
const ScrollEvent = "scroll-to"

// pageDocument is the page as the visitor's browser has it: the anchors the
// site renders, with scrolling delegated through an HX-Trigger header.
type pageDocument struct {
	site *content.Site
	c    *gin.Context
}

func (d pageDocument) ElementByID(id string) (nav.Element, bool) {
	sec, ok := nav.ParseSection(id)
	if !ok || !d.site.Enabled(sec) {
		return nil, false
	}
	return anchor{id: id, c: d.c}, true
}

type anchor struct {
	id string
	c  *gin.Context
}

type scrollDetail struct {
	ID       string `json:"id"`
	Behavior string `json:"behavior"`
}

func (a anchor) ScrollIntoView(b nav.Behavior) {
	payload, err := json.Marshal(map[string]scrollDetail{
		ScrollEvent: {ID: a.id, Behavior: b.String()},
	})
	if err != nil {
		log.Printf("Error encoding scroll trigger: %v", err)
		return
	}
	a.c.Header("HX-Trigger", string(payload))
}
