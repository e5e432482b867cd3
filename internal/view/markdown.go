package view

import (
	"bytes"
	"log"

	g "maragu.dev/gomponents"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Typographer,
		extension.Linkify,
	),
)

// Markdown renders src as HTML. Raw HTML in src is dropped by the renderer.
func Markdown(src string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		log.Printf("Error rendering markdown: %v", err)
		return g.Text(src)
	}
	return g.Raw(buf.String())
}
