// Package view renders the portfolio page from gomponents nodes.
//
// Components hold no state. Panel state, the contact draft and the footer
// year are handed in by the caller.
package view

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fremyrosso/site/internal/contact"
	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// State is the per-render interactive state of the page.
type State struct {
	Panel nav.Panel
	Draft *contact.Draft
	Ack   *contact.Acknowledgment
	Year  int
}

// Page renders the full HTML document for site.
func Page(site *content.Site, st State) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(site.Metadata.Title)),
				Meta(Name("description"), Content(site.Metadata.Description)),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Script(Src(htmxSrc), g.Attr("defer")),
				Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js"), g.Attr("defer")),
				Script(Src("/static/js/nav.js"), g.Attr("defer")),
			),
			Body(
				Class("flex flex-col min-h-screen bg-zinc-950 text-zinc-50 antialiased"),
				SiteHeader(site.Owner, st.Panel),
				Main(
					Class("flex-1"),
					Sections(site, st),
				),
				SiteFooter(site.Owner, site.Social, st.Year),
			),
		),
	)
}

// Sections renders the enabled sections in page order.
func Sections(site *content.Site, st State) g.Node {
	var nodes []g.Node
	for _, sec := range site.EnabledSections() {
		switch sec {
		case nav.Hero:
			nodes = append(nodes, HeroSection(site.Hero))
		case nav.About:
			nodes = append(nodes, AboutSection(site.About))
		case nav.Expertise:
			nodes = append(nodes, ExpertiseSection(site.Expertise))
		case nav.Ventures:
			nodes = append(nodes, VenturesSection(site.Ventures))
		case nav.Contact:
			nodes = append(nodes, ContactSection(site.Contact, ContactForm(st.Draft, st.Ack)))
		}
	}
	return g.Group(nodes)
}

func SiteFooter(owner string, social []content.SocialLink, year int) g.Node {
	return Footer(
		Class("py-8 bg-zinc-950 border-t border-zinc-800"),
		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row justify-between items-center"),
			P(Class("text-sm text-zinc-400 mb-4 md:mb-0"),
				g.Text("© "+strconv.Itoa(year)+" "+owner+". All rights reserved."),
			),
			Div(
				Class("flex space-x-6"),
				g.Map(social, func(l content.SocialLink) g.Node {
					return A(
						Class("text-zinc-400 hover:text-white transition-colors"),
						Href(l.Href),
						Aria("label", l.Label),
						g.Attr("rel", "noopener"),
						icon(socialIcon(l.Label)),
					)
				}),
			),
		),
	)
}

func socialIcon(label string) string {
	switch label {
	case "LinkedIn":
		return "linkedin"
	case "Instagram":
		return "instagram"
	case "Twitter", "X":
		return "twitter"
	}
	return "link"
}
