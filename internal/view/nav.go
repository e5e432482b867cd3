package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fremyrosso/site/internal/nav"
)

// HeaderID is the element htmx swaps after toggle and navigation requests.
const HeaderID = "site-header"

// NavTo makes an element navigate to section: a plain anchor without
// JavaScript, an htmx post to the navigator with it. With htmx the native
// hash jump is cancelled so only the server's scroll-to trigger scrolls.
func NavTo(section nav.Section) g.Node {
	return g.Group([]g.Node{
		Href("#" + section.ID()),
		g.Attr("hx-on:click", "event.preventDefault()"),
		g.Attr("hx-post", "/nav/"+section.ID()),
		g.Attr("hx-target", "#"+HeaderID),
		g.Attr("hx-swap", "outerHTML"),
	})
}

func icon(name string) g.Node {
	return Span(Class("iconify"), g.Attr("data-icon", "lucide:"+name), Aria("hidden", "true"))
}

// SiteHeader renders the sticky site header with the panel in state p.
func SiteHeader(owner string, p nav.Panel) g.Node {
	toggleIcon := "menu"
	if p == nav.Open {
		toggleIcon = "x"
	}

	return Header(
		ID(HeaderID),
		Class("sticky top-0 z-50 w-full border-b border-zinc-800 bg-zinc-950/95 backdrop-blur"),
		g.Attr("data-panel", p.String()),

		Div(
			Class("container mx-auto px-4 flex h-16 items-center justify-between"),
			A(Class("brand text-xl font-bold"), NavTo(nav.Hero), g.Text(owner)),

			Nav(
				Class("hidden md:flex gap-6"),
				Aria("label", "Primary"),
				menuLinks("text-sm font-medium"),
			),

			Button(
				Type("button"),
				Class("md:hidden"),
				Aria("label", "Toggle menu"),
				Aria("expanded", boolAttr(p == nav.Open)),
				g.Attr("hx-post", "/nav/toggle"),
				g.Attr("hx-target", "#"+HeaderID),
				g.Attr("hx-swap", "outerHTML"),
				icon(toggleIcon),
			),

			A(Class("btn btn-primary hidden md:inline-flex"), NavTo(nav.Contact), g.Text("Get In Touch")),
		),

		g.If(p == nav.Open,
			Div(
				ID("mobile-nav"),
				Class("md:hidden border-t border-zinc-800 bg-zinc-950"),
				Nav(
					Class("container mx-auto px-4 py-4 flex flex-col space-y-2"),
					Aria("label", "Mobile"),
					menuLinks("py-2"),
					A(Class("btn btn-primary"), NavTo(nav.Contact), g.Text("Get In Touch")),
				),
			),
		),
	)
}

func menuLinks(class string) g.Node {
	return g.Map(nav.Menu(), func(s nav.Section) g.Node {
		return A(Class(class+" capitalize"), NavTo(s), g.Text(s.ID()))
	})
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
