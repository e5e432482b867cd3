package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
)

func sectionHeading(title, intro string) g.Node {
	return Div(
		Class("text-center max-w-3xl mx-auto mb-16 reveal"),
		H2(Class("text-3xl md:text-4xl font-bold mb-4 text-zinc-50"), g.Text(title)),
		Hr(Class("w-20 mx-auto mb-6 border-zinc-700")),
		g.If(intro != "", P(Class("text-lg text-zinc-300"), g.Text(intro))),
	)
}

func card(c content.Card) g.Node {
	return Div(
		Class("card h-full bg-zinc-800 border border-zinc-700 rounded-xl p-6 reveal"),
		g.If(c.Icon != "", Div(Class("h-10 w-10 text-zinc-100 mb-2"), icon(c.Icon))),
		H3(Class("text-lg font-semibold text-zinc-50"), g.Text(c.Title)),
		P(Class("text-zinc-400"), g.Text(c.Description)),
	)
}

// HeroSection is the landing block with the background video and headshot.
func HeroSection(h content.Hero) g.Node {
	return Section(
		ID(nav.Hero.ID()),
		Class("relative py-20 md:py-28 overflow-hidden min-h-screen flex items-center"),

		g.If(h.Video != "",
			Div(
				Class("absolute inset-0 -z-10"),
				Video(
					Class("w-full h-full object-cover"),
					g.Attr("autoplay"), g.Attr("muted"), g.Attr("loop"), g.Attr("playsinline"),
					Source(Src(h.Video), Type("video/mp4")),
				),
				Div(Class("absolute inset-0 bg-black/60")),
			),
		),

		Div(
			Class("container mx-auto px-4 flex flex-col md:flex-row items-center gap-12 reveal"),
			Div(
				Class("md:w-1/2 space-y-6"),
				H1(
					Class("text-4xl md:text-6xl font-bold tracking-tight text-zinc-50"),
					headline(h.Headline),
				),
				P(Class("text-xl text-zinc-300"), g.Text(h.Tagline)),
				Div(
					Class("flex flex-wrap gap-4"),
					A(Class("btn btn-primary"), NavTo(nav.Ventures), g.Text("Explore My Ventures")),
					A(Class("btn btn-secondary"), NavTo(nav.Contact), g.Text("Connect With Me")),
				),
			),
			g.If(h.Headshot != "",
				Div(
					Class("md:w-1/2 flex justify-center"),
					Div(
						Class("headshot relative w-72 h-72 md:w-96 md:h-96 rounded-full overflow-hidden border-4 border-zinc-700 bg-zinc-900"),
						Img(Src(h.Headshot), Alt(h.HeadshotAlt), Class("object-cover w-full h-full")),
					),
				),
			),
		),
	)
}

func headline(lines []string) g.Node {
	var nodes []g.Node
	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, Br())
		}
		nodes = append(nodes, Span(Class("headline-line"), g.Text(line)))
	}
	return g.Group(nodes)
}

func AboutSection(a content.About) g.Node {
	return Section(
		ID(nav.About.ID()),
		Class("py-16 md:py-24 bg-zinc-900"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading(a.Title, a.Lead),
			Div(
				Class("grid md:grid-cols-2 gap-12 items-center"),
				Div(
					Class("prose prose-invert space-y-6 text-zinc-400 reveal"),
					g.Map(a.Body, Markdown),
				),
				Div(
					Class("grid grid-cols-2 gap-6"),
					g.Map(a.Highlights, card),
				),
			),
		),
	)
}

func ExpertiseSection(e content.Expertise) g.Node {
	return Section(
		ID(nav.Expertise.ID()),
		Class("py-16 md:py-24"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading(e.Title, e.Intro),
			Div(
				Class("grid md:grid-cols-3 gap-8"),
				g.Map(e.Cards, card),
			),
		),
	)
}

// VenturesSection alternates image and text sides on every other venture.
func VenturesSection(v content.Ventures) g.Node {
	items := make([]g.Node, 0, len(v.Items))
	for i, venture := range v.Items {
		items = append(items, ventureArticle(venture, i%2 == 1))
	}

	return Section(
		ID(nav.Ventures.ID()),
		Class("py-16 md:py-24 bg-zinc-900"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading(v.Title, v.Intro),
			Div(Class("space-y-16"), g.Group(items)),
		),
	)
}

func ventureArticle(v content.Venture, flipped bool) g.Node {
	imageClass, textClass := "", ""
	if flipped {
		imageClass, textClass = " md:col-start-2", " md:col-start-1 md:row-start-1"
	}

	return Article(
		Class("venture grid md:grid-cols-2 gap-8 items-center reveal"),
		Div(
			Class("relative h-72 md:h-96 rounded-xl overflow-hidden border border-zinc-700 bg-zinc-800"+imageClass),
			g.If(v.ComingSoon,
				Span(Class("badge absolute top-4 left-4 z-10"), g.Text("COMING SOON")),
			),
			Img(Src(v.Image), Alt(v.Title), Class("object-cover w-full h-full")),
		),
		Div(
			Class("space-y-4"+textClass),
			H3(Class("text-2xl font-bold text-zinc-50"), g.Text(v.Title)),
			P(Class("text-zinc-400"), g.Text(v.Description)),
			A(Class("btn btn-primary"), NavTo(nav.Contact), g.Text(v.Button), icon("arrow-right")),
		),
	)
}
