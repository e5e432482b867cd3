package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/fremyrosso/site/internal/contact"
	"github.com/fremyrosso/site/internal/content"
	"github.com/fremyrosso/site/internal/nav"
)

// ContactFormID is the element htmx swaps after a submit.
const ContactFormID = "contact-form"

func ContactSection(c content.Contact, form g.Node) g.Node {
	return Section(
		ID(nav.Contact.ID()),
		Class("py-16 md:py-24"),
		Div(
			Class("container mx-auto px-4"),
			sectionHeading(c.Title, c.Intro),
			Div(
				Class("flex flex-col lg:flex-row lg:items-start justify-center gap-12"),
				Div(
					Class("flex flex-col gap-8 reveal"),
					g.Map(c.Links, contactLink),
				),
				form,
			),
		),
	)
}

func contactLink(l content.ContactLink) g.Node {
	var value g.Node
	if l.Href != "" {
		value = A(Class("text-zinc-400 hover:text-white"), Href(l.Href), g.Text(l.Text))
	} else {
		value = P(Class("text-zinc-400"), g.Text(l.Text))
	}
	return Div(
		Class("flex items-start gap-4"),
		Div(Class("h-6 w-6 text-zinc-100"), icon(l.Icon)),
		Div(
			H3(Class("text-xl font-semibold text-zinc-50"), g.Text(l.Title)),
			value,
		),
	)
}

// ContactForm renders d. A non-nil ack is shown above the fields.
func ContactForm(d *contact.Draft, ack *contact.Acknowledgment) g.Node {
	if d == nil {
		d = &contact.Draft{}
	}
	var status g.Node
	if ack != nil {
		status = P(Class("ack text-emerald-400"), g.Attr("role", "status"), g.Text(ack.Message))
	}
	return g.El("form",
		ID(ContactFormID),
		Class("w-full max-w-xl space-y-4 reveal"),
		Method("post"),
		Action("/contact"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "#"+ContactFormID),
		g.Attr("hx-swap", "outerHTML"),

		status,

		Div(
			Class("grid grid-cols-2 gap-4"),
			textInput(d, contact.FirstName),
			textInput(d, contact.LastName),
		),
		textInput(d, contact.Email),
		textInput(d, contact.Subject),
		Div(
			Class("space-y-2"),
			Label(For(contact.Message.Name()), g.Text(contact.Message.Label())),
			Textarea(
				ID(contact.Message.Name()),
				Name(contact.Message.Name()),
				g.Attr("rows", "5"),
				Class("input w-full"),
				g.Text(d.Get(contact.Message)),
			),
		),
		Button(Type("submit"), Class("btn btn-primary w-full"), g.Text("Send Message")),
	)
}

// Inputs are plain text; the browser must not reject anything either.
func textInput(d *contact.Draft, f contact.Field) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(f.Name()), g.Text(f.Label())),
		Input(
			ID(f.Name()),
			Name(f.Name()),
			Type("text"),
			Class("input w-full"),
			Value(d.Get(f)),
		),
	)
}
