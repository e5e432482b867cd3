// Package nav implements single-page navigation: the fixed set of page
// sections, the mobile navigation panel, and the navigator that turns a
// section into a smooth scroll request.
package nav

// Section names one scrollable region of the page.
type Section int

const (
	Hero Section = iota
	About
	Expertise
	Ventures
	Contact
)

var sectionIDs = [...]string{
	Hero:      "hero",
	About:     "about",
	Expertise: "expertise",
	Ventures:  "ventures",
	Contact:   "contact",
}

var sectionTitles = [...]string{
	Hero:      "Home",
	About:     "About",
	Expertise: "Expertise",
	Ventures:  "Ventures",
	Contact:   "Contact",
}

// ID returns the anchor id the section is rendered under.
func (s Section) ID() string {
	if !s.Valid() {
		return ""
	}
	return sectionIDs[s]
}

// Title is the menu label for the section.
func (s Section) Title() string {
	if !s.Valid() {
		return ""
	}
	return sectionTitles[s]
}

func (s Section) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return sectionIDs[s]
}

// Valid reports whether s is one of the declared sections.
func (s Section) Valid() bool {
	return s >= Hero && s <= Contact
}

// ParseSection maps an anchor id back to its Section.
func ParseSection(id string) (Section, bool) {
	for i, v := range sectionIDs {
		if v == id {
			return Section(i), true
		}
	}
	return 0, false
}

// Sections returns every section in page order.
func Sections() []Section {
	return []Section{Hero, About, Expertise, Ventures, Contact}
}

// Menu returns the sections listed in the header navigation.
func Menu() []Section {
	return []Section{About, Expertise, Ventures, Contact}
}
