package nav

// Behavior selects how the host animates a scroll.
type Behavior int

const (
	Instant Behavior = iota
	Smooth
)

func (b Behavior) String() string {
	if b == Smooth {
		return "smooth"
	}
	return "instant"
}

// Element is a rendered anchor the host can bring into view.
type Element interface {
	ScrollIntoView(b Behavior)
}

// Document resolves anchor ids against what the host has rendered.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Navigate requests a smooth scroll to section s if the document renders it.
// closePanel is called exactly once whether or not the target exists.
func Navigate(doc Document, s Section, closePanel func()) {
	if doc != nil {
		if el, ok := doc.ElementByID(s.ID()); ok {
			el.ScrollIntoView(Smooth)
		}
	}
	if closePanel != nil {
		closePanel()
	}
}

// Shell owns the page-level interactive state: the navigation panel.
type Shell struct {
	doc   Document
	panel Panel
}

// NewShell returns a shell over doc with the panel closed.
func NewShell(doc Document) *Shell {
	return &Shell{doc: doc}
}

// Restore returns a shell over doc resuming a previously stored panel state.
func Restore(doc Document, p Panel) *Shell {
	return &Shell{doc: doc, panel: p}
}

func (s *Shell) Panel() Panel {
	return s.panel
}

// TogglePanel flips the panel and returns the new state.
func (s *Shell) TogglePanel() Panel {
	s.panel = s.panel.Toggle()
	return s.panel
}

func (s *Shell) ClosePanel() {
	s.panel = Closed
}

// ScrollTo navigates to section and leaves the panel closed.
func (s *Shell) ScrollTo(section Section) {
	Navigate(s.doc, section, s.ClosePanel)
}

// ScrollToID is ScrollTo for untyped input. An unknown id only closes the
// panel.
func (s *Shell) ScrollToID(id string) {
	section, ok := ParseSection(id)
	if !ok {
		s.ClosePanel()
		return
	}
	s.ScrollTo(section)
}
