package nav

// Panel is the visibility of the mobile navigation overlay.
type Panel bool

const (
	Closed Panel = false
	Open   Panel = true
)

// Toggle returns the opposite state.
func (p Panel) Toggle() Panel {
	return !p
}

func (p Panel) String() string {
	if p == Open {
		return "open"
	}
	return "closed"
}

// ParsePanel decodes the value written by String. Anything other than
// "open" is Closed.
func ParsePanel(v string) Panel {
	return Panel(v == "open")
}
