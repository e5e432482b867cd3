package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scrollCall struct {
	id       string
	behavior Behavior
}

type fakeDocument struct {
	ids   map[string]bool
	calls []scrollCall
}

func newFakeDocument(ids ...string) *fakeDocument {
	d := &fakeDocument{ids: make(map[string]bool)}
	for _, id := range ids {
		d.ids[id] = true
	}
	return d
}

type fakeElement struct {
	doc *fakeDocument
	id  string
}

func (e fakeElement) ScrollIntoView(b Behavior) {
	e.doc.calls = append(e.doc.calls, scrollCall{id: e.id, behavior: b})
}

func (d *fakeDocument) ElementByID(id string) (Element, bool) {
	if !d.ids[id] {
		return nil, false
	}
	return fakeElement{doc: d, id: id}, true
}

func fullDocument() *fakeDocument {
	var ids []string
	for _, s := range Sections() {
		ids = append(ids, s.ID())
	}
	return newFakeDocument(ids...)
}

func TestNavigateClosesPanelForEverySection(t *testing.T) {
	for _, section := range Sections() {
		for _, start := range []Panel{Open, Closed} {
			t.Run(section.String()+"/"+start.String(), func(t *testing.T) {
				doc := fullDocument()
				shell := Restore(doc, start)

				shell.ScrollTo(section)

				assert.Equal(t, Closed, shell.Panel())
				require.Len(t, doc.calls, 1)
				assert.Equal(t, scrollCall{id: section.ID(), behavior: Smooth}, doc.calls[0])
			})
		}
	}
}

func TestNavigateMissingTargetIsNoop(t *testing.T) {
	doc := newFakeDocument("hero", "about")
	shell := Restore(doc, Open)

	assert.NotPanics(t, func() { shell.ScrollTo(Ventures) })
	assert.Equal(t, Closed, shell.Panel())
	assert.Empty(t, doc.calls)
}

func TestScrollToUnknownID(t *testing.T) {
	doc := fullDocument()
	shell := Restore(doc, Open)

	shell.ScrollToID("pricing")

	assert.Equal(t, Closed, shell.Panel())
	assert.Empty(t, doc.calls)
}

func TestNavigateNilDocument(t *testing.T) {
	closed := 0
	assert.NotPanics(t, func() {
		Navigate(nil, About, func() { closed++ })
	})
	assert.Equal(t, 1, closed)
}

func TestNavigateCallsCloseOnce(t *testing.T) {
	doc := fullDocument()
	closed := 0
	Navigate(doc, Contact, func() { closed++ })
	assert.Equal(t, 1, closed)
	assert.Len(t, doc.calls, 1)
}

func TestTogglePanel(t *testing.T) {
	shell := NewShell(fullDocument())
	require.Equal(t, Closed, shell.Panel())

	assert.Equal(t, Open, shell.TogglePanel())
	assert.Equal(t, Closed, shell.TogglePanel())
	assert.Equal(t, Closed, shell.Panel())
}

func TestScenarioClickAboutFromClosed(t *testing.T) {
	doc := fullDocument()
	shell := NewShell(doc)

	shell.ScrollTo(About)

	assert.Equal(t, Closed, shell.Panel())
	assert.Equal(t, []scrollCall{{id: "about", behavior: Smooth}}, doc.calls)
}

func TestScenarioOpenPanelThenContact(t *testing.T) {
	doc := fullDocument()
	shell := NewShell(doc)

	shell.TogglePanel()
	require.Equal(t, Open, shell.Panel())

	shell.ScrollTo(Contact)

	assert.Equal(t, Closed, shell.Panel())
	assert.Equal(t, []scrollCall{{id: "contact", behavior: Smooth}}, doc.calls)
}
