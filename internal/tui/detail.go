package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"countrymap/internal/geom"
	"countrymap/internal/viewbox"
)

// detailView shows one country centered in its own surface. Its view box
// is independent of the main map's and has no zoom limits.
type detailView struct {
	isOpen bool
	id     string
	name   string
	source geom.Shape // outline in world units, as on the main map
	shape  geom.Shape // outline translated into the pane
	view   viewbox.ViewBox
	framed bool
}

// frameMsg asks for the detail view to be framed. It is delivered after
// the pane has been laid out once, when its size is known.
type frameMsg struct{ id string }

func frameCmd(id string) tea.Cmd {
	return func() tea.Msg { return frameMsg{id: id} }
}

func (d *detailView) open(s geom.Shape) {
	*d = detailView{isOpen: true, id: s.ID, name: s.Name, source: s}
}

func (d *detailView) close() { *d = detailView{} }

// selectCountry handles a country selection by id, from a click on the
// map or the list. The id is not interpreted beyond finding the outline.
func (m *Model) selectCountry(id string) tea.Cmd {
	s, ok := m.shapeByID(id)
	if !ok {
		m.status = "unknown country: " + id
		return nil
	}
	m.detail.open(s)
	m.refreshInfo(id)
	m.status = "selected: " + s.Name
	log.Printf("select %s (%s)", s.ID, s.Name)
	return frameCmd(s.ID)
}

// frameDetail measures the outline and the pane and replaces the detail
// view box with a fresh framing.
func (m *Model) frameDetail() {
	l := m.layout()
	container := viewbox.BoundingBox{Width: float64(l.canvasW * 2), Height: float64(l.canvasH * 4)}
	f := viewbox.Frame(m.detail.source.Box(), container, m.cfg.DetailScale)
	m.detail.shape = m.detail.source.Translate(f.Offset)
	m.detail.view = f.View
	m.detail.framed = true
	log.Printf("frame %s: offset=%+v view=%q", m.detail.id, f.Offset, f.View)
}
