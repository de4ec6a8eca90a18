package tui

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"countrymap/internal/geom"
)

type countryItem struct {
	id, name string
}

func (c countryItem) Title() string       { return c.name }
func (c countryItem) Description() string { return c.id }
func (c countryItem) FilterValue() string { return c.name + " " + c.id }

func (m *Model) loadPath(p string) tea.Cmd {
	d, err := geom.LoadCountries(p)
	if err != nil {
		log.Printf("load: %v", err)
		m.status = "load error: " + err.Error()
		return nil
	}
	return m.applyData(p, d)
}

// applyData swaps in freshly loaded countries. The main view box is kept;
// an open detail view is re-framed against the new outline or closed.
func (m *Model) applyData(p string, d geom.Data) tea.Cmd {
	m.path = p
	m.world = geom.World{Bounds: d.Bounds, Width: m.cfg.WorldWidth, Height: m.cfg.WorldHeight}
	m.shapes = m.world.Shapes(d)

	items := make([]list.Item, 0, len(m.shapes))
	for _, s := range m.shapes {
		items = append(items, countryItem{id: s.ID, name: s.Name})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(countryItem).name < items[j].(countryItem).name })
	m.l.SetItems(items)

	m.status = "loaded: " + filepath.Base(p) + fmt.Sprintf("  countries=%d", len(m.shapes))
	log.Printf("loaded %s: %d countries", p, len(m.shapes))

	if m.detail.isOpen {
		if s, ok := m.shapeByID(m.detail.id); ok {
			m.detail.open(s)
			return frameCmd(s.ID)
		}
		m.detail.close()
	}
	if m.hoverID != "" {
		if _, ok := m.shapeByID(m.hoverID); !ok {
			m.hoverID = ""
		}
	}
	return nil
}

func (m Model) shapeByID(id string) (geom.Shape, bool) {
	for _, s := range m.shapes {
		if s.ID == id {
			return s, true
		}
	}
	return geom.Shape{}, false
}
