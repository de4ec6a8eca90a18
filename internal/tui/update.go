package tui

import (
	"fmt"
	"log"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"countrymap/internal/geom"
	"countrymap/internal/viewbox"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
		}
		// the pane changed size; measure again after it is redrawn
		if m.detail.isOpen {
			m.refreshInfo(m.detail.id)
			m.detail.framed = false
			cmds = append(cmds, frameCmd(m.detail.id))
		}
	case frameMsg:
		if m.detail.isOpen && m.detail.id == msg.id && !m.detail.framed {
			m.frameDetail()
		}
		return m, nil
	case reloadMsg:
		if msg.err != nil {
			log.Printf("reload: %v", msg.err)
			m.status = "reload error: " + msg.err.Error()
		} else {
			cmds = append(cmds, m.applyData(m.path, msg.data))
		}
		return m, tea.Batch(append(cmds, m.watchCmd())...)
	case watchErrMsg:
		log.Printf("watch: %v", msg.err)
		m.status = "watch error: " + msg.err.Error()
		return m, m.watchCmd()
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "+", "=":
			m.zoom(surfaceMap, 1+m.cfg.ZoomStep)
		case "-", "_":
			m.zoom(surfaceMap, 1-m.cfg.ZoomStep)
		case "0":
			m.view = mainViewBox(m.cfg)
			m.status = "view reset"
		case "up":
			m.view.Drag(viewbox.Point{Y: -panStep(m.view.H)})
		case "down":
			m.view.Drag(viewbox.Point{Y: panStep(m.view.H)})
		case "left":
			m.view.Drag(viewbox.Point{X: -panStep(m.view.W)})
		case "right":
			m.view.Drag(viewbox.Point{X: panStep(m.view.W)})
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.l.SetSize(sidebarWidth-2, m.height-headerHeight-footerHeight-2)
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "esc":
			if m.detail.isOpen {
				m.detail.close()
				m.status = "detail closed"
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(countryItem); ok {
					cmds = append(cmds, m.selectCountry(it.id))
				}
			}
		}
	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func panStep(extent uint32) int { return max(1, int(extent/20)) }

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	l := m.layout()
	surf := m.surfaceAt(l, msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.zoom(surf, 1+m.cfg.ZoomStep)
		case tea.MouseButtonWheelDown:
			m.zoom(surf, 1-m.cfg.ZoomStep)
		case tea.MouseButtonLeft:
			m.drag = dragState{active: true, x: msg.X, y: msg.Y, surface: surf}
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft && m.drag.active {
			dx, dy := msg.X-m.drag.x, msg.Y-m.drag.y
			if dx != 0 || dy != 0 {
				// cells worth less than one view unit stay pending
				d := m.pan(l, m.drag.surface, dx, dy)
				if d.X != 0 {
					m.drag.x = msg.X
				}
				if d.Y != 0 {
					m.drag.y = msg.Y
				}
				m.drag.moved = true
			}
			return nil
		}
		m.hoverID = ""
		if surf == surfaceMap {
			if s, ok := m.shapeAt(l, msg.X, msg.Y); ok {
				m.hoverID = s.ID
			}
		}
	case tea.MouseActionRelease:
		click := m.drag.active && !m.drag.moved && m.drag.surface == surfaceMap && surf == surfaceMap
		m.drag = dragState{}
		if click {
			if s, ok := m.shapeAt(l, msg.X, msg.Y); ok {
				return m.selectCountry(s.ID)
			}
		}
	}
	return nil
}

func (m *Model) zoom(surf surface, scale float64) {
	switch surf {
	case surfaceMap:
		if !m.view.ZoomToCenter(scale) {
			m.status = "zoom limit reached"
			return
		}
		m.status = fmt.Sprintf("zoom: %dx%d", m.view.W, m.view.H)
	case surfaceDetail:
		if m.detail.framed {
			m.detail.view.ZoomToCenter(scale)
		}
	}
}

// pan drags the surface's view box against the pointer so the content
// follows it, and returns the delta applied in view units.
func (m *Model) pan(l layout, surf surface, dx, dy int) viewbox.Point {
	var d viewbox.Point
	switch surf {
	case surfaceMap:
		if p, ok := newProjector(m.view, l.mapW*2, l.mapH*4); ok {
			d = p.cellDelta(-dx, -dy)
			m.view.Drag(d)
		}
	case surfaceDetail:
		if p, ok := newProjector(m.detail.view, l.canvasW*2, l.canvasH*4); ok && m.detail.framed {
			d = p.cellDelta(-dx, -dy)
			m.detail.view.Drag(d)
		}
	}
	return d
}

func (m Model) surfaceAt(l layout, x, y int) surface {
	switch {
	case x >= l.mapX && x < l.mapX+l.mapW && y >= l.mapY && y < l.mapY+l.mapH:
		return surfaceMap
	case m.detail.isOpen && x >= l.canvasX && x < l.canvasX+l.canvasW && y >= l.canvasY && y < l.canvasY+l.canvasH:
		return surfaceDetail
	}
	return surfaceNone
}

// shapeAt hit-tests the center of the cell under the pointer.
func (m Model) shapeAt(l layout, x, y int) (geom.Shape, bool) {
	p, ok := newProjector(m.view, l.mapW*2, l.mapH*4)
	if !ok {
		return geom.Shape{}, false
	}
	pt := p.toView(float64((x-l.mapX)*2+1), float64((y-l.mapY)*4+2))
	return geom.ShapeAt(m.shapes, pt)
}
