package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"countrymap/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
	infoHeight   = 7
)

// layout is the screen geometry in cells. Update and View share it so
// that pointer positions and drawn canvases agree.
type layout struct {
	contentW, contentH int

	mapX, mapY, mapW, mapH int

	paneX, paneW int

	canvasX, canvasY, canvasW, canvasH int
}

func (m Model) layout() layout {
	l := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
		mapY:     headerHeight,
	}
	l.mapH = l.contentH
	if m.showSidebar {
		l.mapX = sidebarWidth + 1
	}
	if m.detail.isOpen {
		l.paneW = max(24, l.contentW*2/5)
	}
	l.mapW = max(10, l.contentW-l.mapX-l.paneW)
	l.paneX = l.mapX + l.mapW
	// border and padding on both sides, border and title above
	l.canvasX = l.paneX + 2
	l.canvasY = l.mapY + 2
	l.canvasW = max(4, l.paneW-4)
	l.canvasH = max(2, l.contentH-3-infoHeight)
	return l
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	header := titleStyle.Render(" countrymap ─ terminal world map ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	// Map
	filled := []string{m.hoverID}
	if m.detail.isOpen {
		filled = append(filled, m.detail.id)
	}
	ascii := renderShapes(m.shapes, m.view, l.mapW, l.mapH, filled...)
	mapView := lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).Render(ascii)

	cols := []string{}
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, l.contentH-2)
		cols = append(cols, lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View()), " ")
	}
	cols = append(cols, mapView)
	if m.detail.isOpen {
		cols = append(cols, m.renderDetail(l))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	// Footer / help
	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp())
	right := ""
	if s, ok := m.shapeByID(m.hoverID); ok {
		right = s.Name + "  "
	}
	right = dimStyle.Render("  " + right + "view " + m.view.String() + " ")
	spacerW := max(0, l.contentW-lipgloss.Width(left)-lipgloss.Width(right))
	right = lipgloss.Place(spacerW+lipgloss.Width(right), 1, lipgloss.Right, lipgloss.Center, right)
	footer := lipgloss.NewStyle().Width(l.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).Render(ui)
}

func (m Model) renderDetail(l layout) string {
	title := titleStyle.Render(m.detail.name) + dimStyle.Render("  "+m.detail.id)
	var canvas string
	if m.detail.framed {
		canvas = renderShapes([]geom.Shape{m.detail.shape}, m.detail.view, l.canvasW, l.canvasH, m.detail.id)
	} else {
		canvas = dimStyle.Render("framing…")
	}
	canvas = lipgloss.NewStyle().Width(l.canvasW).Height(l.canvasH).Render(canvas)

	m.tbl.SetWidth(l.canvasW)
	m.tbl.SetHeight(infoHeight - 2)
	tbl := lipgloss.NewStyle().MaxHeight(infoHeight).Render(m.tbl.View())

	content := lipgloss.JoinVertical(lipgloss.Left, title, canvas, tbl)
	return boxStyle.Width(l.paneW - 2).Height(l.contentH - 2).Render(content)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag/↑↓←→ pan",
		"wheel/+/- zoom",
		"0 reset",
		"click select",
		"Tab list",
		"Esc close",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
