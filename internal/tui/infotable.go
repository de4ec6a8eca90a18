package tui

import (
	table "github.com/charmbracelet/bubbles/table"
)

// refreshInfo rebuilds the info table for the selected country.
func (m *Model) refreshInfo(id string) {
	var rows []table.Row
	if c, ok := m.info.Lookup(id); ok {
		for _, v := range c.Vaccines {
			rows = append(rows, table.Row{v.Name, v.Desc})
		}
	}
	if len(rows) == 0 {
		rows = []table.Row{{"no data", ""}}
	}
	w := m.layout().canvasW
	nameW := min(20, max(8, w/3))
	cols := []table.Column{
		{Title: "Vaccine", Width: nameW},
		{Title: "Notes", Width: max(8, w-nameW-4)},
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}
