package geom

import "github.com/golang/geo/r2"

// Country is one selectable region. Coordinates are lon/lat.
type Country struct {
	ID       string
	Name     string
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	Bounds   r2.Rect
}

// Data is the set of countries loaded from one file.
type Data struct {
	Countries []Country
	Bounds    r2.Rect
}
