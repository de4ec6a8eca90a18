package geom

import (
	"github.com/golang/geo/r2"

	"countrymap/internal/viewbox"
)

// Shape is a country outline projected into view space (y grows down).
type Shape struct {
	ID     string
	Name   string
	Rings  [][]r2.Point // every ring of every polygon; filled even-odd
	Bounds r2.Rect
}

// World maps lon/lat inside Bounds linearly onto a Width x Height view space.
type World struct {
	Bounds r2.Rect
	Width  float64
	Height float64
}

func (w World) Project(lon, lat float64) r2.Point {
	sz := w.Bounds.Size()
	if sz.X <= 0 {
		sz.X = 1
	}
	if sz.Y <= 0 {
		sz.Y = 1
	}
	return r2.Point{
		X: (lon - w.Bounds.X.Lo) / sz.X * w.Width,
		Y: (w.Bounds.Y.Hi - lat) / sz.Y * w.Height,
	}
}

// Shapes projects every country of d.
func (w World) Shapes(d Data) []Shape {
	out := make([]Shape, 0, len(d.Countries))
	for _, c := range d.Countries {
		s := Shape{ID: c.ID, Name: c.Name, Bounds: r2.EmptyRect()}
		for _, poly := range c.Polygons {
			for _, ring := range poly {
				pr := make([]r2.Point, len(ring))
				for i, p := range ring {
					pr[i] = w.Project(p[0], p[1])
					s.Bounds = s.Bounds.AddPoint(pr[i])
				}
				s.Rings = append(s.Rings, pr)
			}
		}
		out = append(out, s)
	}
	return out
}

// Box is the shape's bounding box as the renderer would measure it.
func (s Shape) Box() viewbox.BoundingBox {
	if s.Bounds.IsEmpty() {
		return viewbox.BoundingBox{}
	}
	lo, sz := s.Bounds.Lo(), s.Bounds.Size()
	return viewbox.BoundingBox{X: lo.X, Y: lo.Y, Width: sz.X, Height: sz.Y}
}

// Translate returns a copy of s moved by off.
func (s Shape) Translate(off viewbox.Point) Shape {
	d := r2.Point{X: float64(off.X), Y: float64(off.Y)}
	t := Shape{ID: s.ID, Name: s.Name, Bounds: r2.EmptyRect()}
	t.Rings = make([][]r2.Point, len(s.Rings))
	for i, ring := range s.Rings {
		t.Rings[i] = make([]r2.Point, len(ring))
		for j, p := range ring {
			t.Rings[i][j] = p.Add(d)
			t.Bounds = t.Bounds.AddPoint(t.Rings[i][j])
		}
	}
	return t
}

// Contains reports whether p is inside the shape (even-odd rule).
func (s Shape) Contains(p r2.Point) bool {
	if !s.Bounds.ContainsPoint(p) {
		return false
	}
	in := false
	for _, ring := range s.Rings {
		for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
			a, b := ring[i], ring[j]
			if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
				in = !in
			}
		}
	}
	return in
}

// ShapeAt returns the topmost shape containing p. Later shapes are drawn
// over earlier ones.
func ShapeAt(shapes []Shape, p r2.Point) (Shape, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if shapes[i].Contains(p) {
			return shapes[i], true
		}
	}
	return Shape{}, false
}
