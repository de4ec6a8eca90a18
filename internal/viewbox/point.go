package viewbox

// Point is a position or offset in view-space units.
type Point struct {
	X int
	Y int
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }
func (p Point) Neg() Point        { return Point{X: -p.X, Y: -p.Y} }
