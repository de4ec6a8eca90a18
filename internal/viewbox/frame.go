package viewbox

import "math"

// BoundingBox is a measured box in container coordinates.
type BoundingBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (b BoundingBox) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Framing is the result of fitting a shape into a detail surface: the
// translation to apply to the shape and the view box to show it with.
type Framing struct {
	Offset Point
	View   ViewBox
}

// CenteringOffset returns the translation that puts shape in the middle of
// container. Each axis is truncated toward zero on its own.
func CenteringOffset(shape, container BoundingBox) Point {
	dx := (container.Width-shape.Width)/2 - shape.X
	dy := (container.Height-shape.Height)/2 - shape.Y
	return Point{X: int(dx), Y: int(dy)}
}

// FramingViewBox returns a fresh view box, limits disabled, sized to shape
// and centered on the container center, then zoomed by marginScale.
// marginScale < 1 leaves room around the shape. A shape with no area
// yields an invalid (zero) extent; callers check Valid.
func FramingViewBox(shape, container BoundingBox, marginScale float64) ViewBox {
	center := Point{X: int(container.Width) / 2, Y: int(container.Height) / 2}
	v := New(center.Sub(Point{X: int(shape.Width / 2), Y: int(shape.Height / 2)}),
		extent(shape.Width), extent(shape.Height), 0, 0)
	v.ZoomToCenter(marginScale)
	return v
}

// Frame computes both halves of a framing from one measurement.
func Frame(shape, container BoundingBox, marginScale float64) Framing {
	return Framing{
		Offset: CenteringOffset(shape, container),
		View:   FramingViewBox(shape, container, marginScale),
	}
}

func extent(f float64) uint32 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}
