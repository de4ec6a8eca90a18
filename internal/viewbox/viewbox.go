// Package viewbox keeps the visible rectangle of a pannable, zoomable
// surface and computes framings that center a shape inside a container.
package viewbox

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ViewBox is the rectangle of view space currently visible on a surface.
// A zero W or H means the surface has not been laid out yet.
//
// ZoomInLimit is the smallest allowed min(W, H) and ZoomOutLimit the
// largest allowed max(W, H). A zero limit disables that check.
type ViewBox struct {
	TopLeft      Point
	W            uint32
	H            uint32
	ZoomInLimit  uint32
	ZoomOutLimit uint32
}

var ErrMalformed = errors.New("viewbox: malformed")

func New(topLeft Point, w, h, zoomInLimit, zoomOutLimit uint32) ViewBox {
	return ViewBox{TopLeft: topLeft, W: w, H: h, ZoomInLimit: zoomInLimit, ZoomOutLimit: zoomOutLimit}
}

// String returns "x y w h", the form used as a view-rectangle attribute.
func (v ViewBox) String() string {
	return fmt.Sprintf("%d %d %d %d", v.TopLeft.X, v.TopLeft.Y, v.W, v.H)
}

// Parse reads the String form back. Limits are not part of it and come back as 0.
func Parse(s string) (ViewBox, error) {
	f := strings.Fields(s)
	if len(f) != 4 {
		return ViewBox{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformed, len(f))
	}
	x, err := strconv.Atoi(f[0])
	if err != nil {
		return ViewBox{}, fmt.Errorf("%w: x: %w", ErrMalformed, err)
	}
	y, err := strconv.Atoi(f[1])
	if err != nil {
		return ViewBox{}, fmt.Errorf("%w: y: %w", ErrMalformed, err)
	}
	w, err := strconv.ParseUint(f[2], 10, 32)
	if err != nil {
		return ViewBox{}, fmt.Errorf("%w: w: %w", ErrMalformed, err)
	}
	h, err := strconv.ParseUint(f[3], 10, 32)
	if err != nil {
		return ViewBox{}, fmt.Errorf("%w: h: %w", ErrMalformed, err)
	}
	return ViewBox{TopLeft: Point{X: x, Y: y}, W: uint32(w), H: uint32(h)}, nil
}

func (v ViewBox) Valid() bool { return v.W > 0 && v.H > 0 }

func (v ViewBox) Center() Point {
	return v.TopLeft.Add(Point{X: int(v.W / 2), Y: int(v.H / 2)})
}

// Drag moves the rectangle origin. Panning is never limited.
func (v *ViewBox) Drag(delta Point) {
	v.TopLeft = v.TopLeft.Add(delta)
}

// CheckZoomLimits reports whether a zoom step of scale may be applied.
// scale > 1 zooms in, scale < 1 zooms out. The check is made against the
// extents the step would produce, so a rejected step leaves the box as is.
func (v ViewBox) CheckZoomLimits(scale float64) bool {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return false
	}
	if scale == 1 {
		return true
	}
	w, h := float64(v.W)/scale, float64(v.H)/scale
	if w < 1 || h < 1 || w > math.MaxUint32 || h > math.MaxUint32 {
		return false
	}
	if v.ZoomInLimit == 0 && v.ZoomOutLimit == 0 {
		return true
	}
	nw, nh := uint32(w), uint32(h)
	if scale > 1 && v.ZoomInLimit != 0 && min(nw, nh) <= v.ZoomInLimit {
		return false
	}
	if scale < 1 && v.ZoomOutLimit != 0 && max(nw, nh) >= v.ZoomOutLimit {
		return false
	}
	return true
}

// ZoomTo divides both extents by scale (truncating) and centers the result
// on center. It returns false, leaving v untouched, when the limits reject
// the step.
func (v *ViewBox) ZoomTo(center Point, scale float64) bool {
	if !v.CheckZoomLimits(scale) {
		return false
	}
	v.W = uint32(float64(v.W) / scale)
	v.H = uint32(float64(v.H) / scale)
	v.TopLeft = center.Sub(Point{X: int(v.W / 2), Y: int(v.H / 2)})
	return true
}

// ZoomToCenter zooms keeping the current center in place.
func (v *ViewBox) ZoomToCenter(scale float64) bool {
	return v.ZoomTo(v.Center(), scale)
}
