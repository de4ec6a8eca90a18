package tui

import (
	"math"
	"slices"
	"strings"

	"github.com/golang/geo/r2"

	"countrymap/internal/geom"
	"countrymap/internal/viewbox"
)

// projector maps view-space units onto a braille microgrid. The view box
// is scaled uniformly to fit and centered, leaving bars on the long side.
type projector struct {
	tl    r2.Point
	scale float64
	offX  float64
	offY  float64
}

func newProjector(v viewbox.ViewBox, wMic, hMic int) (projector, bool) {
	if !v.Valid() || wMic <= 0 || hMic <= 0 {
		return projector{}, false
	}
	s := min(float64(wMic)/float64(v.W), float64(hMic)/float64(v.H))
	return projector{
		tl:    r2.Point{X: float64(v.TopLeft.X), Y: float64(v.TopLeft.Y)},
		scale: s,
		offX:  (float64(wMic) - float64(v.W)*s) / 2,
		offY:  (float64(hMic) - float64(v.H)*s) / 2,
	}, true
}

func (p projector) toMicro(pt r2.Point) (int, int) {
	return int(math.Floor((pt.X-p.tl.X)*p.scale + p.offX)),
		int(math.Floor((pt.Y-p.tl.Y)*p.scale + p.offY))
}

func (p projector) toView(mx, my float64) r2.Point {
	return r2.Point{X: (mx-p.offX)/p.scale + p.tl.X, Y: (my-p.offY)/p.scale + p.tl.Y}
}

// cellDelta converts a pointer movement in cells to view units.
func (p projector) cellDelta(dx, dy int) viewbox.Point {
	return viewbox.Point{X: int(float64(dx*2) / p.scale), Y: int(float64(dy*4) / p.scale)}
}

// visible is the view-space rectangle covered by a w x h cell canvas.
func (p projector) visible(w, h int) r2.Rect {
	return r2.RectFromPoints(p.toView(0, 0), p.toView(float64(w*2), float64(h*4)))
}

// renderShapes draws outlines of shapes seen through v onto a w x h cell
// canvas. Shapes whose id is in filled are also filled.
func renderShapes(shapes []geom.Shape, v viewbox.ViewBox, w, h int, filled ...string) string {
	br := newBrailleBuf(w, h)
	p, ok := newProjector(v, w*2, h*4)
	if ok {
		vis := p.visible(w, h)
		for _, s := range shapes {
			if !s.Bounds.Intersects(vis) {
				continue
			}
			rings := make([][][2]int, 0, len(s.Rings))
			for _, ring := range s.Rings {
				pr := make([][2]int, len(ring))
				for i, pt := range ring {
					pr[i][0], pr[i][1] = p.toMicro(pt)
				}
				rings = append(rings, pr)
			}
			if slices.Contains(filled, s.ID) {
				br.fillRings(rings)
			}
			br.strokeRings(rings)
		}
	}
	return strings.Join(br.toLines(), "\n")
}
