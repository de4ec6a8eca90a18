package viewbox

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 3, Y: -4}
	b := Point{X: -10, Y: 7}

	assert.Equal(t, Point{X: -7, Y: 3}, a.Add(b))
	assert.Equal(t, Point{X: 13, Y: -11}, a.Sub(b))
	assert.Equal(t, Point{X: -3, Y: 4}, a.Neg())
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestString(t *testing.T) {
	v := New(Point{X: -12, Y: 40}, 2000, 1000, 300, 2000)
	assert.Equal(t, "-12 40 2000 1000", v.String())

	fields := strings.Fields(v.String())
	require.Len(t, fields, 4)
	for _, f := range fields {
		_, err := strconv.Atoi(f)
		assert.NoError(t, err, f)
	}
}

func TestParseRoundTrip(t *testing.T) {
	tests := []ViewBox{
		New(Point{}, 0, 0, 0, 0),
		New(Point{X: 1, Y: 2}, 3, 4, 0, 0),
		New(Point{X: -500, Y: -250}, 1904, 952, 0, 0),
		New(Point{X: math.MaxInt32, Y: math.MinInt32}, math.MaxUint32, 1, 0, 0),
	}
	for _, want := range tests {
		t.Run(want.String(), func(t *testing.T) {
			got, err := Parse(want.String())
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseLimitsNotSerialized(t *testing.T) {
	v := New(Point{X: 5, Y: 6}, 70, 80, 300, 2000)
	got, err := Parse(v.String())
	require.NoError(t, err)
	assert.Equal(t, v.TopLeft, got.TopLeft)
	assert.Equal(t, v.W, got.W)
	assert.Equal(t, v.H, got.H)
	assert.Zero(t, got.ZoomInLimit)
	assert.Zero(t, got.ZoomOutLimit)
}

func TestParseMalformed(t *testing.T) {
	for _, s := range []string{"", "1 2 3", "1 2 3 4 5", "a 2 3 4", "1 2 -3 4", "1 2 3 4.5", "1 2 3 4294967296"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseToleratesWhitespace(t *testing.T) {
	got, err := Parse("  1\t2\n 3   4 ")
	require.NoError(t, err)
	assert.Equal(t, New(Point{X: 1, Y: 2}, 3, 4, 0, 0), got)
}

func TestDragRoundTrip(t *testing.T) {
	deltas := []Point{{}, {X: 1}, {Y: -1}, {X: 1234, Y: -987}, {X: -50, Y: -50}}
	for _, d := range deltas {
		v := New(Point{X: 100, Y: -20}, 400, 300, 300, 2000)
		before := v
		v.Drag(d)
		assert.Equal(t, before.TopLeft.Add(d), v.TopLeft)
		assert.Equal(t, before.W, v.W)
		assert.Equal(t, before.H, v.H)
		v.Drag(d.Neg())
		assert.Equal(t, before, v)
	}
}

func TestDragIgnoresLimits(t *testing.T) {
	v := New(Point{}, 300, 300, 300, 300)
	v.Drag(Point{X: 1 << 20, Y: -(1 << 20)})
	assert.Equal(t, Point{X: 1 << 20, Y: -(1 << 20)}, v.TopLeft)
}

func TestCenter(t *testing.T) {
	assert.Equal(t, Point{X: 1000, Y: 500}, New(Point{}, 2000, 1000, 0, 0).Center())
	// odd extents truncate
	assert.Equal(t, Point{X: 12, Y: -8}, New(Point{X: 10, Y: -10}, 5, 5, 0, 0).Center())
}

func TestZoomToCenterTruncates(t *testing.T) {
	tests := []struct {
		name  string
		w, h  uint32
		scale float64
		wantW uint32
		wantH uint32
	}{
		{"wheel in", 2000, 1000, 1.05, 1904, 952},
		{"third", 200, 200, 3.0, 66, 66},
		{"margin", 40, 20, 0.8, 50, 25},
		{"detail scale", 101, 57, 0.7, 144, 81},
		{"half", 900, 900, 0.5, 1800, 1800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(Point{}, tt.w, tt.h, 0, 0)
			center := v.Center()
			require.True(t, v.ZoomToCenter(tt.scale))
			assert.Equal(t, tt.wantW, v.W)
			assert.Equal(t, tt.wantH, v.H)
			assert.Equal(t, center, v.Center())
		})
	}
}

func TestZoomRoundTrip(t *testing.T) {
	tests := []struct {
		w, h  uint32
		scale float64
	}{
		{2000, 1000, 1.05},
		{800, 600, 2},
		{640, 480, 0.8},
		{1000, 1000, 1.25},
		{333, 777, 0.5},
	}
	for _, tt := range tests {
		v := New(Point{X: -37, Y: 91}, tt.w, tt.h, 0, 0)
		center := v.Center()
		require.True(t, v.ZoomToCenter(tt.scale))
		require.True(t, v.ZoomToCenter(1/tt.scale))
		assert.InDelta(t, float64(tt.w), float64(v.W), 1, "scale %v", tt.scale)
		assert.InDelta(t, float64(tt.h), float64(v.H), 1, "scale %v", tt.scale)
		assert.Equal(t, center, v.Center(), "scale %v", tt.scale)
	}
}

func TestZoomTo(t *testing.T) {
	v := New(Point{}, 1000, 500, 0, 0)
	require.True(t, v.ZoomTo(Point{X: 300, Y: -40}, 2))
	assert.Equal(t, New(Point{X: 50, Y: -165}, 500, 250, 0, 0), v)
	assert.Equal(t, Point{X: 300, Y: -40}, v.Center())
}

func TestCheckZoomLimits(t *testing.T) {
	tests := []struct {
		name  string
		v     ViewBox
		scale float64
		want  bool
	}{
		{"disabled", New(Point{}, 200, 200, 0, 0), 3, true},
		{"in limit crossed", New(Point{}, 200, 200, 100, 0), 3, false},
		{"in limit reached exactly", New(Point{}, 200, 200, 100, 0), 2, false},
		{"in limit kept", New(Point{}, 200, 200, 100, 0), 1.5, true},
		{"in limit ignored when zooming out", New(Point{}, 50, 50, 100, 0), 0.5, true},
		{"out limit crossed", New(Point{}, 900, 900, 0, 1000), 0.5, false},
		{"out limit kept", New(Point{}, 900, 900, 0, 1000), 0.95, true},
		{"out limit ignored when zooming in", New(Point{}, 5000, 5000, 0, 1000), 2, true},
		{"min dimension drives in limit", New(Point{}, 2000, 320, 300, 0), 1.1, false},
		{"max dimension drives out limit", New(Point{}, 1950, 100, 0, 2000), 0.95, false},
		{"unit scale always allowed", New(Point{}, 300, 300, 300, 300), 1, true},
		{"unit scale on sentinel", New(Point{}, 0, 0, 0, 0), 1, true},
		{"zero scale", New(Point{}, 200, 200, 0, 0), 0, false},
		{"negative scale", New(Point{}, 200, 200, 0, 0), -2, false},
		{"nan scale", New(Point{}, 200, 200, 0, 0), math.NaN(), false},
		{"inf scale", New(Point{}, 200, 200, 0, 0), math.Inf(1), false},
		{"would collapse", New(Point{}, 3, 3, 0, 0), 4, false},
		{"sentinel cannot zoom", New(Point{}, 0, 0, 0, 0), 0.5, false},
		{"would overflow", New(Point{}, math.MaxUint32, 1, 0, 0), 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.CheckZoomLimits(tt.scale))
		})
	}
}

func TestRejectedZoomLeavesBoxUnchanged(t *testing.T) {
	in := New(Point{X: 7, Y: 9}, 200, 200, 100, 0)
	before := in
	assert.False(t, in.ZoomToCenter(3))
	assert.Equal(t, before, in)

	out := New(Point{X: -3, Y: 4}, 900, 900, 0, 1000)
	before = out
	assert.False(t, out.ZoomToCenter(0.5))
	assert.Equal(t, before, out)

	zero := New(Point{X: 1, Y: 1}, 200, 200, 0, 0)
	before = zero
	assert.False(t, zero.ZoomTo(Point{X: 99, Y: 99}, 0))
	assert.Equal(t, before, zero)
}

func TestWheelStepsStopAtZoomInLimit(t *testing.T) {
	v := New(Point{}, 2000, 2000, 300, 2000)

	want := []uint32{1904, 1813, 1726, 1643, 1564, 1489, 1418, 1350, 1285, 1223}
	for i, w := range want {
		require.True(t, v.ZoomToCenter(1.05), "step %d", i)
		assert.Equal(t, w, v.W, "step %d", i)
		assert.Equal(t, w, v.H, "step %d", i)
		assert.Greater(t, min(v.W, v.H), v.ZoomInLimit)
	}

	applied := len(want)
	for v.ZoomToCenter(1.05) {
		applied++
		require.Greater(t, min(v.W, v.H), v.ZoomInLimit)
		require.Less(t, applied, 100)
	}
	assert.Equal(t, 38, applied)
	assert.Equal(t, uint32(304), v.W)

	stuck := v
	for i := 0; i < 5; i++ {
		assert.False(t, v.ZoomToCenter(1.05))
	}
	assert.Equal(t, stuck, v)

	// zooming back out still works
	assert.True(t, v.ZoomToCenter(1/1.05))
}

func TestZoomOutFromMaxExtentRejected(t *testing.T) {
	v := New(Point{}, 2000, 1000, 300, 2000)
	before := v
	assert.False(t, v.ZoomToCenter(0.95))
	assert.Equal(t, before, v)
}

func TestValid(t *testing.T) {
	assert.False(t, ViewBox{}.Valid())
	assert.False(t, New(Point{}, 10, 0, 0, 0).Valid())
	assert.True(t, New(Point{}, 1, 1, 0, 0).Valid())
}
