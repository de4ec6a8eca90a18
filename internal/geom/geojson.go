package geom

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("geojson: invalid json")
	ErrNoCountries = errors.New("geojson: no polygon features found")
)

var (
	idKeys   = []string{"id", "iso_a3", "ISO_A3", "iso_a2", "ISO_A2"}
	nameKeys = []string{"name", "NAME", "admin", "ADMIN"}
)

// LoadCountries reads a GeoJSON file of country outlines.
func LoadCountries(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("load %s: %w", path, err)
	}
	d, err := ParseCountries(b)
	if err != nil {
		return Data{}, fmt.Errorf("load %s: %w", path, err)
	}
	return d, nil
}

// ParseCountries reads Polygon and MultiPolygon features. Other geometry
// types are skipped. Features sharing an id are merged into one country.
func ParseCountries(b []byte) (Data, error) {
	if !gjson.ValidBytes(b) {
		return Data{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(b)
	var features []gjson.Result
	switch t := root.Get("type").String(); t {
	case "FeatureCollection":
		features = root.Get("features").Array()
	case "Feature":
		features = []gjson.Result{root}
	default:
		return Data{}, fmt.Errorf("geojson: unsupported type %q", t)
	}

	d := Data{Bounds: r2.EmptyRect()}
	index := map[string]int{}
	for i, f := range features {
		var polys [][][][2]float64
		g := f.Get("geometry")
		switch g.Get("type").String() {
		case "Polygon":
			polys = append(polys, parsePolygon(g.Get("coordinates")))
		case "MultiPolygon":
			g.Get("coordinates").ForEach(func(_, p gjson.Result) bool {
				polys = append(polys, parsePolygon(p))
				return true
			})
		default:
			continue
		}
		bounds := polygonBounds(polys)
		if bounds.IsEmpty() {
			continue
		}
		id := featureID(f, i)
		if j, ok := index[id]; ok {
			c := &d.Countries[j]
			c.Polygons = append(c.Polygons, polys...)
			c.Bounds = c.Bounds.Union(bounds)
		} else {
			index[id] = len(d.Countries)
			d.Countries = append(d.Countries, Country{
				ID:       id,
				Name:     featureName(f, id),
				Polygons: polys,
				Bounds:   bounds,
			})
		}
		d.Bounds = d.Bounds.Union(bounds)
	}
	if len(d.Countries) == 0 {
		return Data{}, ErrNoCountries
	}
	return d, nil
}

func parsePolygon(v gjson.Result) [][][2]float64 {
	var poly [][][2]float64
	v.ForEach(func(_, ring gjson.Result) bool {
		var r [][2]float64
		ring.ForEach(func(_, pt gjson.Result) bool {
			a := pt.Array()
			if len(a) >= 2 {
				r = append(r, [2]float64{a[0].Float(), a[1].Float()})
			}
			return true
		})
		if len(r) >= 3 {
			poly = append(poly, r)
		}
		return true
	})
	return poly
}

func polygonBounds(polys [][][][2]float64) r2.Rect {
	b := r2.EmptyRect()
	for _, poly := range polys {
		for _, ring := range poly {
			for _, p := range ring {
				b = b.AddPoint(r2.Point{X: p[0], Y: p[1]})
			}
		}
	}
	return b
}

func featureID(f gjson.Result, i int) string {
	if id := strings.TrimSpace(f.Get("id").String()); id != "" {
		return id
	}
	props := f.Get("properties")
	for _, k := range idKeys {
		if v := strings.TrimSpace(props.Get(k).String()); v != "" {
			return v
		}
	}
	return fmt.Sprintf("feature-%d", i)
}

func featureName(f gjson.Result, id string) string {
	props := f.Get("properties")
	for _, k := range nameKeys {
		if v := strings.TrimSpace(props.Get(k).String()); v != "" {
			return v
		}
	}
	return id
}
