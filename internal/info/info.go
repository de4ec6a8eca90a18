// Package info holds the descriptive data shown next to a selected country.
package info

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Vaccine struct {
	Name string `yaml:"name"`
	Desc string `yaml:"desc"`
}

type Country struct {
	ID       string    `yaml:"id"`
	Vaccines []Vaccine `yaml:"vaccines"`
}

// Catalog indexes countries by upper-cased id.
type Catalog map[string]Country

type file struct {
	Countries []Country `yaml:"countries"`
}

func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load info: %w", err)
	}
	return Parse(b)
}

func Parse(b []byte) (Catalog, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse info: %w", err)
	}
	c := make(Catalog, len(f.Countries))
	for i, ct := range f.Countries {
		id := key(ct.ID)
		if id == "" {
			return nil, fmt.Errorf("parse info: country %d has no id", i)
		}
		if prev, ok := c[id]; ok {
			ct.Vaccines = append(prev.Vaccines, ct.Vaccines...)
		}
		c[id] = ct
	}
	return c, nil
}

// Lookup is case-insensitive. A nil catalog finds nothing.
func (c Catalog) Lookup(id string) (Country, bool) {
	ct, ok := c[key(id)]
	return ct, ok
}

func key(id string) string { return strings.ToUpper(strings.TrimSpace(id)) }
