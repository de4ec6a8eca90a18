package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the viewer settings. Fields missing from the file keep
// their defaults; an explicit 0 limit disables that limit.
type Config struct {
	WorldWidth   float64 `yaml:"world_width"`
	WorldHeight  float64 `yaml:"world_height"`
	ZoomStep     float64 `yaml:"zoom_step"`
	ZoomInLimit  uint32  `yaml:"zoom_in_limit"`
	ZoomOutLimit uint32  `yaml:"zoom_out_limit"`
	DetailScale  float64 `yaml:"detail_scale"`
	InfoPath     string  `yaml:"info_path"`
}

func Default() Config {
	return Config{
		WorldWidth:   2000,
		WorldHeight:  1000,
		ZoomStep:     0.05,
		ZoomInLimit:  300,
		ZoomOutLimit: 2000,
		DetailScale:  0.7,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.WorldWidth < 1 || c.WorldHeight < 1 {
		errs = append(errs, fmt.Errorf("world size %vx%v must be at least 1x1", c.WorldWidth, c.WorldHeight))
	}
	if c.WorldWidth > math.MaxUint32 || c.WorldHeight > math.MaxUint32 {
		errs = append(errs, fmt.Errorf("world size %vx%v must not exceed %d", c.WorldWidth, c.WorldHeight, uint32(math.MaxUint32)))
	}
	if c.ZoomStep <= 0 || c.ZoomStep >= 1 {
		errs = append(errs, fmt.Errorf("zoom_step %v must be between 0 and 1", c.ZoomStep))
	}
	if c.DetailScale <= 0 {
		errs = append(errs, fmt.Errorf("detail_scale %v must be positive", c.DetailScale))
	}
	if c.ZoomInLimit != 0 && c.ZoomOutLimit != 0 && c.ZoomInLimit >= c.ZoomOutLimit {
		errs = append(errs, fmt.Errorf("zoom_in_limit %d must be below zoom_out_limit %d", c.ZoomInLimit, c.ZoomOutLimit))
	}
	return errors.Join(errs...)
}
