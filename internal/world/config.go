package world

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"islands/internal/core"
	"islands/internal/terrain"
	"islands/internal/territory"
)

// Config composes terrain and growth settings.
type Config struct {
	Terrain terrain.Params   `yaml:"terrain"`
	Growth  territory.Config `yaml:"growth"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Terrain: terrain.DefaultParams(),
		Growth:  territory.DefaultConfig(),
	}
}

// LoadFile reads a YAML config on top of the defaults. Durations are written
// as strings such as "50ms".
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every malformed setting.
func (c Config) Validate() error {
	return errors.Join(c.Terrain.Validate(), c.Growth.Validate())
}

// Apply sets values from flag-style key/value pairs. Unknown keys and
// unparsable values are errors.
func (c *Config) Apply(kv map[string]string) error {
	var errs []error
	for key, value := range kv {
		if err := c.set(key, value); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s=%q: %v", core.ErrInvalidConfig, key, value, err))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) set(key, value string) error {
	t := &c.Terrain
	g := &c.Growth
	switch key {
	case "w":
		return setInt(&t.Width, value)
	case "h":
		return setInt(&t.Height, value)
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		t.Seed = v
	case "scale":
		return setFloat(&t.Scale, value)
	case "octaves":
		return setInt(&t.Octaves, value)
	case "persistence":
		return setFloat(&t.Persistence, value)
	case "lacunarity":
		return setFloat(&t.Lacunarity, value)
	case "edge_power":
		return setFloat(&t.EdgePower, value)
	case "sharpen":
		return setFloat(&t.Sharpen, value)
	case "water_level":
		return setFloat(&t.Levels.Water, value)
	case "sand_level":
		return setFloat(&t.Levels.Sand, value)
	case "land_level":
		return setFloat(&t.Levels.Land, value)
	case "forest_level":
		return setFloat(&t.Levels.Forest, value)
	case "growth_water_level":
		return setFloat(&g.WaterLevel, value)
	case "update_interval":
		return setDuration(&g.UpdateInterval, value)
	case "base_delay":
		return setDuration(&g.BaseDelay, value)
	case "delay_k":
		return setFloat(&g.DelayK, value)
	case "bootstrap_area":
		return setInt(&g.BootstrapArea, value)
	case "bootstrap_delay":
		return setDuration(&g.BootstrapDelay, value)
	case "seafaring_level":
		return setFloat(&g.SeafaringLevel, value)
	default:
		return errors.New("unknown key")
	}
	return nil
}

func setInt(dst *int, value string) error {
	v, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setFloat(dst *float64, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func setDuration(dst *time.Duration, value string) error {
	v, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
