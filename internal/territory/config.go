package territory

import (
	"errors"
	"fmt"
	"time"

	"islands/internal/core"
)

// Config holds the growth tunables shared by every territory.
type Config struct {
	// WaterLevel is the height below which cells cannot be claimed.
	WaterLevel float64 `yaml:"water_level"`
	// UpdateInterval throttles frontier sweeps.
	UpdateInterval time.Duration `yaml:"update_interval"`
	// BaseDelay is multiplied by cell height and DelayK to get the wait before a claim.
	BaseDelay time.Duration `yaml:"base_delay"`
	DelayK    float64       `yaml:"delay_k"`
	// Territories smaller than BootstrapArea wait only BootstrapDelay per cell.
	BootstrapArea  int           `yaml:"bootstrap_area"`
	BootstrapDelay time.Duration `yaml:"bootstrap_delay"`
	// SeafaringLevel is reserved and not consulted by growth.
	SeafaringLevel float64 `yaml:"seafaring_level"`
}

// DefaultConfig returns the standard growth configuration.
func DefaultConfig() Config {
	return Config{
		WaterLevel:     0.24,
		UpdateInterval: 50 * time.Millisecond,
		BaseDelay:      27 * time.Millisecond,
		DelayK:         1.3,
		BootstrapArea:  30,
		BootstrapDelay: time.Millisecond,
		SeafaringLevel: 1,
	}
}

// Validate reports every malformed setting. Each error wraps core.ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: growth: "+format, append([]any{core.ErrInvalidConfig}, args...)...))
	}
	if c.WaterLevel < 0 || c.WaterLevel > 1 {
		bad("water_level must be within [0,1], got %g", c.WaterLevel)
	}
	if c.UpdateInterval < 0 {
		bad("update_interval must not be negative, got %v", c.UpdateInterval)
	}
	if c.BaseDelay < 0 {
		bad("base_delay must not be negative, got %v", c.BaseDelay)
	}
	if c.DelayK < 0 {
		bad("delay_k must not be negative, got %g", c.DelayK)
	}
	if c.BootstrapArea < 0 {
		bad("bootstrap_area must not be negative, got %d", c.BootstrapArea)
	}
	if c.BootstrapDelay < 0 {
		bad("bootstrap_delay must not be negative, got %v", c.BootstrapDelay)
	}
	return errors.Join(errs...)
}
