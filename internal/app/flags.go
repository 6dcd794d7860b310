package app

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"islands/internal/world"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later keys win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

// Config represents the command-line parameters shared by both binaries.
type Config struct {
	ConfigPath string
	Overrides  KVList
	Scale      int
	TPS        int
	Verbose    bool

	seed    int64
	seedSet bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 1, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML config file")
	fs.Var(&c.Overrides, "set", "config override in key=value form (repeatable)")
	fs.Func("seed", "terrain seed (overrides the config file)", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		c.seed, c.seedSet = v, true
		return nil
	})
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log spawn events")
}

// BindWindow attaches the GUI-only flags.
func (c *Config) BindWindow(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}

// WorldConfig resolves defaults, the config file, -set overrides and -seed
// in that order, then validates the result.
func (c *Config) WorldConfig() (world.Config, error) {
	cfg := world.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := world.LoadFile(c.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.Apply(c.Overrides.Map()); err != nil {
		return cfg, err
	}
	if c.seedSet {
		cfg.Terrain.Seed = c.seed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Logger returns a text logger on stderr at info, or debug with -v.
func (c *Config) Logger() *slog.Logger {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
