package app

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"islands/internal/core"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	cfg.BindWindow(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return cfg
}

func TestWorldConfigLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	doc := "terrain:\n  seed: 5\n  width: 300\ngrowth:\n  base_delay: 40ms\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := parse(t, "-config", path, "-set", "w=128", "-set", "delay_k=2", "-seed", "77", "-scale", "2")
	wc, err := cfg.WorldConfig()
	if err != nil {
		t.Fatalf("world config: %v", err)
	}
	if wc.Terrain.Width != 128 {
		t.Fatalf("width = %d, want -set to win over the file", wc.Terrain.Width)
	}
	if wc.Terrain.Seed != 77 {
		t.Fatalf("seed = %d, want -seed to win", wc.Terrain.Seed)
	}
	if wc.Growth.BaseDelay != 40*time.Millisecond || wc.Growth.DelayK != 2 {
		t.Fatalf("growth = %+v", wc.Growth)
	}
	if cfg.Scale != 2 {
		t.Fatalf("scale = %d, want 2", cfg.Scale)
	}

	noSeed := parse(t, "-config", path)
	wc, err = noSeed.WorldConfig()
	if err != nil {
		t.Fatalf("world config: %v", err)
	}
	if wc.Terrain.Seed != 5 {
		t.Fatalf("seed = %d, want the file value", wc.Terrain.Seed)
	}
}

func TestWorldConfigRejectsBadValues(t *testing.T) {
	cfg := parse(t, "-set", "octaves=0")
	if _, err := cfg.WorldConfig(); !errors.Is(err, core.ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig().Bind(fs)
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("-set without '=' should fail to parse")
	}
}
