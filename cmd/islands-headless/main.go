package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"islands/internal/app"
	"islands/internal/core"
	"islands/internal/render"
	"islands/internal/telemetry"
	"islands/internal/world"
)

type coordList []core.Coord

func (l *coordList) String() string {
	parts := make([]string, len(*l))
	for i, c := range *l {
		parts[i] = fmt.Sprintf("%d,%d", c.X, c.Y)
	}
	return strings.Join(parts, " ")
}

func (l *coordList) Set(value string) error {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return fmt.Errorf("expected x,y, got %q", value)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("x in %q: %w", value, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("y in %q: %w", value, err)
	}
	*l = append(*l, core.Coord{X: x, Y: y})
	return nil
}

type options struct {
	ticks     int
	delta     time.Duration
	countries int
	spawns    coordList
	pngPath   string
	tracePath string
	settle    bool
	params    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("islands-headless", flag.ContinueOnError)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	var opts options
	fs.IntVar(&opts.ticks, "ticks", 2000, "ticks to simulate")
	fs.DurationVar(&opts.delta, "delta", 16*time.Millisecond, "time delivered per tick")
	fs.IntVar(&opts.countries, "countries", 4, "random spawns when no -spawn is given")
	fs.Var(&opts.spawns, "spawn", "spawn point in x,y form (repeatable)")
	fs.StringVar(&opts.pngPath, "png", "", "write the final map to this PNG file")
	fs.StringVar(&opts.tracePath, "trace", "", "write a zstd JSONL tick trace to this file")
	fs.BoolVar(&opts.settle, "settle", true, "stop early once every country is done")
	fs.BoolVar(&opts.params, "params", false, "print the effective parameters and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.ticks < 0 {
		return errors.New("-ticks must be >= 0")
	}
	if opts.delta < 0 {
		return errors.New("-delta must be >= 0")
	}

	wcfg, err := cfg.WorldConfig()
	if err != nil {
		return err
	}
	log := cfg.Logger()

	buf := render.NewBuffer(wcfg.Terrain.Width, wcfg.Terrain.Height)
	w, err := world.New(wcfg, buf)
	if err != nil {
		return err
	}
	w.SetLogger(log)
	if opts.params {
		printParams(stdout, w.Parameters())
		return nil
	}

	spawns := opts.spawns
	if len(spawns) == 0 {
		spawns = randomLand(w, opts.countries, wcfg.Terrain.Seed)
	}
	for _, s := range spawns {
		if _, ok := w.Spawn(s.X, s.Y); !ok {
			log.Warn("spawn ignored", "x", s.X, "y", s.Y)
		}
	}

	var trace *telemetry.Writer
	if opts.tracePath != "" {
		if trace, err = telemetry.Create(opts.tracePath); err != nil {
			return err
		}
	}

	start := time.Now()
	var traceErr error
	simulate(w, opts, func(r world.Report) {
		if trace == nil || traceErr != nil {
			return
		}
		traceErr = trace.Write(telemetry.EntryFromReport(r))
	})
	if trace != nil {
		if err := trace.Close(); traceErr == nil {
			traceErr = err
		}
	}
	if traceErr != nil {
		return fmt.Errorf("trace: %w", traceErr)
	}

	report := w.Report()
	log.Info("run finished",
		"ticks", report.Ticks,
		"countries", len(report.Territories),
		"claimed", report.Claimed,
		"land", report.LandCells,
		"wall", time.Since(start).Round(time.Millisecond),
	)
	fmt.Fprint(stdout, report.String())

	if opts.pngPath != "" {
		if err := buf.WritePNG(opts.pngPath); err != nil {
			return err
		}
	}
	return nil
}

func printParams(out io.Writer, snap core.ParameterSnapshot) {
	for _, g := range snap.Groups {
		fmt.Fprintf(out, "[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(out, "  %-20s %-9s %s\n", p.Key, p.Type, p.Value)
		}
	}
}

// simulate delivers fixed-delta ticks and hands every report to observe.
func simulate(w *world.World, opts options, observe func(world.Report)) {
	for i := 1; i <= opts.ticks; i++ {
		w.Tick(time.Duration(i)*opts.delta, opts.delta)
		observe(w.Report())
		if opts.settle && w.Settled() {
			return
		}
	}
}

// randomLand picks up to n distinct growth-eligible cells deterministically.
func randomLand(w *world.World, n int, seed int64) []core.Coord {
	size := w.Size()
	level := w.Config().Growth.WaterLevel
	rng := core.NewRNG(seed + 1).Source()
	seen := make(map[core.Coord]bool, n)
	var out []core.Coord
	for attempt := 0; attempt < 1000*max(n, 1) && len(out) < n; attempt++ {
		c := core.Coord{X: rng.IntN(size.W), Y: rng.IntN(size.H)}
		if seen[c] {
			continue
		}
		if h, _ := w.HeightAt(c.X, c.Y); h < level {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}
