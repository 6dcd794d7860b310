package world

import (
	"strconv"
	"time"

	"islands/internal/core"
)

// Parameters returns the effective configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	t := w.cfg.Terrain
	g := w.cfg.Growth
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", t.Width),
				intParam("h", "Height", t.Height),
				int64Param("seed", "Seed", t.Seed),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				floatParam("scale", "Scale", t.Scale),
				intParam("octaves", "Octaves", t.Octaves),
				floatParam("persistence", "Persistence", t.Persistence),
				floatParam("lacunarity", "Lacunarity", t.Lacunarity),
				floatParam("edge_power", "Edge power", t.EdgePower),
				floatParam("sharpen", "Sharpen", t.Sharpen),
			},
		},
		{
			Name: "Biomes",
			Params: []core.Parameter{
				floatParam("water_level", "Water level", t.Levels.Water),
				floatParam("sand_level", "Sand level", t.Levels.Sand),
				floatParam("land_level", "Land level", t.Levels.Land),
				floatParam("forest_level", "Forest level", t.Levels.Forest),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				floatParam("growth_water_level", "Growth water level", g.WaterLevel),
				durationParam("update_interval", "Update interval", g.UpdateInterval),
				durationParam("base_delay", "Base delay", g.BaseDelay),
				floatParam("delay_k", "Delay k", g.DelayK),
				intParam("bootstrap_area", "Bootstrap area", g.BootstrapArea),
				durationParam("bootstrap_delay", "Bootstrap delay", g.BootstrapDelay),
				floatParam("seafaring_level", "Seafaring level", g.SeafaringLevel),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func durationParam(key, label string, value time.Duration) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeDuration,
		Value: value.String(),
	}
}
