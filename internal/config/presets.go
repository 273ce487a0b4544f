package config

// Presets are ready-made puncture layouts with seed brackets known to
// straddle the horizon radius.
var Presets = map[string]*Config{
	"schwarzschild": {
		Sources: []float64{0}, GridPoints: 201, Scheme: "rk2",
		SeedLow: 0.4, SeedHigh: 0.6,
		Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations,
	},
	"binary-close": {
		Sources: []float64{0.5}, GridPoints: 401, Scheme: "rk2",
		SeedLow: 0.7, SeedHigh: 1.1,
		Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations,
	},
	"binary-wide": {
		Sources: []float64{0.75}, GridPoints: 401, Scheme: "rk2",
		SeedLow: 0.7, SeedHigh: 1.2,
		Tolerance: DefaultTolerance, MaxIterations: 60,
	},
	"triple": {
		Sources: []float64{0, 0.6}, GridPoints: 401, Scheme: "rk2",
		SeedLow: 0.8, SeedHigh: 1.4,
		Tolerance: DefaultTolerance, MaxIterations: 60,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
