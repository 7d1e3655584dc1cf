package config

import "github.com/katalvlaran/satsp/tsp"

// Config represents one satsp run configuration.
type Config struct {
	LogLevel      string   `yaml:"log_level"`
	LogFormat     string   `yaml:"log_format"`
	Seed          int64    `yaml:"seed"`
	Schedule      Schedule `yaml:"schedule"`
	ProgressEvery int      `yaml:"progress_every"`
	Plot          string   `yaml:"plot,omitempty"`
}

// Schedule mirrors tsp.Config with YAML field names.
type Schedule struct {
	InitialTemperature float64 `yaml:"initial_temperature"`
	FloorTemperature   float64 `yaml:"floor_temperature"`
	CoolingRate        float64 `yaml:"cooling_rate"`
	LocalSearchTrials  int     `yaml:"local_search_trials"`
}

// Default returns the configuration used when no file is given.
// Seed 0 means "derive from the process id" in the CLI.
func Default() *Config {
	d := tsp.DefaultConfig()
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Schedule: Schedule{
			InitialTemperature: d.InitialTemperature,
			FloorTemperature:   d.FloorTemperature,
			CoolingRate:        d.CoolingRate,
			LocalSearchTrials:  d.LocalSearchTrials,
		},
		ProgressEvery: 500,
	}
}

// Annealing converts the schedule section to tsp.Config.
func (c *Config) Annealing() tsp.Config {
	return tsp.Config{
		InitialTemperature: c.Schedule.InitialTemperature,
		FloorTemperature:   c.Schedule.FloorTemperature,
		CoolingRate:        c.Schedule.CoolingRate,
		LocalSearchTrials:  c.Schedule.LocalSearchTrials,
	}
}
