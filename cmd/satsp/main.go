// Command satsp reads a list of cities and prints a short closed tour found
// by simulated annealing.
//
//	satsp [flags] [input-file]
//
// Input is read from input-file, or from stdin when no file is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/satsp/cityio"
	"github.com/katalvlaran/satsp/config"
	"github.com/katalvlaran/satsp/logger"
	"github.com/katalvlaran/satsp/render"
	"github.com/katalvlaran/satsp/tsp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type flags struct {
	configPath string
	seed       int64
	plot       string
	logLevel   string
	logFormat  string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var f flags
	fs := flag.NewFlagSet("satsp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML config file")
	fs.Int64Var(&f.seed, "seed", 0, "random seed (0 uses the process id)")
	fs.StringVar(&f.plot, "plot", "", "write a tour plot to this file (png, svg, pdf, jpg)")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format (text, json)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: satsp [flags] [input-file]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 1
	}

	cfg, err := loadConfig(fs, f)
	if err != nil {
		fmt.Fprintf(stderr, "Error! %v\n", err)
		return 1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = int64(os.Getpid())
	}
	logger.SetDefault(logger.NewFormat(cfg.LogFormat, cfg.LogLevel, stderr))
	logger.SetDefault(logger.With("run_id", uuid.NewString(), "seed", seed))

	in := stdin
	if fs.NArg() == 1 {
		path := fs.Arg(0)
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error! Could not open input file \"%s\"\n", path)
			return 1
		}
		defer file.Close()
		in = file
	}

	cities, err := cityio.Parse(in)
	if err != nil {
		logger.Error("failed to read cities", "error", err)
		fmt.Fprintf(stderr, "Error! %v\n", err)
		return 1
	}
	table, err := tsp.EuclideanTable(cities)
	if err != nil {
		fmt.Fprintf(stderr, "Error! %v\n", err)
		return 1
	}

	if len(cities) < 3 {
		logger.Warn("too few cities to search, keeping the input order", "cities", len(cities))
	}

	sched := cfg.Annealing()
	a, err := tsp.NewAnnealer(cities, table, tsp.NewRand(seed),
		tsp.WithConfig(sched),
		tsp.WithObserver(cfg.ProgressEvery, func(p tsp.Progress) {
			logger.Debug("annealing progress",
				"iteration", p.Iteration,
				"temperature", p.Temperature,
				"cost", p.Cost,
				"accepted", p.Accepted,
			)
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error! %v\n", err)
		return 1
	}

	logger.Info("annealing started",
		"cities", len(cities),
		"initial_cost", a.Cost(),
		"cooling_steps", tsp.CoolingSteps(sched),
	)
	start := time.Now()
	res := a.Run()
	logger.Info("annealing finished",
		"iterations", res.Iterations,
		"accepted", res.Accepted,
		"cost", res.Cost,
		"final_temperature", res.FinalTemperature,
		"elapsed", time.Since(start),
	)

	if cfg.Plot != "" {
		p, err := render.Tour(cities, res.Tour, fmt.Sprintf("cost %s", cityio.FormatCost(res.Cost)))
		if err == nil {
			err = render.Save(p, cfg.Plot)
		}
		if err != nil {
			logger.Error("failed to write plot", "path", cfg.Plot, "error", err)
			fmt.Fprintf(stderr, "Error! %v\n", err)
			return 1
		}
		logger.Info("plot written", "path", cfg.Plot)
	}

	if err := cityio.WriteReport(stdout, res.Tour, res.Cost); err != nil {
		fmt.Fprintf(stderr, "Error! %v\n", err)
		return 1
	}
	return 0
}

// loadConfig reads the optional config file and lays explicitly set flags over it.
func loadConfig(fs *flag.FlagSet, f flags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(f.configPath); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "seed":
			cfg.Seed = f.seed
		case "plot":
			cfg.Plot = f.plot
		case "log-level":
			cfg.LogLevel = f.logLevel
		case "log-format":
			cfg.LogFormat = f.logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
