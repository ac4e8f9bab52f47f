// Command timing measures the containers and algorithms of this module over
// growing input sizes. Every measurement is one log record.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "timing",
		Usage:   "time containers, sorts and graph algorithms",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.IntSliceFlag{
			Name:    "sizes",
			Usage:   "input sizes to time",
			Value:   cli.NewIntSlice(1<<8, 1<<10, 1<<12),
			EnvVars: []string{"TIMING_SIZES"},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "seed of the input generators",
			Value:   1,
			EnvVars: []string{"TIMING_SEED"},
		},
		&cli.IntFlag{
			Name:  "repeat",
			Usage: "runs per measurement, the mean is reported",
			Value: 3,
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "log measurements as JSON",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (error, warn, info, debug)",
			Value:   "info",
			EnvVars: []string{"TIMING_LOG_LEVEL"},
		},
	}
	app.Before = func(cctx *cli.Context) error {
		configLogger(cctx, cctx.App.ErrWriter)
		if cctx.Int("repeat") < 1 {
			return fmt.Errorf("repeat must be positive, got %d", cctx.Int("repeat"))
		}
		for _, n := range cctx.IntSlice("sizes") {
			if n < 1 {
				return fmt.Errorf("sizes must be positive, got %d", n)
			}
		}
		return nil
	}

	app.Commands = []*cli.Command{
		&cli.Command{
			Name:   "containers",
			Usage:  "vector, list, queue and stack operations",
			Action: timeContainers,
		},
		&cli.Command{
			Name:   "map",
			Usage:  "TreeMap insert, find and erase",
			Action: timeMap,
		},
		&cli.Command{
			Name:   "sort",
			Usage:  "sorting algorithms on random integers",
			Action: timeSorts,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "quadratic-limit",
					Usage: "largest size given to the quadratic sorts",
					Value: 1 << 12,
				},
			},
		},
		&cli.Command{
			Name:   "graph",
			Usage:  "build complete, mesh and random graphs and search them",
			Action: timeGraphs,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "complete",
					Usage: "vertices of the complete graph",
					Value: 300,
				},
				&cli.IntFlag{
					Name:  "mesh",
					Usage: "vertices of the mesh graph",
					Value: 1750,
				},
				&cli.IntFlag{
					Name:  "random",
					Usage: "vertices of the random graph",
					Value: 800,
				},
			},
		},
	}

	return app
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var logger *slog.Logger
	if cctx.Bool("json") {
		logger = slog.New(slog.NewJSONHandler(writer, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(writer, opts))
	}
	slog.SetDefault(logger)
	return logger
}

func newRand(cctx *cli.Context) *rand.Rand {
	seed := cctx.Uint64("seed")
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// measure runs f repeat times and logs the mean. setup runs before each
// timed call and is not counted.
func measure(cctx *cli.Context, name string, n int, setup, f func()) time.Duration {
	repeat := cctx.Int("repeat")
	var total time.Duration
	for range repeat {
		if setup != nil {
			setup()
		}
		start := time.Now()
		f()
		total += time.Since(start)
	}
	mean := total / time.Duration(repeat)
	slog.Info("timing", "name", name, "n", n, "elapsed", mean)
	return mean
}
