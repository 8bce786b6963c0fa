package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/tverberg"
	"github.com/osuushi/tverberg/advanced"
	"github.com/osuushi/tverberg/internal/config"
	"github.com/osuushi/tverberg/render"
	"github.com/osuushi/tverberg/session"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Find a centerpoint of a point set and draw the triangles around it.
//
// Points come from the circles of an SVG file (--input file.svg), from stdin
// as "x y" lines (--input -), or are generated at random inside the canvas
// margins.
var (
	app = kingpin.New("tverberg", "Centerpoint search and triangle partitions of planar point sets.")

	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	subsets    = app.Flag("subsets", "Number of subsets r. Random point sets get 3r-2 points.").Short('r').Int()
	seed       = app.Flag("seed", "Seed for random point sets.").Int64()
	output     = app.Flag("output", "PNG file to write.").Short('o').String()
	input      = app.Flag("input", `SVG file to read points from, or "-" for "x y" lines on stdin.`).Short('i').String()
	verbose    = app.Flag("verbose", "Log every step.").Short('v').Bool()

	searchCmd     = app.Command("search", "Search for a centerpoint and partition the points around it.").Default()
	searchSVG     = searchCmd.Flag("svg", "Also write an SVG next to the PNG.").Bool()
	searchPreview = searchCmd.Flag("preview", "Show the result inline in the terminal.").Bool()

	stepCmd      = app.Command("step", "Run the search one halfspace test at a time, printing each test.")
	stepInterval = stepCmd.Flag("interval", "Delay between steps. Overrides the config.").Duration()
	stepFrames   = stepCmd.Flag("frames", "Directory to write a PNG of every step to.").String()

	centroidCmd     = app.Command("centroid", "Partition the points around their centroid, without searching.")
	centroidPreview = centroidCmd.Flag("preview", "Show the result inline in the terminal.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	app.FatalIfError(run(command), command)
}

// Everything but the exit, so that deferred cleanup (the logger flush) runs
// before a failure ends the process.
func run(command string) error {
	logger, err := newLogger(*verbose)
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "config")
	}

	points, err := loadPoints(cfg, logger)
	if err != nil {
		return errors.Wrap(err, "points")
	}
	logger.Info("points loaded", zap.Int("points", len(points)), zap.String("command", command))

	switch command {
	case searchCmd.FullCommand():
		err = runSearch(points, cfg, logger)
	case stepCmd.FullCommand():
		err = runStep(points, cfg, logger)
	case centroidCmd.FullCommand():
		err = runCentroid(points, cfg, logger)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
	}
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// The config file, if any, with the command line flags applied on top.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	if *subsets != 0 {
		cfg.Subsets = *subsets
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *stepInterval != 0 {
		cfg.Interval = *stepInterval
	}
	return cfg, cfg.Validate()
}

func loadPoints(cfg config.Config, logger *zap.Logger) ([]advanced.Point, error) {
	switch *input {
	case "":
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		// Logged so that an interesting set can be regenerated
		logger.Info("generating random points", zap.Int64("seed", seed), zap.Int("subsets", cfg.Subsets))
		min, max := cfg.Bounds()
		return advanced.RandomPoints(rand.New(rand.NewSource(seed)), cfg.Points(), min, max), nil
	case "-":
		return readPoints(os.Stdin)
	default:
		f, err := os.Open(*input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return advanced.ReadSVGPoints(f)
	}
}

func runSearch(points []advanced.Point, cfg config.Config, logger *zap.Logger) error {
	// Only hold an input file to the subset count if one was asked for
	var result advanced.PartitionResult
	var err error
	if *subsets != 0 || *input == "" {
		result, err = tverberg.PartitionSubsets(points, cfg.Subsets)
	} else {
		result, err = tverberg.Partition(points)
	}
	if err != nil {
		return err
	}
	printResult(os.Stdout, points, result)
	logger.Info("search finished", zap.Bool("found", result.Found()), zap.Int("triangles", len(result.Triangles)))

	if err := writePNG(cfg, points, result); err != nil {
		return err
	}
	if *searchSVG {
		path := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + ".svg"
		if err := writeSVG(path, cfg, points, result); err != nil {
			return err
		}
	}
	if *searchPreview {
		preview(cfg.Output, os.Stdout, logger)
	}
	return nil
}

func runStep(points []advanced.Point, cfg config.Config, logger *zap.Logger) error {
	if *stepFrames != "" {
		if err := os.MkdirAll(*stepFrames, 0o755); err != nil {
			return errors.Wrap(err, "frames directory")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	s := session.New(points, logger)
	opts := render.DefaultOptions(cfg.Canvas.Width, cfg.Canvas.Height)
	var frame int
	var frameErr error
	result, err := s.Animator().Run(ctx, cfg.Interval, func(outcome advanced.StepOutcome) {
		fmt.Println(colorize(outcome))
		if *stepFrames == "" || frameErr != nil {
			return
		}
		path := filepath.Join(*stepFrames, fmt.Sprintf("step-%04d.png", frame))
		frameErr = render.DrawStep(points, outcome, opts).SavePNG(path)
		frame++
	})
	if err != nil {
		return err
	}
	if frameErr != nil {
		return errors.Wrap(frameErr, "write frame")
	}
	return writePNG(cfg, points, result)
}

func runCentroid(points []advanced.Point, cfg config.Config, logger *zap.Logger) error {
	result, err := tverberg.CentroidPartition(points)
	if err != nil {
		return err
	}
	printResult(os.Stdout, points, result)
	if err := writePNG(cfg, points, result); err != nil {
		return err
	}
	if *centroidPreview {
		preview(cfg.Output, os.Stdout, logger)
	}
	return nil
}

// Show an image inline in the terminal. The image is already written, so a
// terminal that can't show it isn't a failure.
func preview(path string, w io.Writer, logger *zap.Logger) {
	if err := imgcat.CatFile(path, w); err != nil {
		logger.Warn("preview failed", zap.String("path", path), zap.Error(err))
	}
}

func printResult(w io.Writer, points []advanced.Point, result advanced.PartitionResult) {
	if !result.Found() {
		fmt.Fprintln(w, aurora.Red(result.Err().Error()))
		return
	}
	fmt.Fprintln(w, aurora.Cyan(fmt.Sprintf("center (%.2f, %.2f)", result.Center.X, result.Center.Y)))
	if result.Candidate != nil {
		fmt.Fprintf(w, "  %s phase candidate, excluding %v\n", result.Candidate.Phase, result.Candidate.Excluded)
	}
	for _, line := range result.Lines {
		fmt.Fprintf(w, "  line %d-%d\n", line[0], line[1])
	}
	for t, tri := range result.Triangles {
		fmt.Fprintf(w, "  triangle %d: %d %d %d\n", t, tri[0], tri[1], tri[2])
	}
	if left := len(points) - 3*len(result.Triangles) - len(excluded(result)); left > 0 {
		fmt.Fprintf(w, "  %d points left over\n", left)
	}
}

func excluded(result advanced.PartitionResult) []int {
	if result.Candidate == nil {
		return nil
	}
	return result.Candidate.Excluded
}

func colorize(outcome advanced.StepOutcome) string {
	switch outcome.Kind {
	case advanced.StepFound:
		return aurora.Cyan(outcome.Message).String()
	case advanced.StepNotFound:
		return aurora.Red(outcome.Message).String()
	case advanced.StepNoIntersection:
		return aurora.Yellow(outcome.Message).String()
	}
	if outcome.Passed() {
		return aurora.Green(outcome.Message).String()
	}
	return aurora.Red(outcome.Message).String()
}

func writePNG(cfg config.Config, points []advanced.Point, result advanced.PartitionResult) error {
	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	opts := render.DefaultOptions(cfg.Canvas.Width, cfg.Canvas.Height)
	if err := render.DrawPNG(f, points, result, opts); err != nil {
		f.Close()
		return errors.Wrap(err, "encode png")
	}
	return f.Close()
}

func writeSVG(path string, cfg config.Config, points []advanced.Point, result advanced.PartitionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	opts := render.DefaultOptions(cfg.Canvas.Width, cfg.Canvas.Height)
	if err := render.WriteSVG(f, points, result, opts); err != nil {
		f.Close()
		return errors.Wrap(err, "write svg")
	}
	return f.Close()
}
