// Command knossos generates orthogonal mazes, renders them as ASCII or
// game-map text, and optionally solves them from a start cell to every
// dead end.
//
// Usage:
//
//	knossos -width 12 -height 8 -algorithm kruskal -seed 42
//	knossos -format game-map -span 2 -with-start-goal -output maze.txt
//	knossos -algorithm hunt-and-kill -start 0,0 -solve
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/knossos-go/knossos/algorithms"
	"github.com/knossos-go/knossos/grid"
	"github.com/knossos-go/knossos/maze"
	"github.com/knossos-go/knossos/mazeform"
	"github.com/knossos-go/knossos/pathfind"
)

var log = logrus.New()

// Rendering format names.
const (
	formatAsciiNarrow = "ascii-narrow"
	formatAsciiBroad  = "ascii-broad"
	formatGameMap     = "game-map"
)

type config struct {
	width, height int
	algorithm     string
	bias          string
	policy        string
	seed          string
	start, goal   string
	format        string
	span          int
	passage, wall string
	withStartGoal bool
	output        string
	solve         bool
	verbose       bool
}

func main() {
	cfg := parseFlags()
	if cfg.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if err := run(cfg); err != nil {
		log.WithError(err).Fatal("maze generation failed")
	}
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.width, "width", maze.DefaultWidth, "grid width in cells")
	flag.IntVar(&cfg.height, "height", maze.DefaultHeight, "grid height in cells")
	flag.StringVar(&cfg.algorithm, "algorithm", algorithms.NameRecursiveBacktracking,
		"carving algorithm: "+strings.Join(algorithms.Names(), ", "))
	flag.StringVar(&cfg.bias, "bias", "north-east",
		"binary-tree bias: north-east, north-west, south-east, south-west")
	flag.StringVar(&cfg.policy, "growing-policy", "random",
		"growing-tree selection policy: random, newest")
	flag.StringVar(&cfg.seed, "seed", "", "seed for reproducible generation (default: time-derived)")
	flag.StringVar(&cfg.start, "start", "", "start cell as x,y handed to the algorithm")
	flag.StringVar(&cfg.goal, "goal", "", "goal cell as x,y carried on the maze")
	flag.StringVar(&cfg.format, "format", formatAsciiNarrow,
		"rendering: "+strings.Join([]string{formatAsciiNarrow, formatAsciiBroad, formatGameMap}, ", "))
	flag.IntVar(&cfg.span, "span", 2, "game-map passage width in tiles")
	flag.StringVar(&cfg.passage, "passage", ".", "game-map passage character")
	flag.StringVar(&cfg.wall, "wall", "#", "game-map wall character")
	flag.BoolVar(&cfg.withStartGoal, "with-start-goal", false, "mark start and goal cells on the game map")
	flag.StringVar(&cfg.output, "output", "", "output file path (default: stdout)")
	flag.BoolVar(&cfg.solve, "solve", false, "print routes from the start cell to every maze end")
	flag.BoolVar(&cfg.verbose, "verbose", false, "enable debug logging")
	flag.Parse()
	return cfg
}

func run(cfg config) error {
	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	m, err := maze.Build(opts...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"algorithm": cfg.algorithm,
		"width":     m.Width(),
		"height":    m.Height(),
		"ends":      len(m.Ends()),
	}).Debug("maze generated")

	renderer, err := pickRenderer(cfg)
	if err != nil {
		return err
	}

	if cfg.output != "" {
		if err := mazeform.Save(renderer, m, cfg.output); err != nil {
			return err
		}
		log.WithField("path", cfg.output).Info("maze saved")
	} else {
		out, err := renderer.Render(m)
		if err != nil {
			return err
		}
		fmt.Print(out)
	}

	if cfg.solve {
		return solve(m)
	}
	return nil
}

// buildOptions translates flag values into builder options, parsing
// coordinates and the seed up front so bad input fails before generation.
func buildOptions(cfg config) ([]maze.Option, error) {
	algo, err := algorithms.FromName(cfg.algorithm)
	if err != nil {
		return nil, err
	}
	switch a := algo.(type) {
	case algorithms.BinaryTree:
		if a.Bias, err = parseBias(cfg.bias); err != nil {
			return nil, err
		}
		algo = a
	case algorithms.GrowingTree:
		if a.Policy, err = parsePolicy(cfg.policy); err != nil {
			return nil, err
		}
		algo = a
	}

	opts := []maze.Option{
		maze.WithDimensions(cfg.width, cfg.height),
		maze.WithAlgorithm(algo),
	}
	if cfg.seed != "" {
		seed, err := strconv.ParseInt(cfg.seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", cfg.seed, err)
		}
		opts = append(opts, maze.WithSeed(seed))
	}
	if cfg.start != "" {
		c, err := parseCoords(cfg.start)
		if err != nil {
			return nil, err
		}
		opts = append(opts, maze.WithStart(c))
	}
	if cfg.goal != "" {
		c, err := parseCoords(cfg.goal)
		if err != nil {
			return nil, err
		}
		opts = append(opts, maze.WithGoal(c))
	}
	return opts, nil
}

func pickRenderer(cfg config) (mazeform.Renderer, error) {
	switch cfg.format {
	case formatAsciiNarrow:
		return mazeform.AsciiNarrow{}, nil
	case formatAsciiBroad:
		return mazeform.AsciiBroad{}, nil
	case formatGameMap:
		f := mazeform.DefaultGameMap()
		f.Span = cfg.span
		f.WithStartGoal = cfg.withStartGoal
		var err error
		if f.Passage, err = singleRune("passage", cfg.passage); err != nil {
			return nil, err
		}
		if f.Wall, err = singleRune("wall", cfg.wall); err != nil {
			return nil, err
		}
		return f, nil
	}
	return nil, fmt.Errorf("unknown format %q", cfg.format)
}

// solve routes from the maze start (or the top-left cell). With an
// explicit goal it prints that single route; otherwise it prints the
// ranking over every maze end, cheapest first.
func solve(m *maze.Maze) error {
	start, ok := m.Start()
	if !ok {
		start = grid.Coords{}
	}
	if goal, ok := m.Goal(); ok {
		r, err := pathfind.ToGoal(m, start, goal)
		if err != nil {
			return err
		}
		fmt.Printf("%3d steps from %s to %s\n", r.Cost, start, r.Goal)
		return nil
	}
	routes, err := pathfind.AllEnds(m, start)
	if err != nil {
		return err
	}
	for _, r := range routes {
		fmt.Printf("%3d steps from %s to %s\n", r.Cost, start, r.Goal)
	}
	return nil
}

// parseCoords reads "x,y", tolerating surrounding parentheses and spaces.
func parseCoords(s string) (grid.Coords, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return grid.Coords{}, fmt.Errorf("invalid coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Coords{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Coords{}, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	return grid.Coords{X: x, Y: y}, nil
}

func parseBias(s string) (algorithms.Bias, error) {
	switch s {
	case "north-east":
		return algorithms.BiasNorthEast, nil
	case "north-west":
		return algorithms.BiasNorthWest, nil
	case "south-east":
		return algorithms.BiasSouthEast, nil
	case "south-west":
		return algorithms.BiasSouthWest, nil
	}
	return 0, fmt.Errorf("unknown bias %q", s)
}

func parsePolicy(s string) (algorithms.SelectionPolicy, error) {
	switch s {
	case "random":
		return algorithms.SelectRandom, nil
	case "newest":
		return algorithms.SelectNewest, nil
	}
	return 0, fmt.Errorf("unknown growing-tree policy %q", s)
}

func singleRune(name, s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, s)
	}
	return runes[0], nil
}

// Logs go to stderr; renderings go to stdout.
func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}
