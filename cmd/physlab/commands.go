package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/potential"
	"github.com/san-kum/physlab/internal/render"
	"github.com/san-kum/physlab/internal/tui"
)

var (
	preset string
	output string
	save   bool

	charges string
	extent  float64
	grid    int
	levels  int

	mass       float64
	stiffness  float64
	damping    float64
	x0         float64
	v0         float64
	tEnd       float64
	points     int
	integrator string
	gifPath    string
	gifFrames  int

	mu     float64
	radius float64
	alpha  float64
	g      float64

	kind        string
	paramValues map[string]string
)

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVarP(&output, "output", "o", "", "figure path (.png, .svg or .pdf)")
	cmd.Flags().BoolVar(&save, "save", false, "archive the run under --data")
}

// prepare applies the preset and then every explicitly changed flag on top
// of the loaded configuration.
func prepare(cmd *cobra.Command, demo string, overlay func(*cobra.Command, *config.Config) error) (*config.Config, error) {
	if preset != "" && !config.Apply(cfg, demo, preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(demo))
	}
	if overlay != nil {
		if err := overlay(cmd, cfg); err != nil {
			return nil, err
		}
	}
	if err := cfg.ValidateDemo(demo); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newElectroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "electro",
		Short: "electrostatic field and equipotentials of point charges",
		Long: "Charges are given as \"x,y,q; x,y,q\" with positions in metres and\n" +
			"charge in coulombs, e.g. --charges \"-1,0,1e-9; 1,0,-1e-9\".",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := prepare(cmd, "electro", electroFlags)
			if err != nil {
				return err
			}
			res, err := electroDemo(c)
			if err != nil {
				return err
			}
			fmt.Print(res.Summary)
			return writeFigure(c, res, figurePath(c, output, "electro"), save)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVar(&charges, "charges", "", "charges as x,y,q triples separated by ';'")
	cmd.Flags().Float64Var(&extent, "extent", 0, "half width of the square mesh (m)")
	cmd.Flags().IntVar(&grid, "grid", 0, "mesh points per axis")
	cmd.Flags().IntVar(&levels, "levels", 0, "number of equipotential contours")
	return cmd
}

func electroFlags(cmd *cobra.Command, c *config.Config) error {
	if cmd.Flags().Changed("charges") {
		c.Electro.Charges = charges
	}
	if cmd.Flags().Changed("extent") {
		c.Electro.Extent = extent
	}
	if cmd.Flags().Changed("grid") {
		c.Electro.Grid = grid
	}
	if cmd.Flags().Changed("levels") {
		c.Electro.Levels = levels
	}
	return nil
}

func addOscillatorFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mass, "mass", 0, "mass (kg)")
	cmd.Flags().Float64Var(&stiffness, "stiffness", 0, "spring constant k (N/m)")
	cmd.Flags().Float64Var(&damping, "damping", 0, "damping coefficient b (kg/s)")
	cmd.Flags().Float64Var(&x0, "x0", 0, "initial displacement (m)")
	cmd.Flags().Float64Var(&v0, "v0", 0, "initial velocity (m/s)")
	cmd.Flags().Float64Var(&tEnd, "time", 0, "duration (s)")
	cmd.Flags().IntVar(&points, "points", 0, "number of time samples")
	cmd.Flags().StringVar(&integrator, "integrator", "", "integrator (rk4, euler)")
}

func oscillatorFlags(cmd *cobra.Command, c *config.Config) error {
	if cmd.Flags().Changed("mass") {
		c.Oscillator.Mass = mass
	}
	if cmd.Flags().Changed("stiffness") {
		c.Oscillator.Stiffness = stiffness
	}
	if cmd.Flags().Changed("damping") {
		c.Oscillator.Damping = damping
	}
	if cmd.Flags().Changed("x0") {
		c.Oscillator.X0 = x0
	}
	if cmd.Flags().Changed("v0") {
		c.Oscillator.V0 = v0
	}
	if cmd.Flags().Changed("time") {
		c.Oscillator.TEnd = tEnd
	}
	if cmd.Flags().Changed("points") {
		c.Oscillator.Points = points
	}
	if cmd.Flags().Changed("integrator") {
		c.Oscillator.Integrator = integrator
	}
	return nil
}

func newEnergyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "energy",
		Short: "kinetic, potential and total energy of a damped spring oscillator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := prepare(cmd, "energy", oscillatorFlags)
			if err != nil {
				return err
			}
			res, err := energyDemo(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Print(res.Summary)
			if err := writeFigure(c, res, figurePath(c, output, "energy"), save); err != nil {
				return err
			}
			if gifPath != "" {
				return writeEnergyGIF(c, res, gifPath)
			}
			return nil
		},
	}
	addCommonFlags(cmd)
	addOscillatorFlags(cmd)
	cmd.Flags().StringVar(&gifPath, "gif", "", "also write an animated GIF to this path")
	cmd.Flags().IntVar(&gifFrames, "frames", 60, "GIF frame count")
	return cmd
}

func writeEnergyGIF(c *config.Config, res *demoResult, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, h := figureSize(c)
	if err := render.EnergyGIF(f, res.times, res.energies, gifFrames, 8, w, h); err != nil {
		return err
	}
	logger.Info("animation written", zap.String("path", path), zap.Int("frames", gifFrames))
	return nil
}

func newAnimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "play the oscillator solution in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := prepare(cmd, "energy", oscillatorFlags)
			if err != nil {
				return err
			}
			o, err := solveOscillator(cmd.Context(), c)
			if err != nil {
				return err
			}
			return tui.Run(o.osc, o.result.Times, o.result.States)
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	addOscillatorFlags(cmd)
	return cmd
}

func newLoopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loop",
		Short: "trajectory of a body leaving a vertical loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := prepare(cmd, "loop", loopFlags)
			if err != nil {
				return err
			}
			res, err := loopDemo(c)
			if err != nil {
				return err
			}
			fmt.Print(res.Summary)
			return writeFigure(c, res, figurePath(c, output, "loop"), save)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().Float64Var(&mass, "mass", 0, "body mass (kg)")
	cmd.Flags().Float64Var(&mu, "mu", 0, "friction coefficient")
	cmd.Flags().Float64Var(&radius, "radius", 0, "loop radius (m)")
	cmd.Flags().Float64Var(&alpha, "alpha", 0, "detachment angle from the bottom (rad)")
	cmd.Flags().Float64Var(&g, "g", 0, "gravitational acceleration (m/s^2)")
	cmd.Flags().IntVar(&points, "points", 0, "samples along each curve")
	return cmd
}

func loopFlags(cmd *cobra.Command, c *config.Config) error {
	if cmd.Flags().Changed("mass") {
		c.Loop.Mass = mass
	}
	if cmd.Flags().Changed("mu") {
		c.Loop.Mu = mu
	}
	if cmd.Flags().Changed("radius") {
		c.Loop.Radius = radius
	}
	if cmd.Flags().Changed("alpha") {
		c.Loop.Alpha = alpha
	}
	if cmd.Flags().Changed("g") {
		c.Loop.G = g
	}
	if cmd.Flags().Changed("points") {
		c.Loop.Points = points
	}
	return nil
}

func newPotentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "potential",
		Short: "heat map and contours of a potential energy field",
		Long: "Kinds and their parameters:\n" +
			"  gravity  G, m1, m2   U = -G m1 m2 / r\n" +
			"  elastic  k           U = k (x^2 + y^2) / 2\n" +
			"  power    a, n, b, m  U = a x^n + b y^m",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := prepare(cmd, "potential", potentialFlags)
			if err != nil {
				return err
			}
			res, err := potentialDemo(c)
			if err != nil {
				return err
			}
			fmt.Print(res.Summary)
			return writeFigure(c, res, figurePath(c, output, "potential_"+c.Potential.Kind), save)
		},
	}
	addCommonFlags(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", fmt.Sprintf("field kind %v", potential.Kinds()))
	cmd.Flags().StringToStringVar(&paramValues, "param", nil, "field parameters, e.g. --param G=1,m1=2,m2=3")
	cmd.Flags().Float64Var(&extent, "extent", 0, "half width of the square mesh")
	cmd.Flags().IntVar(&points, "points", 0, "mesh points per axis")
	cmd.Flags().IntVar(&levels, "levels", 0, "number of contour lines")
	return cmd
}

// potentialFlags switches the field kind and replaces its parameters. A
// changed kind without --param keeps only the parameters the new kind uses.
func potentialFlags(cmd *cobra.Command, c *config.Config) error {
	if cmd.Flags().Changed("kind") && kind != c.Potential.Kind {
		c.Potential.Kind = kind
		names, err := potential.ParamNames(kind)
		if err != nil {
			return err
		}
		kept := make(map[string]float64)
		for _, name := range names {
			if v, ok := c.Potential.Params[name]; ok {
				kept[name] = v
			}
		}
		c.Potential.Params = kept
	}
	if cmd.Flags().Changed("param") {
		if _, err := potential.ParamNames(c.Potential.Kind); err != nil {
			return err
		}
		params := make(map[string]float64, len(c.Potential.Params)+len(paramValues))
		for k, v := range c.Potential.Params {
			params[k] = v
		}
		for k, raw := range paramValues {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return fmt.Errorf("parameter %s: %q is not a number", k, raw)
			}
			params[k] = v
		}
		c.Potential.Params = params
	}
	if cmd.Flags().Changed("extent") {
		c.Potential.Extent = extent
	}
	if cmd.Flags().Changed("points") {
		c.Potential.Points = points
	}
	if cmd.Flags().Changed("levels") {
		c.Potential.Levels = levels
	}
	return nil
}

func newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "render every demo figure concurrently into --out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			builders := map[string]func(context.Context) (*demoResult, error){
				"electro":   func(context.Context) (*demoResult, error) { return electroDemo(cfg) },
				"energy":    func(ctx context.Context) (*demoResult, error) { return energyDemo(ctx, cfg) },
				"loop":      func(context.Context) (*demoResult, error) { return loopDemo(cfg) },
				"potential": func(context.Context) (*demoResult, error) { return potentialDemo(cfg) },
			}

			names := make([]string, 0, len(builders))
			for name := range builders {
				names = append(names, name)
			}
			sort.Strings(names)

			paths := make([]string, len(names))
			eg, ctx := errgroup.WithContext(cmd.Context())
			for i, name := range names {
				i, name := i, name
				build := builders[name]
				paths[i] = filepath.Join(cfg.Output.Dir, name+".png")
				eg.Go(func() error {
					res, err := build(ctx)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					return writeFigure(cfg, res, paths[i], save)
				})
			}
			if err := eg.Wait(); err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Println(p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "archive every run under --data")
	return cmd
}
