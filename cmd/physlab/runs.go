package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/physlab/internal/analysis"
	"github.com/san-kum/physlab/internal/config"
	"github.com/san-kum/physlab/internal/physics"
	"github.com/san-kum/physlab/internal/storage"
	"github.com/san-kum/physlab/internal/viz"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list archived runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDEMO\tTIME\tROWS\tFIGURE")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
					run.ID,
					run.Demo,
					run.Timestamp.Format("2006-01-02 15:04:05"),
					run.Rows,
					run.Figure,
				)
			}
			return w.Flush()
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run_id]",
		Short: "print parameters and column plots of an archived run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := storage.New(dataDir)
			meta, err := st.Load(args[0])
			if err != nil {
				return err
			}
			header, rows, err := st.LoadRows(args[0])
			if err != nil {
				return err
			}

			fmt.Println(viz.HeaderStyle.Render(meta.ID))
			fmt.Println(viz.Metric("demo", meta.Demo))
			fmt.Println(viz.Metric("samples", fmt.Sprintf("%d", len(rows))))
			keys := make([]string, 0, len(meta.Params))
			for k := range meta.Params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Println(viz.Metric(k, fmt.Sprintf("%g", meta.Params[k])))
			}
			fmt.Println()

			if len(rows) < 2 {
				return nil
			}
			// Mesh demos store one row per node; plotting columns of those is noise.
			if meta.Demo == "electro" || meta.Demo == "potential" {
				return nil
			}
			for j := 1; j < len(header); j++ {
				col := make([]float64, len(rows))
				for i, row := range rows {
					col[i] = row[j]
				}
				fmt.Println(asciigraph.Plot(col,
					asciigraph.Height(8),
					asciigraph.Width(70),
					asciigraph.Caption(fmt.Sprintf("%s vs %s", header[j], header[0])),
				))
				fmt.Println()
			}
			return nil
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of an oscillator run",
		Long: "Without a run id the configured oscillator is solved and analysed\n" +
			"directly; with one, the archived energy run is loaded.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				times, xs []float64
				osc       *physics.SpringOscillator
				source    string
			)

			if len(args) == 1 {
				st := storage.New(dataDir)
				meta, err := st.Load(args[0])
				if err != nil {
					return err
				}
				if meta.Demo != "energy" {
					return fmt.Errorf("run %s is a %s run; only energy runs can be analysed", meta.ID, meta.Demo)
				}
				header, rows, err := st.LoadRows(args[0])
				if err != nil {
					return err
				}
				ti, xi := columnIndex(header, "t"), columnIndex(header, "x")
				if ti < 0 || xi < 0 {
					return fmt.Errorf("run %s has no t/x columns", meta.ID)
				}
				for _, row := range rows {
					times = append(times, row[ti])
					xs = append(xs, row[xi])
				}
				osc = physics.NewSpringOscillator(meta.Params["mass"], meta.Params["stiffness"], meta.Params["damping"])
				source = meta.ID
			} else {
				c, err := prepare(cmd, "energy", oscillatorFlags)
				if err != nil {
					return err
				}
				o, err := solveOscillator(cmd.Context(), c)
				if err != nil {
					return err
				}
				times, xs, osc = o.result.Times, o.result.Column(0), o.osc
				source = "configured oscillator"
			}

			if len(times) < 2 {
				return fmt.Errorf("not enough samples to analyse")
			}
			dt := times[1] - times[0]
			freq, err := analysis.DominantFrequency(xs, dt)
			if err != nil {
				return err
			}
			logger.Debug("spectrum computed", zap.Int("samples", len(xs)), zap.Float64("dt", dt))

			ps := analysis.PowerSpectrum(xs)
			shown := ps[:max(len(ps)/4, 2)]

			fmt.Println(viz.HeaderStyle.Render("FREQUENCY ANALYSIS: " + strings.ToUpper(source)))
			fmt.Println(asciigraph.Plot(shown,
				asciigraph.Height(12),
				asciigraph.Width(70),
				asciigraph.Caption("power spectrum of x"),
			))
			fmt.Println()
			fmt.Println(viz.Metric("dominant", fmt.Sprintf("%.4f Hz", freq)))
			if freq > 0 {
				fmt.Println(viz.Metric("period", fmt.Sprintf("%.4f s", 1/freq)))
			}
			if osc.Mass > 0 {
				fmt.Println(viz.Metric("natural", fmt.Sprintf("%.4f Hz", osc.NaturalFrequency())))
				fmt.Println(viz.Metric("damped", fmt.Sprintf("%.4f Hz", osc.DampedFrequency())))
			}
			resolution := 1 / (float64(2*len(ps)) * dt)
			fmt.Println(viz.Subtle.Render(fmt.Sprintf("bin width %.4f Hz", resolution)))
			return nil
		},
	}
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	addOscillatorFlags(cmd)
	return cmd
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [demo]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			demos := config.Demos()
			if len(args) == 1 {
				if config.ListPresets(args[0]) == nil {
					return fmt.Errorf("unknown demo: %s (available: %v)", args[0], demos)
				}
				demos = args[:1]
			}
			for _, demo := range demos {
				fmt.Printf("%s: %s\n", demo, strings.Join(config.ListPresets(demo), ", "))
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	var writePath string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if writePath != "" {
				if err := config.Save(writePath, cfg); err != nil {
					return err
				}
				logger.Info("config written", zap.String("path", writePath))
				return nil
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	}
	cmd.Flags().StringVar(&writePath, "write", "", "write to this file instead of stdout")
	return cmd
}
