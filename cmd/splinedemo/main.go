// Command splinedemo shows Catmull-Rom splines, either interactively in the
// terminal, with a marker moving along the curve at a constant speed, or
// exported as SVG or PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"honnef.co/go/spline"
)

const defaultPoints = "0,0 40,60 120,10 160,80 100,120 20,90"

// config holds the flags shared by all commands.
type config struct {
	points   string
	closed   bool
	alpha    float64
	tension  float64
	samples  int
	logFile  string
	logClose func() error
}

func (cfg *config) options() spline.CatmullRomOptions {
	return spline.CatmullRomOptions{
		Closed:            cfg.closed,
		Tension:           cfg.tension,
		Alpha:             spline.Parameterization(cfg.alpha),
		SamplesPerSegment: cfg.samples,
	}
}

func (cfg *config) curve() (*spline.CatmullRom, error) {
	pts, err := parsePoints(cfg.points)
	if err != nil {
		return nil, err
	}
	return spline.NewCatmullRomOpt(pts, cfg.options())
}

func (cfg *config) setupLogging() error {
	if cfg.logFile == "" {
		return nil
	}
	f, err := os.Create(cfg.logFile)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	spline.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	cfg.logClose = f.Close
	return nil
}

func (cfg *config) closeLogging() error {
	if cfg.logClose == nil {
		return nil
	}
	spline.SetLogger(nil)
	return cfg.logClose()
}

// parsePoints parses a list of points such as "0,0 10,20 30,5".
func parsePoints(s string) ([]spline.Point, error) {
	var pts []spline.Point
	for _, field := range strings.Fields(s) {
		xs, ys, ok := strings.Cut(field, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q, want x,y", field)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", field, err)
		}
		pts = append(pts, spline.Pt(x, y))
	}
	return pts, nil
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	rootCmd := &cobra.Command{
		Use:   "splinedemo",
		Short: "Draw Catmull-Rom splines and move along them",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return cfg.setupLogging()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return cfg.closeLogging()
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfg.points, "points", defaultPoints, "control points as space-separated x,y pairs")
	flags.BoolVar(&cfg.closed, "closed", false, "connect the last control point to the first")
	flags.Float64Var(&cfg.alpha, "alpha", float64(spline.Centripetal), "parameterization: 0 uniform, 0.5 centripetal, 1 chordal")
	flags.Float64Var(&cfg.tension, "tension", 0, "tension in [0, 1]")
	flags.IntVar(&cfg.samples, "samples", spline.DefaultSamplesPerSegment, "arc length samples per segment")
	flags.StringVar(&cfg.logFile, "log", "", "write debug logs to `file`")

	rootCmd.AddCommand(runCmd(cfg))
	rootCmd.AddCommand(svgCmd(cfg))
	rootCmd.AddCommand(pngCmd(cfg))
	return rootCmd
}

func runCmd(cfg *config) *cobra.Command {
	var speed float64

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Move a marker along the curve in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			pts, err := parsePoints(cfg.points)
			if err != nil {
				return err
			}
			demo, err := NewDemo(pts, cfg.options(), speed)
			if err != nil {
				return err
			}
			demo.Run()
			return nil
		},
	}

	cmd.Flags().Float64VarP(&speed, "speed", "s", 20, "marker speed in curve units per second")
	return cmd
}

func svgCmd(cfg *config) *cobra.Command {
	var precision int

	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write the curve as an SVG document to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := cfg.curve()
			if err != nil {
				return err
			}
			return writeSVG(cmd.OutOrStdout(), c, precision)
		},
	}

	cmd.Flags().IntVarP(&precision, "precision", "p", 2, "maximum number of decimals per coordinate, 0 for exact")
	return cmd
}

func pngCmd(cfg *config) *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Render the curve, filled, to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			c, err := cfg.curve()
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := writePNG(f, c, size); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "spline.png", "output file")
	cmd.Flags().IntVar(&size, "size", 256, "size of the longer side of the image, in pixels")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
