package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/deepfabric/pointset"
	"github.com/deepfabric/pointset/cmd/pointsetcmp/config"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	trace      bool
	k          int
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:   "pointsetcmp FILE X Y | FILE XMIN YMIN XMAX YMAX",
		Short: "Cross-check the 2-d tree against the reference point set",
		Long: `Load FILE (whitespace separated "x y" pairs) into both the 2-d tree and
the reference point set, run the same query on each and compare the answers.

With three arguments both nearest neighbours of (X, Y) are printed.
With five arguments the points inside the rectangle (XMIN, YMIN)-(XMAX, YMAX)
are compared in canonical order and the first difference is reported.
Put -- before the arguments when a coordinate is negative.

Examples:
  pointsetcmp points.dat 1 1
  pointsetcmp points.dat 1 1 --k 5
  pointsetcmp points.dat 1 1 3 5
  pointsetcmp -- points.dat -1 -1 3 5`,
		Args:          validateArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	cmd.Flags().StringVar(&flags.configPath, "config", "", "path to a yaml config file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "log format: text or json")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "export OpenTelemetry spans to stderr")
	cmd.Flags().IntVarP(&flags.k, "k", "k", 0, "also compare the k nearest neighbours (nearest mode only)")
	return cmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 && len(args) != 5 {
		return errors.Errorf("wrong amount of arguments: want FILE X Y or FILE XMIN YMIN XMAX YMAX, got %d", len(args))
	}
	return nil
}

// loadConfig reads the config file, then lets explicitly set flags override it.
func loadConfig(cmd *cobra.Command, flags rootFlags) (cfg config.Config, err error) {
	if cfg, err = config.Load(flags.configPath); err != nil {
		return
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = flags.trace
	}
	if cmd.Flags().Changed("k") {
		cfg.K = flags.k
	}
	err = cfg.Validate()
	return
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer, args []string) (err error) {
	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	tracer, shutdown, err := setupTracing(cfg.Trace, stderr)
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil && err == nil {
			err = errors.Wrap(serr, "shutdown tracing")
		}
	}()

	coords, err := parseCoords(args[1:])
	if err != nil {
		return err
	}
	d := &driver{out: stdout, k: cfg.K, tracer: tracer, logger: logger}
	if len(coords) == 2 {
		return d.nearest(ctx, args[0], pointset.Point{X: coords[0], Y: coords[1]})
	}
	rect := pointset.NewRect(
		pointset.Point{X: coords[0], Y: coords[1]},
		pointset.Point{X: coords[2], Y: coords[3]},
	)
	return d.compareRange(ctx, args[0], rect)
}

func parseCoords(args []string) ([]float64, error) {
	coords := make([]float64, len(args))
	for i, arg := range args {
		val, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "coordinate %d", i+1)
		}
		coords[i] = val
	}
	return coords, nil
}
