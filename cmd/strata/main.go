package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/strata/internal/app"
	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/config"
	"github.com/five82/strata/internal/prefs"
	"github.com/five82/strata/internal/stats"
	"github.com/five82/strata/internal/welldata"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "strata: %v\n", err)
		return 1
	}
	return 0
}

// depthFlags holds an optional --min/--max depth window.
type depthFlags struct {
	min, max float64
}

func (d *depthFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&d.min, "min", 0, "top of the depth window (optional)")
	cmd.Flags().Float64Var(&d.max, "max", 0, "bottom of the depth window (optional)")
}

// window returns the requested range, or an invalid range when neither
// bound was set.
func (d depthFlags) window(cmd *cobra.Command) (complog.DepthRange, error) {
	if !cmd.Flags().Changed("min") && !cmd.Flags().Changed("max") {
		return complog.DepthRange{}, nil
	}
	rng := complog.DepthRange{Min: d.min, Max: d.max}
	if !rng.Valid() {
		return complog.DepthRange{}, fmt.Errorf("depth window %g..%g is empty", d.min, d.max)
	}
	return rng, nil
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	loadConfig := func() (config.Config, error) {
		return app.LoadConfig(opts)
	}
	newClient := func(cfg config.Config) (*welldata.Client, error) {
		client, err := welldata.NewClient(cfg.APIBind)
		if err != nil {
			return nil, fmt.Errorf("init welldata client: %w", err)
		}
		return client, nil
	}

	root := &cobra.Command{
		Use:   "strata",
		Short: "Composite well log viewer",
		Long: `strata draws composite well logs (formations, lithology, curves and
interpretations side by side against depth) from a well data service.
Without a subcommand it opens the interactive terminal viewer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file path (default ~/.config/strata/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file path (default ~/.config/strata/prefs.toml)")
	flags.StringVar(&opts.APIBind, "api", "", "well data service host:port")
	flags.StringVar(&opts.Workarea, "workarea", "", "workarea holding the well")
	flags.StringVarP(&opts.Well, "well", "w", "", "well to display")
	flags.StringVarP(&opts.LayoutPath, "layout", "l", "", "track layout file (toml, yaml or json)")
	flags.IntVar(&opts.PollEvery, "poll", 0, "refresh interval in seconds (default 10)")

	view := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive viewer",
		Args:  cobra.NoArgs,
		RunE:  root.RunE,
	}

	var (
		renderOpts  app.RenderOptions
		renderDepth depthFlags
	)
	render := &cobra.Command{
		Use:   "render",
		Short: "Render the composite log to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if renderOpts.Window, err = renderDepth.window(cmd); err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			path, err := app.Render(cmd.Context(), client, cfg, renderOpts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	render.Flags().StringVarP(&renderOpts.Out, "out", "o", "", "output file (default <well>_<top>-<bottom>.png)")
	render.Flags().IntVar(&renderOpts.Width, "width", 0, "image width in pixels (default fits the tracks)")
	render.Flags().IntVar(&renderOpts.Height, "height", 0, "image height in pixels (default 1200)")
	renderDepth.register(render)

	var (
		statsOpts  app.StatsOptions
		statsDepth depthFlags
		method     string
	)
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise a curve, or correlate two curves",
		Long: `stats prints the outlier-filtered summary of one curve (--curve) or the
correlation of a curve pair (--x and --y). With --png the matching
histogram or crossplot is written as an image.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if statsOpts.Window, err = statsDepth.window(cmd); err != nil {
				return err
			}
			if method == "" {
				userPrefs, _ := prefs.Load(opts.PrefsPath)
				method = userPrefs.OutlierMethod
			}
			statsOpts.Method = stats.Method(method)
			if !statsOpts.Method.Valid() {
				return fmt.Errorf("invalid outlier method: %s", method)
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			return app.Stats(cmd.Context(), client, cfg, cmd.OutOrStdout(), statsOpts)
		},
	}
	statsCmd.Flags().StringVarP(&statsOpts.Curve, "curve", "c", "", "curve to summarise")
	statsCmd.Flags().StringVar(&statsOpts.CrossX, "x", "", "crossplot x curve")
	statsCmd.Flags().StringVar(&statsOpts.CrossY, "y", "", "crossplot y curve")
	statsCmd.Flags().StringVar(&method, "method", "", "outlier method: none, iqr, iqr3, percentile, sigma2, sigma3, mad (default from prefs)")
	statsCmd.Flags().IntVar(&statsOpts.Bins, "bins", 0, "histogram buckets (default 30)")
	statsCmd.Flags().StringVar(&statsOpts.PNGPath, "png", "", "also write the chart to this PNG file")
	statsCmd.Flags().IntVar(&statsOpts.Width, "width", 0, "chart width in pixels")
	statsCmd.Flags().IntVar(&statsOpts.Height, "height", 0, "chart height in pixels")
	statsDepth.register(statsCmd)

	wells := &cobra.Command{
		Use:   "wells",
		Short: "List the wells of the workarea",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load strata config: %w", err)
			}
			if opts.APIBind != "" {
				cfg.APIBind = opts.APIBind
			}
			if opts.Workarea != "" {
				cfg.Workarea = opts.Workarea
			}
			if cfg.Workarea == "" {
				return fmt.Errorf("workarea is required")
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			return app.Wells(cmd.Context(), client, cfg, cmd.OutOrStdout())
		},
	}

	curves := &cobra.Command{
		Use:   "curves",
		Short: "List the curves stored for the well",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			return app.Curves(cmd.Context(), client, cfg, cmd.OutOrStdout())
		},
	}

	var tail int
	logs := &cobra.Command{
		Use:   "logs [term...]",
		Short: "Print the end of the strata log, keeping lines with every term",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load strata config: %w", err)
			}
			return app.Logs(cfg, cmd.OutOrStdout(), tail, args...)
		},
	}
	logs.Flags().IntVarP(&tail, "lines", "n", 200, "number of lines to read from the end (0 reads all)")

	root.AddCommand(view, render, statsCmd, wells, curves, logs)
	return root
}
