package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"lang-tour/controller"
	"lang-tour/services/lessons"
	"lang-tour/utils"
)

// options holds the persistent flags shared by every command.
type options struct {
	configPath string
	debug      bool
	logLevel   string
	logFile    string
	format     string

	cfg    *utils.TourConfig
	logger *utils.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "lang-tour",
		Short: "A guided tour of basic Go language features",
		Long: `lang-tour prints a series of small, self-contained demonstrations:
variable binding and shadowing, numeric types and float rounding, ranges,
strings and runes, maps, pointers, value semantics, complex numbers and a
tiny name,length record parser.

Run without arguments to go through every lesson in order.`,
		SilenceUsage:      true,
		PersistentPreRunE: opts.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				opts.logger.Close()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTour(cmd, nil)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "optional tour.yaml path")
	pf.BoolVar(&opts.debug, "debug", false, "echo every parsed line to stderr and log at debug level")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&opts.logFile, "log", "", "optional log file path (stderr is always included)")
	pf.StringVar(&opts.format, "format", "", "record output format: text or csv")

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Parse the built-in penguin table and print each valid record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTour(cmd, []string{lessons.SampleName})
		},
	}

	lessonsCmd := &cobra.Command{
		Use:   "lessons [name...]",
		Short: "Run the named lessons in the order given",
		Long: `Runs the named lessons in the order given. With no names, the
lessons listed under lessons.enabled in the config run, or all of them.

Example:
  lang-tour lessons types ranges`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.runTour(cmd, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List lessons in canonical order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range lessons.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-11s %s\n", l.Name, l.Summary)
			}
			return nil
		},
	}

	rootCmd.AddCommand(sampleCmd, lessonsCmd, listCmd)
	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger.
func (o *options) setup(cmd *cobra.Command, args []string) error {
	cfg, err := utils.LoadTourConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.format != "" {
		cfg.Sample.Format = o.format
	}
	if o.debug {
		cfg.Log.Level = "debug"
		cfg.Sample.DebugEcho = true
	}

	level, err := utils.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	o.logger, err = utils.InitLogger(level, cfg.Log.File, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.cfg = cfg
	return nil
}

func (o *options) runTour(cmd *cobra.Command, names []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tc, err := controller.NewTourController(o.cfg, names, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := tc.Run(ctx); err != nil {
		return err
	}
	tc.LogStats()
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
