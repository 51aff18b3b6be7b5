package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"painter/app"
	"painter/hal"
	"painter/internal/buildinfo"
	"painter/internal/config"
	"painter/internal/logging"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "painter",
		Short:         "Draw rectangles on a 3D canvas",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML); defaults apply when empty")

	rootCmd.AddCommand(
		windowCmd(),
		headlessCmd(),
		configCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config, installs the process logger and returns the step
// factory for the configured scene.
func setup() (*config.Config, *zap.Logger, hal.NewAppFunc, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, nil, nil, err
	}
	logging.SetGlobal(log)

	s, opts, err := app.FromConfig(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	log.Info("scene loaded",
		zap.String("version", buildinfo.Short()),
		zap.Int("shapes", s.Len()), zap.Bool("camera", s.Camera != nil))

	newApp := func(h hal.HAL) func() error {
		return app.New(h, s, opts)
	}
	return cfg, log, newApp, nil
}

func windowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open a preview window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, newApp, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return hal.RunWindow(hal.WindowConfig{
				Width:  cfg.Window.Width,
				Height: cfg.Window.Height,
				Scale:  cfg.Window.Scale,
				Title:  cfg.Window.Title,
				TPS:    cfg.Window.TPS,
				Logger: log,
			}, newApp)
		},
	}
}

func headlessCmd() *cobra.Command {
	var (
		hz    int
		ticks uint64
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Render without a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, newApp, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
				Width:  cfg.Window.Width,
				Height: cfg.Window.Height,
				Hz:     hz,
				Ticks:  ticks,
				Logger: log,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVar(&hz, "hz", 60, "tick rate")
	cmd.Flags().Uint64Var(&ticks, "ticks", 0, "stop after N ticks (0 = run until interrupted)")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "painter.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
			return nil
		},
	})
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.Full())
		},
	}
}
