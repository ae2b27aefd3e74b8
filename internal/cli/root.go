// Package cli wires the exercises into a cobra command tree.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/exercises/config"
	"github.com/marcodamonte/exercises/internal/logging"
)

// app carries state shared by every command.
type app struct {
	cfgPath string
	verbose bool

	cfg config.Config
	log *zap.Logger
}

// Execute runs the root command until it finishes or SIGINT/SIGTERM arrives.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "Small Go exercises: casing, filtering, generics, composition, timers",
		Long: `exercises runs a set of independent exercises from the command line.

Datasets for the ratings and most-expensive commands are YAML files:

  items:
    - {title: Dune, rating: 4.5}
  products:
    - {name: Laptop, price: 1200}`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.log.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML config file (optional)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		formatCmd(),
		ratingsCmd(a),
		concatCmd(),
		vehicleCmd(),
		processCmd(),
		mostExpensiveCmd(a),
		dayCmd(),
		squareCmd(a),
		demoCmd(a),
	)
	return cmd
}

func (a *app) init() error {
	if a.cfgPath != "" {
		cfg, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logger, err := logging.New(a.cfg.Log, a.verbose)
	if err != nil {
		return err
	}
	a.log = logger
	a.log.Debug("config loaded", zap.String("path", a.cfgPath))
	return nil
}
