package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/exercises/eventloop"
	"github.com/marcodamonte/exercises/future"
	"github.com/marcodamonte/exercises/square"
)

func squareCmd(a *app) *cobra.Command {
	var delay time.Duration

	c := &cobra.Command{
		Use:   "square <n>...",
		Short: "Square numbers after a fixed delay, all at once",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums := make([]float64, len(args))
			for i, arg := range args {
				n, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				nums[i] = n
			}

			sq, shutdown := a.newSquarer(delay)
			defer shutdown()

			fs := make([]*future.Future[float64], len(nums))
			for i, n := range nums {
				fs[i] = sq.Async(n)
			}

			start := time.Now()
			results, err := future.AwaitAll(cmd.Context(), fs...)
			if err != nil {
				return err
			}
			a.log.Debug("squares computed", zap.Int("count", len(results)), zap.Duration("elapsed", time.Since(start)))

			out := cmd.OutOrStdout()
			for i, r := range results {
				fmt.Fprintf(out, "%s^2 = %s\n", formatNumber(nums[i]), formatNumber(r))
			}
			return nil
		},
	}

	c.Flags().DurationVar(&delay, "delay", 0, "override the configured delay")
	return c
}

// newSquarer returns a Squarer on a loop owned by the caller, which must
// call shutdown when done.
func (a *app) newSquarer(delay time.Duration) (*square.Squarer, func()) {
	if delay <= 0 {
		delay = a.cfg.Square.Delay
	}

	loop := eventloop.New(eventloop.Config{
		ShutdownTimeout: a.cfg.Loop.ShutdownTimeout,
		Logger:          a.log,
	})
	sq := square.New(square.Config{Delay: delay, Loop: loop, Logger: a.log})

	return sq, func() {
		if err := loop.Shutdown(); err != nil {
			a.log.Warn("event loop shutdown", zap.Error(err))
		}
	}
}
