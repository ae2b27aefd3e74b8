// Package square computes squares after a fixed delay.
//
// The delay is a timer registration on an eventloop.Loop, so any number of
// squares can be in flight without a goroutine waiting on each of them.
package square

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcodamonte/exercises/eventloop"
	"github.com/marcodamonte/exercises/future"
)

// DefaultDelay is how long Async waits before producing a result.
const DefaultDelay = 1000 * time.Millisecond

// ErrInvalidArgument is wrapped by the error of a future rejected for a
// negative input.
var ErrInvalidArgument = errors.New("invalid argument")

// Config holds Squarer construction parameters.
type Config struct {
	// Delay before each result is produced. Defaults to DefaultDelay.
	Delay time.Duration

	// Loop runs the delay timers. Defaults to eventloop.Default().
	Loop *eventloop.Loop

	// Logger is used for structured output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Delay <= 0 {
		out.Delay = DefaultDelay
	}
	if out.Loop == nil {
		out.Loop = eventloop.Default()
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// Squarer produces delayed squares on a loop.
type Squarer struct {
	cfg Config
	log *zap.Logger
}

// New creates a Squarer.
func New(cfg Config) *Squarer {
	cfg = cfg.withDefaults()
	return &Squarer{cfg: cfg, log: cfg.Logger.Named("square")}
}

// Delay returns the delay applied to every computation.
func (s *Squarer) Delay() time.Duration { return s.cfg.Delay }

// Async returns a future that resolves to n*n once the delay has elapsed.
//
// A negative n yields a future that is already rejected with an error
// wrapping ErrInvalidArgument; no timer is scheduled for it.
func (s *Squarer) Async(n float64) *future.Future[float64] {
	if n < 0 {
		s.log.Debug("rejected negative input", zap.Float64("n", n))
		return future.Rejected[float64](fmt.Errorf("square %g: negative number not allowed: %w", n, ErrInvalidArgument))
	}

	f := future.New[float64]()
	_, err := s.cfg.Loop.Schedule(s.cfg.Delay, func(err error) {
		if err != nil {
			f.Reject(fmt.Errorf("square %g: %w", n, err))
			return
		}
		f.Resolve(n * n)
	})
	if err != nil {
		f.Reject(fmt.Errorf("square %g: %w", n, err))
	}
	return f
}

var defaultSquarer = sync.OnceValue(func() *Squarer {
	return New(Config{})
})

// Async squares n after DefaultDelay on the default loop.
func Async(n float64) *future.Future[float64] {
	return defaultSquarer().Async(n)
}
