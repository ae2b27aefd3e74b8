// Package eventloop provides a single-goroutine timer facility: callers
// register one-shot callbacks with a delay and the loop runs them when the
// delay elapses, without parking a goroutine per registration.
package eventloop

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Callback is invoked once per registration: with a nil error when the
// timer fires, or with ErrLoopClosed when the registration is dropped by a
// forced shutdown. Callbacks run on the loop goroutine and must not block.
type Callback func(err error)

// Config holds loop construction parameters.
type Config struct {
	// ShutdownTimeout is the maximum time Shutdown waits for pending timers
	// to fire before dropping them. Defaults to 30 s.
	ShutdownTimeout time.Duration

	// Logger is used for structured output. If nil, a no-op logger is used.
	Logger *zap.Logger
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.ShutdownTimeout <= 0 {
		out.ShutdownTimeout = 30 * time.Second
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}
	return out
}

// Metrics exposes live loop counters. All fields are updated atomically and
// safe to read from any goroutine.
type Metrics struct {
	Scheduled int64 // registrations accepted
	Fired     int64 // callbacks run after their delay
	Stopped   int64 // registrations cancelled with Timer.Stop
	Dropped   int64 // registrations rejected or discarded by shutdown
}

// Loop runs timer callbacks in deadline order on one goroutine.
//
// Lifecycle:
//
//	loop := eventloop.New(cfg)
//	loop.Schedule(d, cb) // returns immediately
//	loop.Shutdown()      // stop accepting, let pending timers fire
type Loop struct {
	cfg     Config
	log     *zap.Logger
	metrics Metrics

	mu      sync.Mutex
	queue   timerQueue
	seq     uint64
	closing bool

	// wake nudges the run goroutine when the earliest deadline may have
	// changed or shutdown began.
	wake chan struct{}
	// kill forces the run goroutine to drop what is left and exit.
	kill   chan struct{}
	exited chan struct{}

	// once ensures Shutdown is idempotent.
	once        sync.Once
	shutdownErr error
}

// New creates a Loop and starts its goroutine. The goroutine runs until
// Shutdown is called.
func New(cfg Config) *Loop {
	cfg = cfg.withDefaults()

	l := &Loop{
		cfg:    cfg,
		log:    cfg.Logger.Named("eventloop"),
		wake:   make(chan struct{}, 1),
		kill:   make(chan struct{}),
		exited: make(chan struct{}),
	}

	l.log.Info("loop started", zap.Duration("shutdown_timeout", cfg.ShutdownTimeout))

	go l.run()
	return l
}

var defaultLoop = sync.OnceValue(func() *Loop {
	return New(Config{})
})

// Default returns a process-wide Loop. It is created on first use and is
// never shut down.
func Default() *Loop {
	return defaultLoop()
}

// Schedule registers cb to run once delay has elapsed. A non-positive delay
// fires on the next loop iteration. Registrations with equal deadlines run
// in the order they were scheduled.
//
// Schedule returns ErrLoopClosed once Shutdown has begun.
func (l *Loop) Schedule(delay time.Duration, cb Callback) (*Timer, error) {
	if cb == nil {
		return nil, ErrNilCallback
	}

	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		atomic.AddInt64(&l.metrics.Dropped, 1)
		return nil, ErrLoopClosed
	}

	l.seq++
	e := &entry{
		deadline: time.Now().Add(delay),
		seq:      l.seq,
		cb:       cb,
	}
	heap.Push(&l.queue, e)
	earliest := l.queue[0] == e
	l.mu.Unlock()

	atomic.AddInt64(&l.metrics.Scheduled, 1)
	l.log.Debug("timer scheduled", zap.Uint64("seq", e.seq), zap.Duration("delay", delay))

	if earliest {
		l.nudge()
	}
	return &Timer{loop: l, e: e}, nil
}

// Pending returns the number of registrations waiting to fire.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.queue.Len()
}

// Shutdown stops the loop gracefully:
//  1. Marks the loop as closing so no new timers are accepted.
//  2. Lets pending timers fire at their deadlines.
//  3. Waits up to ShutdownTimeout for the queue to drain.
//  4. If the timeout elapses, drops the remaining timers (their callbacks
//     receive ErrLoopClosed) and returns ErrShutdownTimeout.
//
// Shutdown is safe to call more than once; later calls return the result of
// the first.
func (l *Loop) Shutdown() error {
	l.once.Do(func() {
		l.mu.Lock()
		l.closing = true
		pending := l.queue.Len()
		l.mu.Unlock()

		l.log.Info("shutdown initiated", zap.Int("pending", pending))
		l.nudge()

		select {
		case <-l.exited:
			l.log.Info("shutdown complete")

		case <-time.After(l.cfg.ShutdownTimeout):
			l.log.Warn("shutdown timeout elapsed, dropping pending timers",
				zap.Duration("timeout", l.cfg.ShutdownTimeout))
			close(l.kill)
			<-l.exited
			l.shutdownErr = ErrShutdownTimeout
		}

		m := l.Metrics()
		l.log.Info("loop stopped",
			zap.Int64("scheduled", m.Scheduled),
			zap.Int64("fired", m.Fired),
			zap.Int64("stopped", m.Stopped),
			zap.Int64("dropped", m.Dropped))
	})

	return l.shutdownErr
}

// Metrics returns a snapshot of loop counters. Values are consistent within
// each field but may not be mutually consistent across fields.
func (l *Loop) Metrics() Metrics {
	return Metrics{
		Scheduled: atomic.LoadInt64(&l.metrics.Scheduled),
		Fired:     atomic.LoadInt64(&l.metrics.Fired),
		Stopped:   atomic.LoadInt64(&l.metrics.Stopped),
		Dropped:   atomic.LoadInt64(&l.metrics.Dropped),
	}
}

func (l *Loop) nudge() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// run is the loop goroutine body.
func (l *Loop) run() {
	defer close(l.exited)

	for {
		due, next, done := l.collect(time.Now())
		for _, e := range due {
			atomic.AddInt64(&l.metrics.Fired, 1)
			e.cb(nil)
		}
		if len(due) > 0 {
			// Time moved on while callbacks ran.
			continue
		}
		if done {
			return
		}

		var fire <-chan time.Time
		var timer *time.Timer
		if !next.IsZero() {
			timer = time.NewTimer(time.Until(next))
			fire = timer.C
		}

		select {
		case <-fire:
		case <-l.wake:
		case <-l.kill:
			if timer != nil {
				timer.Stop()
			}
			l.dropAll()
			return
		}
		if timer != nil {
			timer.Stop()
		}
	}
}

// collect pops every entry due at now. next is the earliest remaining
// deadline (zero if the queue is empty) and done reports that the loop is
// closing with nothing left to run.
func (l *Loop) collect(now time.Time) (due []*entry, next time.Time, done bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for l.queue.Len() > 0 && !l.queue[0].deadline.After(now) {
		due = append(due, heap.Pop(&l.queue).(*entry))
	}
	if l.queue.Len() > 0 {
		next = l.queue[0].deadline
	}
	done = l.closing && l.queue.Len() == 0
	return due, next, done
}

func (l *Loop) dropAll() {
	l.mu.Lock()
	dropped := make([]*entry, 0, l.queue.Len())
	for l.queue.Len() > 0 {
		dropped = append(dropped, heap.Pop(&l.queue).(*entry))
	}
	l.mu.Unlock()

	for _, e := range dropped {
		atomic.AddInt64(&l.metrics.Dropped, 1)
		e.cb(ErrLoopClosed)
	}
}

// Timer is a pending registration returned by Schedule.
type Timer struct {
	loop *Loop
	e    *entry
}

// Stop cancels the registration. It returns false if the callback already
// ran, was dropped, or the timer was already stopped.
func (t *Timer) Stop() bool {
	l := t.loop

	l.mu.Lock()
	if t.e.index < 0 {
		l.mu.Unlock()
		return false
	}
	heap.Remove(&l.queue, t.e.index)
	l.mu.Unlock()

	atomic.AddInt64(&l.metrics.Stopped, 1)
	l.log.Debug("timer stopped", zap.Uint64("seq", t.e.seq))
	l.nudge()
	return true
}

// Sentinel errors returned by the loop.
var (
	ErrLoopClosed      = errors.New("event loop is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; pending timers were dropped")
	ErrNilCallback     = errors.New("nil callback")
)
