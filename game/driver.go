package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrDriverRunning is returned by Run when the driver is already running.
var ErrDriverRunning = errors.New("driver already running")

// Stepper is the part of Game the driver needs.
type Stepper interface {
	Step() StepResult
	Speed() time.Duration
}

// StepListener is notified after every tick, from the driver goroutine.
// Implementations must return quickly.
type StepListener interface {
	OnStep(StepResult)
}

// StepListenerFunc adapts a function to StepListener.
type StepListenerFunc func(StepResult)

func (f StepListenerFunc) OnStep(r StepResult) { f(r) }

// Driver advances a game at the interval the game asks for. A new interval
// applies from the tick after the one that changed it.
type Driver struct {
	game      Stepper
	listeners []StepListener
	logger    *slog.Logger

	mutex   sync.Mutex
	running bool
	ticks   atomic.Int64
}

func NewDriver(game Stepper, logger *slog.Logger, listeners ...StepListener) *Driver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Driver{
		game:      game,
		listeners: listeners,
		logger:    logger,
	}
}

// Run ticks until ctx is done and returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	d.mutex.Lock()
	if d.running {
		d.mutex.Unlock()
		return ErrDriverRunning
	}
	d.running = true
	d.mutex.Unlock()

	defer func() {
		d.mutex.Lock()
		d.running = false
		d.mutex.Unlock()
	}()

	interval := d.game.Speed()
	d.logger.Debug("Driver started", "interval", interval)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Debug("Driver stopped", "ticks", d.ticks.Load())
			return ctx.Err()
		case <-timer.C:
			result := d.game.Step()
			d.ticks.Add(1)
			d.dispatch(result)

			if next := d.game.Speed(); next != interval {
				d.logger.Info("Tick interval changed", "from", interval, "to", next)
				interval = next
			}
			timer.Reset(interval)
		}
	}
}

func (d *Driver) dispatch(result StepResult) {
	if result.Moved || result.Collided {
		d.logger.Debug("Tick",
			"round", result.RoundID,
			"ate", result.AteFood,
			"collided", result.Collided,
			"score", result.Score)
	}
	for _, l := range d.listeners {
		l.OnStep(result)
	}
}

// Ticks returns how many ticks have fired.
func (d *Driver) Ticks() int64 {
	return d.ticks.Load()
}
