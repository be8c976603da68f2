package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"infinite-experiment/skyline/internal/logging"
	"infinite-experiment/skyline/internal/models/entities"
)

const DefaultTickInterval = 100 * time.Millisecond

// Stepper advances simulated time and runs one tick at the new total.
type Stepper interface {
	Advance(delta float64) float64
}

// GameClock drives the simulation on a fixed real-time cadence. The speed
// selector only changes how many simulated minutes each step adds.
type GameClock struct {
	mu       sync.Mutex
	sim      Stepper
	speed    entities.GameSpeed
	interval time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

func NewGameClock(sim Stepper, interval time.Duration) *GameClock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &GameClock{
		sim:      sim,
		speed:    entities.SpeedPaused,
		interval: interval,
	}
}

// Step performs one real-time step. It is a no-op while paused.
func (c *GameClock) Step() {
	c.mu.Lock()
	delta := c.speed.Multiplier()
	c.mu.Unlock()

	if delta == 0 {
		return
	}
	c.sim.Advance(delta)
}

// Start launches the tick loop. It returns false if the loop is already
// running.
func (c *GameClock) Start(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		return false
	}

	loopCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go c.loop(loopCtx, done)

	logging.Info("Game clock started", "interval", c.interval.String(), "speed", c.speed.String())
	return true
}

func (c *GameClock) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Step()
		}
	}
}

// Stop halts future ticks and waits for the loop to exit. Simulated time is
// kept.
func (c *GameClock) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	logging.Info("Game clock stopped")
}

// Run starts the clock and blocks until ctx is cancelled.
func (c *GameClock) Run(ctx context.Context) error {
	c.Start(ctx)
	<-ctx.Done()
	c.Stop()
	return nil
}

func (c *GameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = entities.SpeedPaused
}

func (c *GameClock) SetSpeed(s entities.GameSpeed) error {
	if !s.Valid() {
		return fmt.Errorf("invalid game speed %d", s)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = s
	return nil
}

func (c *GameClock) Speed() entities.GameSpeed {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *GameClock) IsPaused() bool {
	return c.Speed() == entities.SpeedPaused
}

func (c *GameClock) IsRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}
