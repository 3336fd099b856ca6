package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/events"
)

// Clock is the timer producer, it pushes one tick event per interval onto the bus
// Exits on Stop or once the bus consumer is gone
type Clock struct {
	bus      *events.Bus
	interval time.Duration

	// Tick counter for debugging and metrics
	tickCount atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClock creates a clock producer with the given tick interval
func NewClock(bus *events.Bus, interval time.Duration) *Clock {
	return &Clock{
		bus:      bus,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins ticking
func (c *Clock) Start() {
	if c.running.CompareAndSwap(false, true) {
		c.wg.Add(1)
		core.Go(c.loop)
	}
}

// Stop halts the clock and waits for the loop to exit
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
}

// Ticks returns the number of delivered tick events
func (c *Clock) Ticks() uint64 {
	return c.tickCount.Load()
}

func (c *Clock) loop() {
	defer c.wg.Done()
	defer c.running.Store(false)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-c.bus.Done():
			log.Debug("clock: consumer gone, stopping")
			return
		case <-ticker.C:
			if !c.bus.Send(events.Tick()) {
				return
			}
			c.tickCount.Add(1)
		}
	}
}
