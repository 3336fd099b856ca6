package input

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	gologging "github.com/op/go-logging"

	"github.com/lixenwraith/term-snake/core"
	"github.com/lixenwraith/term-snake/events"
)

var log = gologging.MustGetLogger("input")

// Poller is the keyboard producer, it reads terminal events and pushes Turn/Quit onto the bus
// Exits when the screen is finalized, after a quit key, or once the bus consumer is gone
type Poller struct {
	screen tcell.Screen
	bus    *events.Bus
	keys   *KeyTable

	keyCount atomic.Uint64

	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPoller creates a producer reading from screen; nil keys selects the default table
func NewPoller(screen tcell.Screen, bus *events.Bus, keys *KeyTable) *Poller {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Poller{
		screen: screen,
		bus:    bus,
		keys:   keys,
	}
}

// Start begins polling in a crash-safe goroutine
func (p *Poller) Start() {
	if p.running.CompareAndSwap(false, true) {
		p.wg.Add(1)
		core.Go(p.loop)
	}
}

// Wait blocks until the poll loop exits
// PollEvent only returns after Fini, so finalize the screen first
func (p *Poller) Wait() {
	p.wg.Wait()
}

// Keys returns the number of bound key presses forwarded
func (p *Poller) Keys() uint64 {
	return p.keyCount.Load()
}

func (p *Poller) loop() {
	defer p.wg.Done()
	defer p.running.Store(false)

	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			action := p.keys.Lookup(ev)
			switch action.Kind {
			case ActionTurn:
				if !p.bus.Send(events.Turn(action.Direction)) {
					return
				}
				p.keyCount.Add(1)
			case ActionQuit:
				p.keyCount.Add(1)
				p.bus.Send(events.Quit())
				return
			}
		case *tcell.EventResize:
			p.screen.Sync()
		}

		select {
		case <-p.bus.Done():
			log.Debug("poller: consumer gone, stopping")
			return
		default:
		}
	}
}
