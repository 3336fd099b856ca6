package events

import "sync"

// Bus fans events from independent producers into one ordered channel
// Thread-Safety:
//   - Send: multiple producers OK
//   - Events: single consumer (driver loop)
//   - Close: consumer only, signals producers to stop
type Bus struct {
	ch        chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewBus creates a bus with the given channel capacity
func NewBus(size int) *Bus {
	return &Bus{
		ch:   make(chan Event, size),
		done: make(chan struct{}),
	}
}

// Send queues ev, returns false once the consumer has closed the bus
// Blocks only while the buffer is full and the consumer is alive
func (b *Bus) Send(ev Event) bool {
	select {
	case <-b.done:
		return false
	default:
	}

	select {
	case b.ch <- ev:
		return true
	case <-b.done:
		return false
	}
}

// Events is the consumer side of the bus
func (b *Bus) Events() <-chan Event {
	return b.ch
}

// Done is closed when the consumer has exited
func (b *Bus) Done() <-chan struct{} {
	return b.done
}

// Close marks the consumer as gone; the data channel stays open so late senders never panic
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}
