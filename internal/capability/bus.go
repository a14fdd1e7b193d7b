package capability

import (
	"fmt"
	"sync"
)

// Handler receives an event payload. Returning an error (or panicking) is
// logged and isolated; it never reaches the emitter or stops other handlers.
type Handler func(data any) error

type subscription struct {
	id      int
	handler Handler
}

// Bus is a synchronous, single-threaded publish/subscribe hub. Emit invokes
// the current subscribers for an event in subscription order; handlers must
// not perform blocking work.
type Bus struct {
	mu       sync.Mutex
	logger   *Logger
	handlers map[string][]subscription
	nextID   int
}

// NewBus builds a bus. logger may be nil, in which case handler failures are
// silently dropped.
func NewBus(logger *Logger) *Bus {
	return &Bus{
		logger:   logger,
		handlers: map[string][]subscription{},
	}
}

// Subscribe registers a handler for an event and returns an unsubscribe
// function. Once the last handler for an event is removed, the event's
// handler set is dropped entirely.
func (b *Bus) Subscribe(event string, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[event] = append(b.handlers[event], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[event]
		for i, s := range subs {
			if s.id == id {
				subs = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
		if len(subs) == 0 {
			delete(b.handlers, event)
		} else {
			b.handlers[event] = subs
		}
	}
}

// Emit synchronously invokes every handler currently subscribed to the
// event, in subscription order. A failing handler is logged and skipped; the
// rest still run.
func (b *Bus) Emit(event string, data any) {
	b.mu.Lock()
	subs := append([]subscription(nil), b.handlers[event]...)
	b.mu.Unlock()

	for _, s := range subs {
		b.invoke(event, s.handler, data)
	}
}

func (b *Bus) invoke(event string, handler Handler, data any) {
	defer func() {
		if r := recover(); r != nil {
			b.logFailure(event, fmt.Errorf("handler panic: %v", r))
		}
	}()
	if err := handler(data); err != nil {
		b.logFailure(event, err)
	}
}

func (b *Bus) logFailure(event string, err error) {
	if b.logger != nil {
		b.logger.Errorf("event %q handler failed: %v", event, err)
	}
}
