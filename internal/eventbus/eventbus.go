package eventbus

import (
	"ezslider/internal/domain"
	"log"
	"runtime/debug"
	"sync"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSlideChanged       = domain.EventSlideChanged
	EventTransitionStarted  = domain.EventTransitionStarted
	EventReanchored         = domain.EventReanchored
	EventGestureStarted     = domain.EventGestureStarted
	EventGestureMoved       = domain.EventGestureMoved
	EventGestureResolved    = domain.EventGestureResolved
	EventSliderReconfigured = domain.EventSliderReconfigured
	EventConfigLoaded       = domain.EventConfigLoaded
	EventConfigSaved        = domain.EventConfigSaved
)

// Re-export domain event types
type ChangeEvent = domain.ChangeEvent
type TransitionStartedEvent = domain.TransitionStartedEvent
type ReanchoredEvent = domain.ReanchoredEvent
type GestureStartedEvent = domain.GestureStartedEvent
type GestureMovedEvent = domain.GestureMovedEvent
type GestureResolvedEvent = domain.GestureResolvedEvent
type SliderReconfiguredEvent = domain.SliderReconfiguredEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus delivers every event synchronously, on the publisher's goroutine,
// in subscription order
type bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]subscription
	nextID   uint64
}

// New creates a new event bus
func New() EventBus {
	return &bus{
		handlers: make(map[EventType][]subscription),
	}
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventGestureMoved:
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	// Copy so handlers may subscribe or unsubscribe while we iterate
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, sub := range subs {
		b.deliver(sub.handler, event)
	}
}

func (b *bus) deliver(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	h(event)
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			subs := b.handlers[eventType]
			for i, s := range subs {
				if s.id == id {
					kept := make([]subscription, 0, len(subs)-1)
					kept = append(kept, subs[:i]...)
					b.handlers[eventType] = append(kept, subs[i+1:]...)
					break
				}
			}
		})
	}
}
