package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if handlers, ok := b.listeners[TypeOf(event)]; ok {
		for _, handler := range handlers {
			// Listeners are observers only; they run off the UI goroutine
			go handler(event)
		}
	}
}

// TypeOf returns the key listeners use to subscribe to an event
func TypeOf(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
