// internal/event/manager.go
package event

import (
	"sync"

	"github.com/quillmd/quill/internal/logger"
)

// Handler is the function signature for event subscribers. The return value
// reports whether the event was consumed; delivery continues regardless.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching. Delivery is
// synchronous and in subscription order; handlers must not re-enter
// buffer mutations from inside a notification.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: handler subscribed to type %v", eventType)
}

// Dispatch sends an event to all registered handlers for its type.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	ev := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	// Copy so a handler subscribing during dispatch cannot shift the slice.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)

	for _, handler := range handlersCopy {
		handler(ev)
	}
}
