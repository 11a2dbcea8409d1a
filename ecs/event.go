package ecs

// EventType identifies a kind of event
type EventType string

// Event is anything that can be sent through the EventManager
type Event interface {
	Type() EventType
}

// EventHandler processes one event
type EventHandler func(Event)

// EventManager dispatches events to subscribers synchronously, in
// subscription order
type EventManager struct {
	subscribers map[EventType][]EventHandler
}

// NewEventManager creates an event manager with no subscribers
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers a handler for an event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Emit sends the event to every handler subscribed to its type
func (em *EventManager) Emit(event Event) {
	for _, handler := range em.subscribers[event.Type()] {
		handler(event)
	}
}
