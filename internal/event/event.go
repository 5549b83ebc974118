// internal/event/event.go
package event

// EventType identifies a kind of gameplay event.
type EventType string

// Event is dispatched synchronously from inside the engine tick.
type Event struct {
	Type EventType
	Data interface{} // one of the payload structs in types.go, or nil
}

// Listener receives dispatched events.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener. Function listeners are not
// comparable and cannot be passed to Unsubscribe.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher fans events out to subscribers. It is not safe for concurrent use;
// all dispatching happens on the simulation thread.
type Dispatcher struct {
	listeners map[EventType][]Listener
	all       []Listener
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers a listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll registers a listener for every event type.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.all = append(d.all, listener)
}

// Unsubscribe removes a listener from one event type.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers the event to its type subscribers, then to catch-all ones.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.all {
		listener.OnEvent(event)
	}
}
