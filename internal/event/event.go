// internal/event/event.go
package event

import "slices"

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // полезная нагрузка, тип зависит от Type (см. types.go)
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher синхронно раздаёт события подписчикам в порядке подписки.
// Подписка и отписка из обработчика действуют со следующего Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe снимает одну подписку listener на eventType.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	i := slices.Index(listeners, listener)
	if i < 0 {
		return
	}
	// Новый срез, чтобы не испортить копию, по которой идёт Dispatch
	rest := slices.Delete(slices.Clone(listeners), i, i+1)
	if len(rest) == 0 {
		delete(d.listeners, eventType)
		return
	}
	d.listeners[eventType] = rest
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
