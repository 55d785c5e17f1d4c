package clients

import (
	"sync"

	"github.com/Quelsed/azngameahun/pkg/game/types"
	"github.com/Quelsed/azngameahun/pkg/log"
)

// DefaultSubscriberBufferSize is how many events a subscriber may fall behind
// before new events are dropped for it.
const DefaultSubscriberBufferSize = 64

type EventHandler func(event types.Event)

type subscriber struct {
	events chan types.Event
}

// EventManager fans the events of one session out to its subscribers.
type EventManager struct {
	lock        sync.Mutex
	nextID      int
	subscribers map[int]*subscriber
}

func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[int]*subscriber),
	}
}

// RegisterHandler registers a handler for events and returns a function that removes it.
// Each handler runs on its own goroutine and sees events in the order they were triggered.
// Events still queued when the handler is removed are delivered before its goroutine exits.
func (em *EventManager) RegisterHandler(handler EventHandler) (unregister func()) {
	sub := &subscriber{
		events: make(chan types.Event, DefaultSubscriberBufferSize),
	}
	go func() {
		for event := range sub.events {
			handler(event)
		}
	}()

	em.lock.Lock()
	id := em.nextID
	em.nextID++
	em.subscribers[id] = sub
	em.lock.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			em.lock.Lock()
			delete(em.subscribers, id)
			close(sub.events)
			em.lock.Unlock()
		})
	}
}

// Trigger queues an event for every registered handler without blocking.
// A handler whose queue is full misses the event.
func (em *EventManager) Trigger(event types.Event) {
	em.lock.Lock()
	defer em.lock.Unlock()
	for id, sub := range em.subscribers {
		select {
		case sub.events <- event:
		default:
			log.Warn("Event subscriber %d is full, dropping %s event", id, event.Type)
		}
	}
}
