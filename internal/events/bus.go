package events

import (
	"sync"
	"sync/atomic"
	"time"
)

// Engine event types.
const (
	TypeSlotScheduled  = "slot.scheduled"
	TypeSlotPublished  = "slot.published"
	TypePublishFailed  = "publish.failed"
	TypePublishStalled = "publish.stalled"
	TypeRuleAdded      = "rule.added"
	TypeRuleRemoved    = "rule.removed"
	TypeTrustUpdated   = "trust.updated"
	TypeModelTrained   = "model.trained"
)

// Event is an in-memory signal emitted by the engine. Data stays small and
// serializable; consumers must not mutate it.
type Event struct {
	Type string
	Time time.Time
	Data any
}

// Bus fans events out to subscribers. Publish never blocks; a subscriber
// whose buffer is full misses the event.
type Bus interface {
	Publish(e Event)
	Subscribe(buffer int) (ch <-chan Event, unsubscribe func())
}

// New returns an in-memory fanout bus with no background goroutines.
func New() Bus {
	return &memBus{subs: map[uint64]chan Event{}}
}

type memBus struct {
	mu   sync.RWMutex
	subs map[uint64]chan Event
	seq  atomic.Uint64
}

func (b *memBus) Publish(e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}

	// Sends happen under the read lock so an unsubscribe cannot close a
	// channel mid-send; sends are non-blocking, so the lock is held briefly.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

func (b *memBus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = 16
	}
	ch := make(chan Event, buffer)
	id := b.seq.Add(1)

	b.mu.Lock()
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			close(ch)
			b.mu.Unlock()
		})
	}
	return ch, unsubscribe
}
