// Package notify keeps the short-lived list of human-readable outcome
// messages that repositories push after each mutation.
//
// A notification with a positive duration removes itself when its timer
// fires. The timer is stored next to the entry so a manual Remove cancels
// the pending expiry; removing an id twice is a no-op. Nothing here is
// persisted.
package notify

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/fleetkeeper/internal/client/idgen"
	"github.com/dmitrijs2005/fleetkeeper/internal/metrics"
)

// Type classifies a notification for display.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeError   Type = "error"
)

// DefaultDuration is used when the broadcaster is built with a zero default.
const DefaultDuration = 5 * time.Second

type Notification struct {
	ID        string
	Message   string
	Type      Type
	Duration  time.Duration
	CreatedAt time.Time
}

type entry struct {
	Notification
	timer *time.Timer
}

type Broadcaster struct {
	mu       sync.Mutex
	items    []entry
	subs     map[int]chan Notification
	nextSub  int
	closed   bool
	duration time.Duration
	metrics  *metrics.Metrics
}

// New returns a Broadcaster whose Info/Success/Error helpers expire after
// defaultDuration. m may be nil.
func New(defaultDuration time.Duration, m *metrics.Metrics) *Broadcaster {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Broadcaster{
		subs:     make(map[int]chan Notification),
		duration: defaultDuration,
		metrics:  m,
	}
}

// Add appends a notification and returns its id. A duration <= 0 keeps it
// until removed explicitly.
func (b *Broadcaster) Add(message string, kind Type, d time.Duration) string {
	n := Notification{
		ID:        idgen.New(idgen.PrefixNotification),
		Message:   message,
		Type:      kind,
		Duration:  d,
		CreatedAt: time.Now(),
	}

	b.mu.Lock()
	e := entry{Notification: n}
	if d > 0 && !b.closed {
		id := n.ID
		e.timer = time.AfterFunc(d, func() { b.Remove(id) })
	}
	b.items = append(b.items, e)
	for _, ch := range b.subs {
		select {
		case ch <- n:
		default:
		}
	}
	b.mu.Unlock()

	b.metrics.ObserveNotification(string(kind))
	return n.ID
}

func (b *Broadcaster) Info(message string) string {
	return b.Add(message, TypeInfo, b.duration)
}

func (b *Broadcaster) Success(message string) string {
	return b.Add(message, TypeSuccess, b.duration)
}

func (b *Broadcaster) Error(message string) string {
	return b.Add(message, TypeError, b.duration)
}

// Remove drops the notification with id and cancels its expiry timer.
func (b *Broadcaster) Remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, e := range b.items {
		if e.ID != id {
			continue
		}
		if e.timer != nil {
			e.timer.Stop()
		}
		b.items = append(b.items[:i:i], b.items[i+1:]...)
		return
	}
}

// List returns the current notifications, oldest first.
func (b *Broadcaster) List() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notification, len(b.items))
	for i, e := range b.items {
		out[i] = e.Notification
	}
	return out
}

// Subscribe delivers every subsequently added notification on the returned
// channel. Sends never block: when the buffer is full the notification is
// dropped for that subscriber. cancel closes the channel.
func (b *Broadcaster) Subscribe(buf int) (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Notification, buf)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	key := b.nextSub
	b.nextSub++
	b.subs[key] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[key]; ok {
				delete(b.subs, key)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Close stops every pending expiry and closes all subscriptions. The list
// itself is kept; later notifications no longer expire.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for i := range b.items {
		if b.items[i].timer != nil {
			b.items[i].timer.Stop()
			b.items[i].timer = nil
		}
	}
	for key, ch := range b.subs {
		delete(b.subs, key)
		close(ch)
	}
}
