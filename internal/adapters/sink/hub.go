// Package sink delivers watch notifications to their consumers.
package sink

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"go.trai.ch/orchay/internal/core/domain"
	"go.trai.ch/orchay/internal/core/ports"
)

var (
	_ ports.EventSink = (*Hub)(nil)
	_ http.Handler    = (*Hub)(nil)
)

const (
	// DefaultSubscriberBuffer is the number of notifications queued per subscriber
	// before it is considered slow and dropped.
	DefaultSubscriberBuffer = 64

	wsReadBufferSize  = 1024
	wsWriteBufferSize = 1024
	wsWriteTimeout    = 10 * time.Second

	// EntityQueryParam restricts a WebSocket stream to one entity.
	EntityQueryParam = "projectId"
)

type subscription struct {
	ch     chan domain.Notification
	filter func(domain.Notification) bool
}

// Hub publishes notifications to in-process and WebSocket subscribers.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uint64]subscription
	nextID      uint64
	closed      bool
	buffer      int

	upgrader websocket.Upgrader

	published atomic.Int64
	dropped   atomic.Int64
}

// NewHub creates a Hub. A non-positive buffer selects DefaultSubscriberBuffer.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Hub{
		subscribers: make(map[uint64]subscription),
		buffer:      buffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  wsReadBufferSize,
			WriteBufferSize: wsWriteBufferSize,
			// The server only binds to local addresses.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Subscribe registers a subscriber receiving every notification.
// The returned cancel function is idempotent.
func (h *Hub) Subscribe() (<-chan domain.Notification, func()) {
	return h.SubscribeFiltered(nil)
}

// SubscribeFiltered registers a subscriber receiving notifications accepted by filter.
// A nil filter accepts everything. The channel is closed when the subscriber is
// cancelled, dropped for being slow, or the hub is closed.
func (h *Hub) SubscribeFiltered(filter func(domain.Notification) bool) (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(ch)
		return ch, func() {}
	}

	h.nextID++
	id := h.nextID
	h.subscribers[id] = subscription{ch: ch, filter: filter}

	return ch, func() { h.remove(id) }
}

// Emit implements ports.EventSink. It never blocks on a subscriber.
func (h *Hub) Emit(_ context.Context, n domain.Notification) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.subscribers) == 0 {
		return domain.ErrNoSubscribers
	}

	for id, sub := range h.subscribers {
		if sub.filter != nil && !sub.filter(n) {
			continue
		}
		select {
		case sub.ch <- n:
		default:
			delete(h.subscribers, id)
			close(sub.ch)
			h.dropped.Add(1)
		}
	}
	h.published.Add(1)

	return nil
}

// Subscribers returns the number of attached subscribers.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Published returns the number of notifications accepted by Emit.
func (h *Hub) Published() int64 {
	return h.published.Load()
}

// Dropped returns the number of subscribers removed for falling behind.
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

// Close detaches all subscribers. Later subscriptions receive a closed channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subscribers {
		delete(h.subscribers, id)
		close(sub.ch)
	}
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub, ok := h.subscribers[id]
	if !ok {
		return
	}
	delete(h.subscribers, id)
	close(sub.ch)
}

// ServeHTTP upgrades the request to a WebSocket and streams notifications as
// JSON text frames until the client disconnects or the subscriber is dropped.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already written an HTTP error response.
		return
	}
	defer func() { _ = conn.Close() }()

	var filter func(domain.Notification) bool
	if entity := r.URL.Query().Get(EntityQueryParam); entity != "" {
		filter = func(n domain.Notification) bool { return n.EntityID == entity }
	}

	output, cancel := h.SubscribeFiltered(filter)
	defer cancel()

	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		for n := range output {
			if err := conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
				return
			}
			if err := conn.WriteJSON(n); err != nil {
				return
			}
		}
		// Dropped or closed: tell the client before the read loop notices.
		deadline := time.Now().Add(wsWriteTimeout)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "stream closed"), deadline)
	}()

	// The read loop only detects disconnects; clients send nothing.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	cancel()
	<-writeDone
}
