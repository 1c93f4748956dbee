package feed

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	channelName       = "pickup_orders_changed"
	reconnectInterval = time.Second * 5
	subscriberBuffer  = 16
)

// Hub relays pickup order change notifications from Postgres to connected
// SSE subscribers. The database trigger is the single producer, so every
// instance of the service sees the same stream.
type Hub struct {
	pool *pgxpool.Pool

	mu          sync.Mutex
	subscribers map[chan string]struct{}
}

func New(pool *pgxpool.Pool) *Hub {
	return &Hub{
		pool:        pool,
		subscribers: make(map[chan string]struct{}),
	}
}

func (h *Hub) Start(ctx context.Context) {
	zap.L().Info("Order feed started")
	go h.run(ctx)
}

func (h *Hub) run(ctx context.Context) {
	for {
		if err := h.listen(ctx); err != nil {
			if ctx.Err() != nil {
				zap.L().Info("Context canceled, stopping order feed")
				return
			}
			zap.L().Error("Order feed listener failed, reconnecting", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping order feed")
			return
		case <-time.After(reconnectInterval):
		}
	}
}

func (h *Hub) listen(ctx context.Context) error {
	conn, err := h.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+channelName); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", channelName, err)
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("failed to wait for notification: %w", err)
		}
		h.broadcast(notification.Payload)
	}
}

func (h *Hub) broadcast(payload string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- payload:
		default:
			// slow subscriber, drop the event
		}
	}
}

func (h *Hub) subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.subscribers, ch)
	h.mu.Unlock()
	close(ch)
}

// Handler streams order change events as server-sent events until the client
// disconnects.
func (h *Hub) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		ch := h.subscribe()
		defer h.unsubscribe(ch)

		for {
			select {
			case <-r.Context().Done():
				return
			case payload, open := <-ch:
				if !open {
					return
				}
				fmt.Fprintf(w, "event: order\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}
