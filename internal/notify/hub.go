// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package notify

import (
	"sync"

	"github.com/vinevault/vinevault/internal/logger"
)

// subscriberBuffer bounds each subscriber channel. A subscriber that falls
// further behind starts losing events rather than stalling publishers.
const subscriberBuffer = 16

// Hub fans notification events out to any number of subscribers (the SSE
// stream endpoint). Notify never blocks: events for slow subscribers are
// dropped and counted in the log.
type Hub struct {
	logger *logger.Logger

	mu          sync.RWMutex
	subscribers map[int]chan Event
	nextID      int
	closed      bool
}

// NewHub builds an empty hub.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		logger:      log,
		subscribers: make(map[int]chan Event),
	}
}

// Notify implements Notifier. Delivery to each subscriber is best effort.
func (h *Hub) Notify(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	for id, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.logger.Warn().Int("subscriber", id).Msg("dropping notification for slow subscriber")
		}
	}
}

// Subscribe registers a new subscriber and returns its channel and an
// unsubscribe function. The channel is closed on unsubscribe and on Close.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		ch := make(chan Event)
		close(ch)
		return ch, func() {}
	}

	id := h.nextID
	h.nextID++
	ch := make(chan Event, subscriberBuffer)
	h.subscribers[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if sub, exists := h.subscribers[id]; exists {
			delete(h.subscribers, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}

// Close shuts the hub down and closes every subscriber channel.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}
