// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 VineVault

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vinevault/vinevault/internal/logger"
)

// streamNotifications serves the notification feed as server-sent events.
// The connection stays open until the client disconnects or the server
// shuts down; a dropped subscriber never blocks publishers.
func (h *Handler) streamNotifications(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	events, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				log.Err(err).Msg("failed to marshal notification event")
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Kind, payload)
			flusher.Flush()
		}
	}
}
