package httpapi

import (
	"fmt"
	"net/http"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/events"
)

type EventsHandler struct {
	Sessions *board.Sessions
	Hub      *events.Hub
}

// ServeSSE streams the events of one session until the client goes away or
// the session is closed.
func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "Streaming unsupported")
		return
	}

	// Subscribe before looking the session up: a Delete that lands in between
	// then closes this channel instead of missing it.
	ch := h.Hub.Subscribe(id)
	defer h.Hub.Unsubscribe(ch)
	if _, err := h.Sessions.Get(id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	// Ping as a proper event envelope
	reqID := RequestIDFrom(r.Context())
	ping := events.MakeEvent(id, reqID, events.TypePing, nil)
	fmt.Fprintf(w, "event: message\ndata: %s\n\n", ping)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-ch:
			if !open {
				return
			}
			fmt.Fprintf(w, "event: message\ndata: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
