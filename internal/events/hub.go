package events

import "sync"

// Hub fans events out to subscribers of a topic. Topics are session ids.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]string
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]string)}
}

func (h *Hub) Subscribe(topic string) chan string {
	ch := make(chan string, 10)
	h.mu.Lock()
	h.clients[ch] = topic
	h.mu.Unlock()
	return ch
}

func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[ch]; !ok {
		return
	}
	delete(h.clients, ch)
	close(ch)
}

func (h *Hub) Publish(topic, evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch, t := range h.clients {
		if t != topic {
			continue
		}
		select {
		case ch <- evt:
		default:
			// drop if slow
		}
	}
}

// Close closes and removes every subscriber of topic. Readers see a closed
// channel and stop streaming.
func (h *Hub) Close(topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch, t := range h.clients {
		if t == topic {
			delete(h.clients, ch)
			close(ch)
		}
	}
}

func (h *Hub) Subscribers(topic string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, t := range h.clients {
		if t == topic {
			n++
		}
	}
	return n
}
