package events

import (
	"encoding/json"
	"time"
)

// Event types published on a session topic.
const (
	TypePing           = "ping"
	TypeResultsChanged = "results_changed"
	TypeSessionClosed  = "session_closed"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	Session   string          `json:"session,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(session, reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		Session:   session,
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}

// ResultsChanged is the payload of TypeResultsChanged: the ids a session now
// shows, in catalog order.
type ResultsChanged struct {
	Count int   `json:"count"`
	Total int   `json:"total"`
	IDs   []int `json:"ids"`
}

// NewResultsChanged encodes a TypeResultsChanged event for session.
func NewResultsChanged(session string, ids []int, total int) string {
	if ids == nil {
		ids = []int{}
	}
	return MakeEvent(session, "", TypeResultsChanged, ResultsChanged{
		Count: len(ids),
		Total: total,
		IDs:   ids,
	})
}

// NewSessionClosed encodes a TypeSessionClosed event. reqID is empty when
// the session expired.
func NewSessionClosed(session, reqID string) string {
	return MakeEvent(session, reqID, TypeSessionClosed, nil)
}
