package httpapi

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/events"
)

type SessionsHandler struct {
	Sessions *board.Sessions
	Hub      *events.Hub
}

type credentialToggle struct {
	Credential string `json:"credential"`
	Present    bool   `json:"present"`
}

func (h SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	b, err := h.Sessions.Create()
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	log.Printf("level=info msg=\"session created\" request_id=%s session=%s", RequestIDFrom(r.Context()), b.ID())
	WriteJSON(w, http.StatusCreated, b.View())
}

func (h SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.board(w, r)
	if !ok {
		return
	}
	writeJSON(w, b.View())
}

func (h SessionsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	b, ok := h.board(w, r)
	if !ok {
		return
	}

	var p board.Patch
	if !decodeBody(w, r, &p) {
		return
	}
	v, err := b.Apply(p)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, v)
}

func (h SessionsHandler) ToggleCredential(w http.ResponseWriter, r *http.Request) {
	b, ok := h.board(w, r)
	if !ok {
		return
	}

	var in credentialToggle
	if !decodeBody(w, r, &in) {
		return
	}
	c, err := catalog.ParseCredential(in.Credential)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}
	writeJSON(w, b.ToggleCredential(c, in.Present))
}

func (h SessionsHandler) Reset(w http.ResponseWriter, r *http.Request) {
	b, ok := h.board(w, r)
	if !ok {
		return
	}
	writeJSON(w, b.Reset())
}

func (h SessionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := h.Sessions.Delete(id); err != nil {
		writeDomainError(w, r, err)
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(id, events.NewSessionClosed(id, reqID))
	h.Hub.Close(id)
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

func (h SessionsHandler) board(w http.ResponseWriter, r *http.Request) (*board.Board, bool) {
	b, err := h.Sessions.Get(r.PathValue("id"))
	if err != nil {
		writeDomainError(w, r, err)
		return nil, false
	}
	return b, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
		return false
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: trailing data")
		return false
	}
	return true
}
