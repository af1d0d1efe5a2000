package httpapi

import (
	"net/http"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
)

type HealthHandler struct {
	Catalog  *catalog.Catalog
	Sessions *board.Sessions
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"ok":       true,
		"jobs":     h.Catalog.Len(),
		"sessions": h.Sessions.Len(),
	})
}
