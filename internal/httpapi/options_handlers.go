package httpapi

import (
	"net/http"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
)

type OptionsHandler struct{}

func (h OptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, catalog.Options())
}

// DegreeTypes answers the lookup for ?level=. Unknown levels get an empty
// list, the same as "All".
func (h OptionsHandler) DegreeTypes(w http.ResponseWriter, r *http.Request) {
	level := catalog.DegreeLevel(r.URL.Query().Get("level"))
	writeJSON(w, map[string]any{
		"level":       level,
		"degreeTypes": catalog.DegreeTypesFor(level),
	})
}
