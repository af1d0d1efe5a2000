package httpapi

import (
	"net/http"
	"strconv"

	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/filter"
)

type JobsHandler struct {
	Catalog *catalog.Catalog
}

type Exclusion struct {
	ID     int    `json:"id"`
	Reason string `json:"reason"`
}

type JobsResponse struct {
	board.View
	Excluded []Exclusion `json:"excluded,omitempty"`
}

// List matches the catalog against filters given in the query string. No
// session is created. With explain=1 every excluded job is listed with the
// first filter it failed.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s, err := stateFromQuery(q)
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	jobs := h.Catalog.Jobs()
	snap := s.Snapshot()
	results := filter.Match(jobs, snap)

	resp := JobsResponse{View: board.View{
		Filters:     snap,
		DegreeTypes: catalog.DegreeTypesFor(snap.DegreeLevel),
		Results:     results,
		Count:       len(results),
		Total:       len(jobs),
	}}
	if q.Get("explain") == "1" {
		for _, j := range jobs {
			if reason := filter.Explain(j, snap); reason != "" {
				resp.Excluded = append(resp.Excluded, Exclusion{ID: j.ID, Reason: reason})
			}
		}
	}
	writeJSON(w, resp)
}

func (h JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	j, ok := h.Catalog.ByID(id)
	if !ok {
		WriteError(w, r, http.StatusNotFound, "job_not_found", "job "+strconv.Itoa(id)+" not found")
		return
	}
	writeJSON(w, j)
}
