package httpapi

import (
	"embed"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/filter"
)

//go:embed templates/board.html
var templateFS embed.FS

var boardTmpl = template.Must(template.New("board.html").Funcs(template.FuncMap{
	"credentialLabels": credentialLabels,
}).ParseFS(templateFS, "templates/board.html"))

func credentialLabels(codes []catalog.Credential) string {
	labels := make([]string, 0, len(codes))
	for _, c := range codes {
		labels = append(labels, catalog.CredentialLabel(c))
	}
	return strings.Join(labels, ", ")
}

type PageHandler struct {
	Catalog *catalog.Catalog
}

type boardPage struct {
	Options     catalog.OptionSet
	Filters     filter.Snapshot
	DegreeTypes []catalog.DegreeType
	Checked     map[catalog.Credential]bool
	Active      bool
	Results     []catalog.Job
	Count       int
	Total       int
}

// Board renders the job board with filters read from the query string, the
// same parameters GET /jobs accepts plus prevDegreeLevel from the form.
func (h PageHandler) Board(w http.ResponseWriter, r *http.Request) {
	s, err := stateFromQuery(formQuery(r.URL.Query()))
	if err != nil {
		writeDomainError(w, r, err)
		return
	}

	jobs := h.Catalog.Jobs()
	snap := s.Snapshot()
	page := boardPage{
		Options:     catalog.Options(),
		Filters:     snap,
		DegreeTypes: catalog.DegreeTypesFor(snap.DegreeLevel),
		Checked:     make(map[catalog.Credential]bool, len(snap.Credentials)),
		Active:      s.Active(),
		Results:     filter.Match(jobs, snap),
		Total:       len(jobs),
	}
	for _, c := range snap.Credentials {
		page.Checked[c] = true
	}
	page.Count = len(page.Results)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := boardTmpl.Execute(w, page); err != nil {
		log.Printf("level=error msg=\"render board\" request_id=%s err=%v", RequestIDFrom(r.Context()), err)
	}
}

// formQuery drops degreeType when the form changed the degree level since it
// was rendered, so the type resets the way State.SetDegreeLevel resets it.
// The form echoes the level it was rendered with as prevDegreeLevel; a
// missing value counts as "All".
func formQuery(q url.Values) url.Values {
	prev, errPrev := catalog.ParseDegreeLevel(q.Get("prevDegreeLevel"))
	level, errLevel := catalog.ParseDegreeLevel(q.Get("degreeLevel"))
	if errPrev == nil && errLevel == nil && prev == level {
		return q
	}
	out := make(url.Values, len(q))
	for k, v := range q {
		if k != "degreeType" {
			out[k] = v
		}
	}
	return out
}
