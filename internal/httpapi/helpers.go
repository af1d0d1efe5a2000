package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/filter"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// stateFromQuery builds a filter state from query parameters through the
// state's setters. The degree level is set before the degree type so the
// type is checked against the selected level.
func stateFromQuery(q url.Values) (*filter.State, error) {
	s := filter.NewState()

	industry, err := catalog.ParseIndustry(q.Get("industry"))
	if err != nil {
		return nil, err
	}
	s.SetIndustry(industry)

	s.SetZipCode(strings.TrimSpace(q.Get("zip")))

	if raw := strings.TrimSpace(q.Get("distance")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("distance %q: %w", raw, catalog.ErrDistanceRange)
		}
		miles, err := catalog.ParseDistance(n)
		if err != nil {
			return nil, err
		}
		s.SetDistance(miles)
	}

	level, err := catalog.ParseDegreeLevel(q.Get("degreeLevel"))
	if err != nil {
		return nil, err
	}
	s.SetDegreeLevel(level)

	dtype, err := catalog.ParseDegreeType(level, q.Get("degreeType"))
	if err != nil {
		return nil, err
	}
	s.SetDegreeType(dtype)

	exp, err := catalog.ParseExperience(q.Get("experience"))
	if err != nil {
		return nil, err
	}
	s.SetExperience(exp)

	for _, raw := range q["credential"] {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		c, err := catalog.ParseCredential(raw)
		if err != nil {
			return nil, err
		}
		s.ToggleCredential(c, true)
	}
	return s, nil
}
