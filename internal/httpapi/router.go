package httpapi

import "net/http"

// NewMux returns the raw mux so main() can still attach /shutdown (needs srv+token).
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	hh := HealthHandler{Catalog: d.Catalog, Sessions: d.Sessions}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Options
	oh := OptionsHandler{}
	mux.HandleFunc("/options", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.List,
	}))
	mux.HandleFunc("/options/degree-types", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: oh.DegreeTypes,
	}))

	// Stateless match
	jh := JobsHandler{Catalog: d.Catalog}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Get,
	}))

	// Sessions
	sh := SessionsHandler{Sessions: d.Sessions, Hub: d.Hub}
	mux.HandleFunc("/sessions", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Create,
	}))
	mux.HandleFunc("/sessions/{id}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    sh.Get,
		http.MethodPatch:  sh.Patch,
		http.MethodDelete: sh.Delete,
	}))
	mux.HandleFunc("/sessions/{id}/credentials", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.ToggleCredential,
	}))
	mux.HandleFunc("/sessions/{id}/reset", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.Reset,
	}))

	// SSE events
	eh := EventsHandler{Sessions: d.Sessions, Hub: d.Hub}
	mux.HandleFunc("/sessions/{id}/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))
	mux.HandleFunc("/config/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Validate,
	}))

	// HTML board
	ph := PageHandler{Catalog: d.Catalog}
	mux.HandleFunc("/{$}", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ph.Board,
	}))

	return mux
}
