package httpapi

import (
	"github.com/TylorMayfield/nh-jobsearch/internal/board"
	"github.com/TylorMayfield/nh-jobsearch/internal/events"
)

// ResultsPublisher returns a board change listener that publishes a
// results_changed event on the session's topic.
func ResultsPublisher(hub *events.Hub) func(board.View) {
	return func(v board.View) {
		ids := make([]int, 0, len(v.Results))
		for _, j := range v.Results {
			ids = append(ids, j.ID)
		}
		hub.Publish(v.ID, events.NewResultsChanged(v.ID, ids, v.Total))
	}
}
