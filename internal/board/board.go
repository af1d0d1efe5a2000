// Package board ties a catalog to one filter state. Every change to the state
// recomputes the result set before the call returns.
package board

import (
	"sync"
	"time"

	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/filter"
)

// View is what the presentation layer renders for a board.
type View struct {
	ID          string               `json:"id,omitempty"`
	Filters     filter.Snapshot      `json:"filters"`
	DegreeTypes []catalog.DegreeType `json:"degreeTypes"`
	Results     []catalog.Job        `json:"results"`
	Count       int                  `json:"count"`
	Total       int                  `json:"total"`
}

type Board struct {
	mu       sync.Mutex
	id       string
	jobs     []catalog.Job
	state    *filter.State
	results  []catalog.Job
	onChange func(View)
	now      func() time.Time
	lastUsed time.Time
}

type Option func(*Board)

func WithID(id string) Option { return func(b *Board) { b.id = id } }

// WithOnChange registers fn to run whenever the result set changes. It is
// called with the board locked and must not call back into the board.
func WithOnChange(fn func(View)) Option { return func(b *Board) { b.onChange = fn } }

func WithClock(now func() time.Time) Option { return func(b *Board) { b.now = now } }

func New(cat *catalog.Catalog, opts ...Option) *Board {
	b := &Board{
		jobs:  cat.Jobs(),
		state: filter.NewState(),
		now:   time.Now,
	}
	for _, o := range opts {
		o(b)
	}
	b.results = filter.Match(b.jobs, b.state.Snapshot())
	b.lastUsed = b.now()
	return b
}

func (b *Board) ID() string { return b.id }

func (b *Board) View() View {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastUsed = b.now()
	return b.viewLocked()
}

func (b *Board) viewLocked() View {
	return View{
		ID:          b.id,
		Filters:     b.state.Snapshot(),
		DegreeTypes: catalog.DegreeTypesFor(b.state.DegreeLevel()),
		Results:     append([]catalog.Job{}, b.results...),
		Count:       len(b.results),
		Total:       len(b.jobs),
	}
}

// mutate runs fn against the state, recomputes and notifies when the result
// set differs from the one before fn ran.
func (b *Board) mutate(fn func(s *filter.State)) View {
	v, _ := b.update(func(s *filter.State) error {
		fn(s)
		return nil
	})
	return v
}

// update is mutate for changes that validate first. fn must not touch the
// state when it returns an error.
func (b *Board) update(fn func(s *filter.State) error) (View, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastUsed = b.now()

	before := b.results
	if err := fn(b.state); err != nil {
		return View{}, err
	}
	b.recompute()

	v := b.viewLocked()
	if b.onChange != nil && !sameJobs(before, b.results) {
		b.onChange(v)
	}
	return v, nil
}

func (b *Board) recompute() {
	b.results = filter.Match(b.jobs, b.state.Snapshot())
}

func (b *Board) SetIndustry(v catalog.Industry) View {
	return b.mutate(func(s *filter.State) { s.SetIndustry(v) })
}

func (b *Board) SetZipCode(v string) View {
	return b.mutate(func(s *filter.State) { s.SetZipCode(v) })
}

func (b *Board) SetDistance(miles int) View {
	return b.mutate(func(s *filter.State) { s.SetDistance(miles) })
}

func (b *Board) SetDegreeLevel(v catalog.DegreeLevel) View {
	return b.mutate(func(s *filter.State) { s.SetDegreeLevel(v) })
}

func (b *Board) SetDegreeType(v catalog.DegreeType) View {
	return b.mutate(func(s *filter.State) { s.SetDegreeType(v) })
}

func (b *Board) SetExperience(v catalog.Experience) View {
	return b.mutate(func(s *filter.State) { s.SetExperience(v) })
}

func (b *Board) ToggleCredential(item catalog.Credential, present bool) View {
	return b.mutate(func(s *filter.State) { s.ToggleCredential(item, present) })
}

func (b *Board) Reset() View {
	return b.mutate(func(s *filter.State) { s.Reset() })
}

func (b *Board) idleSince() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastUsed
}

func sameJobs(a, b []catalog.Job) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
