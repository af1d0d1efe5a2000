package filter

import "github.com/TylorMayfield/nh-jobsearch/internal/catalog"

// State is the current value of every filter on one board. The zero value is
// not ready for use; call NewState.
type State struct {
	industry    catalog.Industry
	zipCode     string
	distance    int
	degreeLevel catalog.DegreeLevel
	degreeType  catalog.DegreeType
	experience  catalog.Experience
	credentials []catalog.Credential
}

func NewState() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset puts every field back to its "no constraint" default.
func (s *State) Reset() {
	s.industry = catalog.IndustryAll
	s.zipCode = ""
	s.distance = catalog.DistanceDefault
	s.degreeLevel = catalog.DegreeLevelAll
	s.degreeType = catalog.DegreeTypeAll
	s.experience = catalog.ExperienceAll
	s.credentials = nil
}

func (s *State) SetIndustry(v catalog.Industry) { s.industry = v }

// SetZipCode stores free text. Nothing matches on it yet.
func (s *State) SetZipCode(v string) { s.zipCode = v }

// SetDistance stores the slider value in miles. Nothing matches on it yet.
func (s *State) SetDistance(miles int) { s.distance = miles }

// SetDegreeLevel also resets the degree type, whose options depend on the level.
func (s *State) SetDegreeLevel(v catalog.DegreeLevel) {
	s.degreeLevel = v
	s.degreeType = catalog.DegreeTypeAll
}

func (s *State) SetDegreeType(v catalog.DegreeType) { s.degreeType = v }

func (s *State) SetExperience(v catalog.Experience) { s.experience = v }

// ToggleCredential adds item when present is true and removes it otherwise.
// Selection order is kept and an item is never held twice.
func (s *State) ToggleCredential(item catalog.Credential, present bool) {
	i := s.indexOf(item)
	switch {
	case present && i < 0:
		s.credentials = append(s.credentials, item)
	case !present && i >= 0:
		s.credentials = append(s.credentials[:i:i], s.credentials[i+1:]...)
	}
}

func (s *State) indexOf(item catalog.Credential) int {
	for i, c := range s.credentials {
		if c == item {
			return i
		}
	}
	return -1
}

func (s *State) Industry() catalog.Industry       { return s.industry }
func (s *State) ZipCode() string                  { return s.zipCode }
func (s *State) Distance() int                    { return s.distance }
func (s *State) DegreeLevel() catalog.DegreeLevel { return s.degreeLevel }
func (s *State) DegreeType() catalog.DegreeType   { return s.degreeType }
func (s *State) Experience() catalog.Experience   { return s.experience }

func (s *State) Credentials() []catalog.Credential {
	return append([]catalog.Credential{}, s.credentials...)
}

// Active reports whether any field that takes part in matching is constrained.
func (s *State) Active() bool {
	return s.industry != catalog.IndustryAll ||
		s.degreeLevel != catalog.DegreeLevelAll ||
		s.degreeType != catalog.DegreeTypeAll ||
		s.experience != catalog.ExperienceAll ||
		len(s.credentials) > 0
}

// Snapshot is a detached copy of a State, safe to hand to other goroutines
// and to encode for the presentation layer.
type Snapshot struct {
	Industry    catalog.Industry     `json:"industry"`
	ZipCode     string               `json:"zipCode"`
	Distance    int                  `json:"distance"`
	DegreeLevel catalog.DegreeLevel  `json:"degreeLevel"`
	DegreeType  catalog.DegreeType   `json:"degreeType"`
	Experience  catalog.Experience   `json:"experience"`
	Credentials []catalog.Credential `json:"credentials"`
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Industry:    s.industry,
		ZipCode:     s.zipCode,
		Distance:    s.distance,
		DegreeLevel: s.degreeLevel,
		DegreeType:  s.degreeType,
		Experience:  s.experience,
		Credentials: s.Credentials(),
	}
}
