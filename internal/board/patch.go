package board

import (
	"github.com/TylorMayfield/nh-jobsearch/internal/catalog"
	"github.com/TylorMayfield/nh-jobsearch/internal/filter"
)

// Patch carries raw filter input from the presentation layer. Nil fields are
// left untouched.
type Patch struct {
	Industry    *string `json:"industry,omitempty"`
	ZipCode     *string `json:"zipCode,omitempty"`
	Distance    *int    `json:"distance,omitempty"`
	DegreeLevel *string `json:"degreeLevel,omitempty"`
	DegreeType  *string `json:"degreeType,omitempty"`
	Experience  *string `json:"experience,omitempty"`
}

type parsedPatch struct {
	industry    *catalog.Industry
	zipCode     *string
	distance    *int
	degreeLevel *catalog.DegreeLevel
	degreeType  *catalog.DegreeType
	experience  *catalog.Experience
}

// parse validates every field against the current level before anything is
// applied, so a rejected patch leaves the board unchanged.
func (p Patch) parse(current catalog.DegreeLevel) (parsedPatch, error) {
	var out parsedPatch

	if p.Industry != nil {
		v, err := catalog.ParseIndustry(*p.Industry)
		if err != nil {
			return out, err
		}
		out.industry = &v
	}
	if p.ZipCode != nil {
		v := *p.ZipCode
		out.zipCode = &v
	}
	if p.Distance != nil {
		v, err := catalog.ParseDistance(*p.Distance)
		if err != nil {
			return out, err
		}
		out.distance = &v
	}

	level := current
	if p.DegreeLevel != nil {
		v, err := catalog.ParseDegreeLevel(*p.DegreeLevel)
		if err != nil {
			return out, err
		}
		out.degreeLevel = &v
		level = v
	}
	if p.DegreeType != nil {
		v, err := catalog.ParseDegreeType(level, *p.DegreeType)
		if err != nil {
			return out, err
		}
		out.degreeType = &v
	}
	if p.Experience != nil {
		v, err := catalog.ParseExperience(*p.Experience)
		if err != nil {
			return out, err
		}
		out.experience = &v
	}
	return out, nil
}

// Apply runs the patch's setters in panel order: industry, zip code, distance,
// degree level, degree type, experience. A level in the patch resets the type
// before a type in the same patch is applied.
func (b *Board) Apply(p Patch) (View, error) {
	return b.update(func(s *filter.State) error {
		pp, err := p.parse(s.DegreeLevel())
		if err != nil {
			return err
		}
		if pp.industry != nil {
			s.SetIndustry(*pp.industry)
		}
		if pp.zipCode != nil {
			s.SetZipCode(*pp.zipCode)
		}
		if pp.distance != nil {
			s.SetDistance(*pp.distance)
		}
		if pp.degreeLevel != nil {
			s.SetDegreeLevel(*pp.degreeLevel)
		}
		if pp.degreeType != nil {
			s.SetDegreeType(*pp.degreeType)
		}
		if pp.experience != nil {
			s.SetExperience(*pp.experience)
		}
		return nil
	})
}
