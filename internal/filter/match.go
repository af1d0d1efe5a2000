// Package filter holds the per-board filter state and the matcher that
// narrows a catalog to the postings satisfying every active filter.
package filter

import "github.com/TylorMayfield/nh-jobsearch/internal/catalog"

// Reasons returned by Explain, one per predicate.
const (
	ReasonIndustry    = "industry"
	ReasonDegreeLevel = "degree_level"
	ReasonDegreeType  = "degree_type"
	ReasonExperience  = "experience"
	ReasonCredentials = "credentials"
)

// Match returns the jobs that satisfy every predicate of s, in input order.
// The result is never nil. Zip code and distance are not consulted.
func Match(jobs []catalog.Job, s Snapshot) []catalog.Job {
	out := make([]catalog.Job, 0, len(jobs))
	for _, j := range jobs {
		if Explain(j, s) == "" {
			out = append(out, j)
		}
	}
	return out
}

// Explain returns the first predicate j fails under s, or "" when j matches.
//
// The degree type is compared even when the level is "All": the state resets
// the type whenever the level changes, and the parse boundary only accepts
// types offered for the selected level.
func Explain(j catalog.Job, s Snapshot) string {
	if s.Industry != catalog.IndustryAll && j.Industry != s.Industry {
		return ReasonIndustry
	}
	if s.DegreeLevel != catalog.DegreeLevelAll && j.DegreeLevel != s.DegreeLevel {
		return ReasonDegreeLevel
	}
	if s.DegreeType != catalog.DegreeTypeAll && j.DegreeType != s.DegreeType {
		return ReasonDegreeType
	}
	if s.Experience != catalog.ExperienceAll && j.Experience != s.Experience {
		return ReasonExperience
	}
	if !anyCredential(j, s.Credentials) {
		return ReasonCredentials
	}
	return ""
}

// anyCredential is true when nothing is selected or j carries at least one
// selected credential.
func anyCredential(j catalog.Job, selected []catalog.Credential) bool {
	if len(selected) == 0 {
		return true
	}
	for _, c := range selected {
		if j.HasCredential(c) {
			return true
		}
	}
	return false
}
