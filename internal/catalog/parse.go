package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var ErrUnknownValue = errors.New("unknown value")

// clean trims and NFC-normalizes raw selector text so that labels typed or
// pasted with decomposed characters still compare equal to the table.
func clean(raw string) string {
	return norm.NFC.String(strings.TrimSpace(raw))
}

// ParseIndustry maps raw text to an Industry. Empty input and "All" select IndustryAll.
func ParseIndustry(raw string) (Industry, error) {
	s := clean(raw)
	if s == "" || s == All {
		return IndustryAll, nil
	}
	for _, v := range industries {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("industry %q: %w", raw, ErrUnknownValue)
}

func ParseDegreeLevel(raw string) (DegreeLevel, error) {
	s := clean(raw)
	if s == "" || s == All {
		return DegreeLevelAll, nil
	}
	for _, v := range degreeLevels {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("degree level %q: %w", raw, ErrUnknownValue)
}

// ParseDegreeType accepts only the types offered for level. With DegreeLevelAll
// nothing but "All" is offered, so a stale type can never reach a filter through here.
func ParseDegreeType(level DegreeLevel, raw string) (DegreeType, error) {
	s := clean(raw)
	if s == "" || s == All {
		return DegreeTypeAll, nil
	}
	for _, v := range DegreeTypesFor(level) {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("degree type %q for level %q: %w", raw, level, ErrUnknownValue)
}

// ParseExperience accepts the filter buckets only.
func ParseExperience(raw string) (Experience, error) {
	s := clean(raw)
	if s == "" || s == All {
		return ExperienceAll, nil
	}
	for _, v := range experienceOptions {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("experience %q: %w", raw, ErrUnknownValue)
}

// ParseCredential accepts either a credential code or its display label and
// returns the code.
func ParseCredential(raw string) (Credential, error) {
	s := clean(raw)
	for _, o := range credentialOptions {
		if string(o.Code) == s || o.Label == s {
			return o.Code, nil
		}
	}
	return "", fmt.Errorf("credential %q: %w", raw, ErrUnknownValue)
}

func isIndustry(v Industry) bool {
	for _, x := range industries {
		if x == v {
			return true
		}
	}
	return false
}

func isDegreeLevel(v DegreeLevel) bool {
	_, ok := degreeTypes[v]
	return ok
}

func offersDegreeType(level DegreeLevel, t DegreeType) bool {
	for _, x := range degreeTypes[level] {
		if x == t {
			return true
		}
	}
	return false
}

func isCredentialCode(v Credential) bool {
	for _, o := range credentialOptions {
		if o.Code == v {
			return true
		}
	}
	return false
}

var ErrDistanceRange = errors.New("distance out of range")

// ParseDistance checks miles against the slider bounds.
func ParseDistance(miles int) (int, error) {
	if miles < DistanceMin || miles > DistanceMax {
		return 0, fmt.Errorf("distance %d not in %d..%d: %w", miles, DistanceMin, DistanceMax, ErrDistanceRange)
	}
	return miles, nil
}
