package catalog

// DegreeTypesFor returns the degree types offered for level, in display order.
// DegreeLevelAll and levels missing from the table yield an empty slice.
func DegreeTypesFor(level DegreeLevel) []DegreeType {
	if level == DegreeLevelAll {
		return []DegreeType{}
	}
	types, ok := degreeTypes[level]
	if !ok {
		return []DegreeType{}
	}
	return append([]DegreeType(nil), types...)
}

func Industries() []Industry {
	return append([]Industry(nil), industries...)
}

func DegreeLevels() []DegreeLevel {
	return append([]DegreeLevel(nil), degreeLevels...)
}

func ExperienceOptions() []Experience {
	return append([]Experience(nil), experienceOptions...)
}

func CredentialOptions() []CredentialOption {
	return append([]CredentialOption(nil), credentialOptions...)
}

// CredentialLabel returns the display label for code, or the code itself
// when no option carries it.
func CredentialLabel(code Credential) string {
	for _, o := range credentialOptions {
		if o.Code == code {
			return o.Label
		}
	}
	return string(code)
}

type DistanceRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Step    int `json:"step"`
	Default int `json:"default"`
}

// OptionSet is everything a filter panel needs to render its selectors.
type OptionSet struct {
	Industries   []Industry                   `json:"industries"`
	DegreeLevels []DegreeLevel                `json:"degreeLevels"`
	DegreeTypes  map[DegreeLevel][]DegreeType `json:"degreeTypes"`
	Experience   []Experience                 `json:"experience"`
	Credentials  []CredentialOption           `json:"credentials"`
	Distance     DistanceRange                `json:"distance"`
}

func Options() OptionSet {
	table := make(map[DegreeLevel][]DegreeType, len(degreeTypes))
	for _, level := range degreeLevels {
		table[level] = DegreeTypesFor(level)
	}
	return OptionSet{
		Industries:   Industries(),
		DegreeLevels: DegreeLevels(),
		DegreeTypes:  table,
		Experience:   ExperienceOptions(),
		Credentials:  CredentialOptions(),
		Distance: DistanceRange{
			Min:     DistanceMin,
			Max:     DistanceMax,
			Step:    DistanceStep,
			Default: DistanceDefault,
		},
	}
}
