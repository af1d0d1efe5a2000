package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDegreeTypesFor(t *testing.T) {
	assert.Empty(t, DegreeTypesFor(DegreeLevelAll))
	assert.NotNil(t, DegreeTypesFor(DegreeLevelAll))
	assert.Empty(t, DegreeTypesFor("Postdoc"))

	assert.Equal(t, []DegreeType{DegreeTypeGeneral}, DegreeTypesFor(DegreeLevelHighSchool))
	assert.Equal(t, []DegreeType{
		DegreeTypeComputerScience,
		DegreeTypeBusinessAdministration,
		DegreeTypeNursing,
		DegreeTypeEducation,
		DegreeTypeEngineering,
	}, DegreeTypesFor(DegreeLevelBachelor))
}

func TestDegreeTypesForReturnsCopy(t *testing.T) {
	got := DegreeTypesFor(DegreeLevelDoctoral)
	got[0] = "Astrology"
	assert.Equal(t, DegreeTypeComputerScience, DegreeTypesFor(DegreeLevelDoctoral)[0])
}

func TestOptions(t *testing.T) {
	o := Options()
	assert.Len(t, o.Industries, 10)
	assert.Len(t, o.DegreeLevels, 5)
	assert.Len(t, o.DegreeTypes, 5)
	assert.Equal(t, []Experience{"Entry Level", "1-3 years", "3-5 years", "5+ years"}, o.Experience)
	assert.Len(t, o.Credentials, 6)
	assert.Equal(t, DistanceRange{Min: 0, Max: 100, Step: 10, Default: 50}, o.Distance)

	for _, ind := range o.Industries {
		assert.NotEqual(t, All, string(ind))
	}
}

func TestParse(t *testing.T) {
	ind, err := ParseIndustry(" Healthcare ")
	require.NoError(t, err)
	assert.Equal(t, IndustryHealthcare, ind)

	ind, err = ParseIndustry("")
	require.NoError(t, err)
	assert.Equal(t, IndustryAll, ind)

	_, err = ParseIndustry("healthcare")
	assert.True(t, errors.Is(err, ErrUnknownValue), "matching is case-sensitive")

	lvl, err := ParseDegreeLevel("Master's")
	require.NoError(t, err)
	assert.Equal(t, DegreeLevelMaster, lvl)

	exp, err := ParseExperience("5+ years")
	require.NoError(t, err)
	assert.Equal(t, ExperienceFivePlus, exp)

	_, err = ParseExperience("2-4 years")
	assert.True(t, errors.Is(err, ErrUnknownValue))
}

func TestParseDegreeTypeDependsOnLevel(t *testing.T) {
	dt, err := ParseDegreeType(DegreeLevelBachelor, "Nursing")
	require.NoError(t, err)
	assert.Equal(t, DegreeTypeNursing, dt)

	_, err = ParseDegreeType(DegreeLevelMaster, "Nursing")
	assert.True(t, errors.Is(err, ErrUnknownValue))

	_, err = ParseDegreeType(DegreeLevelAll, "Nursing")
	assert.True(t, errors.Is(err, ErrUnknownValue))

	dt, err = ParseDegreeType(DegreeLevelAll, "All")
	require.NoError(t, err)
	assert.Equal(t, DegreeTypeAll, dt)
}

func TestParseCredential(t *testing.T) {
	c, err := ParseCredential("CDL")
	require.NoError(t, err)
	assert.Equal(t, CredentialCDL, c)

	c, err = ParseCredential("Registered Nurse (RN)")
	require.NoError(t, err)
	assert.Equal(t, CredentialRN, c)

	_, err = ParseCredential("")
	assert.True(t, errors.Is(err, ErrUnknownValue))
}

func TestParseNormalizesUnicode(t *testing.T) {
	assert.Equal(t, "Caf\u00e9", clean(" Cafe\u0301 "))
}

func TestCredentialLabel(t *testing.T) {
	assert.Equal(t, "Commercial Driver's License (CDL)", CredentialLabel(CredentialCDL))
	assert.Equal(t, "XYZ", CredentialLabel("XYZ"))
}

func TestParseDistance(t *testing.T) {
	for _, ok := range []int{0, 50, 100} {
		got, err := ParseDistance(ok)
		require.NoError(t, err)
		assert.Equal(t, ok, got)
	}
	for _, bad := range []int{-10, 110} {
		_, err := ParseDistance(bad)
		assert.True(t, errors.Is(err, ErrDistanceRange))
	}
}
