package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleCatalog(t *testing.T) {
	c := Sample()
	require.Equal(t, 5, c.Len())

	var titles []string
	for _, j := range c.Jobs() {
		titles = append(titles, j.Title)
	}
	assert.Equal(t, []string{
		"Software Engineer",
		"Truck Driver",
		"Registered Nurse",
		"Financial Analyst",
		"High School Teacher",
	}, titles)

	nurse, ok := c.ByID(3)
	require.True(t, ok)
	assert.Equal(t, DegreeLevelBachelor, nurse.DegreeLevel)
	assert.Equal(t, DegreeTypeNursing, nurse.DegreeType)
	assert.Equal(t, Experience("2-4 years"), nurse.Experience)
	assert.Equal(t, []Credential{CredentialRN}, nurse.Credentials)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}

func TestJobsReturnsCopy(t *testing.T) {
	c := Sample()
	jobs := c.Jobs()
	jobs[0].Title = "changed"
	assert.Equal(t, "Software Engineer", c.Jobs()[0].Title)
}

func validJob(id int) Job {
	return Job{
		ID:          id,
		Title:       "Analyst",
		Company:     "Acme",
		Location:    "Boston, MA",
		Industry:    IndustryFinance,
		DegreeLevel: DegreeLevelMaster,
		DegreeType:  DegreeTypeBusinessAdministration,
		Experience:  ExperienceThreeToFive,
		Credentials: []Credential{CredentialCPA},
	}
}

func TestNewRejectsInvalidJobs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(j *Job)
		want   string
	}{
		{"zero id", func(j *Job) { j.ID = 0 }, "id must be positive"},
		{"missing title", func(j *Job) { j.Title = "  " }, "title is required"},
		{"sentinel industry", func(j *Job) { j.Industry = IndustryAll }, "not a known industry"},
		{"unknown industry", func(j *Job) { j.Industry = "Farming" }, "not a known industry"},
		{"sentinel level", func(j *Job) { j.DegreeLevel = DegreeLevelAll }, "not a known level"},
		{"type outside level", func(j *Job) { j.DegreeType = DegreeTypeNursing }, "not offered"},
		{"type without level", func(j *Job) { j.DegreeLevel = "" }, "without a degree level"},
		{"sentinel experience", func(j *Job) { j.Experience = ExperienceAll }, "not a bucket label"},
		{"unknown credential", func(j *Job) { j.Credentials = []Credential{"PE"} }, "not a known code"},
		{"duplicate credential", func(j *Job) { j.Credentials = []Credential{CredentialCPA, CredentialCPA} }, "listed twice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := validJob(1)
			tt.mutate(&j)
			_, err := New([]Job{j})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidJob))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNewReportsEveryViolation(t *testing.T) {
	bad := validJob(2)
	bad.Industry = "Farming"
	_, err := New([]Job{validJob(1), validJob(1), bad})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "duplicate id 1")
	assert.Contains(t, msg, "jobs[2]")
}

func TestNewAcceptsMissingDegree(t *testing.T) {
	j := validJob(1)
	j.DegreeLevel = ""
	j.DegreeType = ""
	c, err := New([]Job{j})
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestNewMapsCredentialLabelsToCodes(t *testing.T) {
	j := validJob(1)
	j.Credentials = []Credential{"Certified Public Accountant (CPA)"}
	c, err := New([]Job{j})
	require.NoError(t, err)
	got, _ := c.ByID(1)
	assert.Equal(t, []Credential{CredentialCPA}, got.Credentials)
}

func TestNewCleansPostingText(t *testing.T) {
	j := validJob(1)
	j.Title = "  Senior\u00a0 Nurse "
	j.Location = "Boston, , boston,MA"
	j.Description = "Line one.\n\n  Line two."
	c, err := New([]Job{j})
	require.NoError(t, err)

	got, _ := c.ByID(1)
	assert.Equal(t, "Senior Nurse", got.Title)
	assert.Equal(t, "Boston, MA", got.Location)
	assert.Equal(t, "Line one. Line two.", got.Description)
}

func TestLoadYAMLUnknownField(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("jobs:\n  - id: 1\n    salary: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestCredentialList(t *testing.T) {
	j := Job{Credentials: []Credential{CredentialCDL, CredentialPMP}}
	assert.Equal(t, "CDL, PMP", j.CredentialList())
	assert.Equal(t, "", Job{}.CredentialList())
}
