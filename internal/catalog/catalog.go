// Package catalog holds the job postings, the enumerated filter options and the
// degree-type lookup table. A Catalog is built once at start and never mutated.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidJob = errors.New("invalid job posting")

type Job struct {
	ID          int          `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Company     string       `json:"company" yaml:"company"`
	Location    string       `json:"location" yaml:"location"`
	Industry    Industry     `json:"industry" yaml:"industry"`
	DegreeLevel DegreeLevel  `json:"degreeLevel,omitempty" yaml:"degree_level"`
	DegreeType  DegreeType   `json:"degreeType,omitempty" yaml:"degree_type"`
	Experience  Experience   `json:"experience" yaml:"experience"`
	Credentials []Credential `json:"credentials" yaml:"credentials"`
	Description string       `json:"description" yaml:"description"`
}

func (j Job) HasCredential(c Credential) bool {
	for _, x := range j.Credentials {
		if x == c {
			return true
		}
	}
	return false
}

// CredentialList joins the posting's credentials for display on a card.
func (j Job) CredentialList() string {
	parts := make([]string, 0, len(j.Credentials))
	for _, c := range j.Credentials {
		parts = append(parts, string(c))
	}
	return strings.Join(parts, ", ")
}

type Catalog struct {
	jobs []Job
	byID map[int]int
}

// New validates jobs and returns a catalog preserving their order. All
// violations are reported together.
func New(jobs []Job) (*Catalog, error) {
	c := &Catalog{
		jobs: make([]Job, 0, len(jobs)),
		byID: make(map[int]int, len(jobs)),
	}

	var errs []error
	for i, j := range jobs {
		j = normalizeJob(j)
		if err := validateJob(j); err != nil {
			errs = append(errs, fmt.Errorf("jobs[%d]: %w", i, err))
			continue
		}
		if _, dup := c.byID[j.ID]; dup {
			errs = append(errs, fmt.Errorf("jobs[%d]: duplicate id %d: %w", i, j.ID, ErrInvalidJob))
			continue
		}
		c.byID[j.ID] = len(c.jobs)
		c.jobs = append(c.jobs, j)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return c, nil
}

// Jobs returns the postings in catalog order. The slice is a copy; the
// postings' credential slices are shared and must be treated as read-only.
func (c *Catalog) Jobs() []Job {
	return append([]Job(nil), c.jobs...)
}

func (c *Catalog) Len() int { return len(c.jobs) }

func (c *Catalog) ByID(id int) (Job, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Job{}, false
	}
	return c.jobs[i], true
}

func normalizeJob(j Job) Job {
	j.Title = cleanText(j.Title)
	j.Company = cleanText(j.Company)
	j.Location = normalizeLocation(j.Location)
	j.Industry = Industry(clean(string(j.Industry)))
	j.DegreeLevel = DegreeLevel(clean(string(j.DegreeLevel)))
	j.DegreeType = DegreeType(clean(string(j.DegreeType)))
	j.Experience = Experience(clean(string(j.Experience)))
	creds := make([]Credential, 0, len(j.Credentials))
	for _, c := range j.Credentials {
		// Postings may spell a credential by its label; store the code.
		if code, err := ParseCredential(string(c)); err == nil {
			c = code
		}
		creds = append(creds, Credential(clean(string(c))))
	}
	j.Credentials = creds
	j.Description = cleanText(j.Description)
	return j
}

func validateJob(j Job) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("id %d: %s: %w", j.ID, fmt.Sprintf(format, args...), ErrInvalidJob)
	}

	if j.ID <= 0 {
		return fail("id must be positive")
	}
	if j.Title == "" {
		return fail("title is required")
	}
	if !isIndustry(j.Industry) {
		return fail("industry %q is not a known industry", j.Industry)
	}

	switch {
	case j.DegreeLevel == "" && j.DegreeType != "":
		return fail("degree type %q without a degree level", j.DegreeType)
	case j.DegreeLevel != "" && !isDegreeLevel(j.DegreeLevel):
		return fail("degree level %q is not a known level", j.DegreeLevel)
	case j.DegreeLevel != "" && !offersDegreeType(j.DegreeLevel, j.DegreeType):
		return fail("degree type %q is not offered for %q", j.DegreeType, j.DegreeLevel)
	}

	if j.Experience == "" || string(j.Experience) == All {
		return fail("experience %q is not a bucket label", j.Experience)
	}

	seen := make(map[Credential]bool, len(j.Credentials))
	for _, c := range j.Credentials {
		if !isCredentialCode(c) {
			return fail("credential %q is not a known code", c)
		}
		if seen[c] {
			return fail("credential %q listed twice", c)
		}
		seen[c] = true
	}
	return nil
}
