package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yml
var sampleYAML []byte

type catalogFile struct {
	Jobs []Job `yaml:"jobs"`
}

// DecodeYAML reads a catalog file without validating it.
func DecodeYAML(r io.Reader) ([]Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.Jobs, nil
}

// LoadYAML decodes and validates a catalog file.
func LoadYAML(r io.Reader) (*Catalog, error) {
	jobs, err := DecodeYAML(r)
	if err != nil {
		return nil, err
	}
	return New(jobs)
}

// SampleJobs returns the bundled postings.
func SampleJobs() []Job {
	jobs, err := DecodeYAML(bytes.NewReader(sampleYAML))
	if err != nil {
		panic(err)
	}
	return jobs
}

func Sample() *Catalog {
	c, err := New(SampleJobs())
	if err != nil {
		panic(err)
	}
	return c
}
