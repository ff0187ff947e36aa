package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/facility-sim/facility-sim/sim"
)

// FacilitySpec is the on-disk YAML schema for one facility. The rate
// parameters live in a nested distribution block so a facility file reads
// as "this facility, open this long, with this arrival process".
//
// Example:
//
//	name: westside-clinic
//	hours_open: 8
//	max_population: 1000
//	distribution:
//	  arrival_rate: 1.2
//	  service_rate: 0.5
type FacilitySpec struct {
	Name          string           `yaml:"name"`
	HoursOpen     int              `yaml:"hours_open"`
	MaxPopulation int              `yaml:"max_population"`
	Distribution  DistributionSpec `yaml:"distribution"`
}

// DistributionSpec holds the exponential process rates, per minute.
type DistributionSpec struct {
	ArrivalRate float64 `yaml:"arrival_rate"`
	ServiceRate float64 `yaml:"service_rate"`
}

// Validate checks that all fields in the spec are usable. The sim package
// documents positive rates and a positive generation budget as caller
// preconditions; this is where they are enforced.
func (s *FacilitySpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.HoursOpen <= 0 {
		return fmt.Errorf("hours_open must be positive, got %d", s.HoursOpen)
	}
	if s.MaxPopulation <= 0 {
		return fmt.Errorf("max_population must be positive, got %d", s.MaxPopulation)
	}
	if s.Distribution.ArrivalRate <= 0 {
		return fmt.Errorf("distribution.arrival_rate must be positive, got %f", s.Distribution.ArrivalRate)
	}
	if s.Distribution.ServiceRate <= 0 {
		return fmt.Errorf("distribution.service_rate must be positive, got %f", s.Distribution.ServiceRate)
	}
	return nil
}

// Config converts a validated spec into the sim package's config record.
func (s *FacilitySpec) Config() sim.FacilityConfig {
	return sim.NewFacilityConfig(s.Name, s.HoursOpen, s.MaxPopulation,
		s.Distribution.ArrivalRate, s.Distribution.ServiceRate)
}

// LoadFacilitySpec reads and validates a facility YAML file.
// Unknown fields are rejected to catch typos in rate names.
func LoadFacilitySpec(path string) (*FacilitySpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading facility spec: %w", err)
	}
	var spec FacilitySpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing facility spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid facility spec %s: %w", path, err)
	}
	return &spec, nil
}
