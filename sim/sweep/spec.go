package sweep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec is the YAML sweep specification consumed by the sweep command.
// Zero-valued optional fields fall back to the documented defaults.
type Spec struct {
	ArrivalRates      []float64 `yaml:"arrival_rates"`
	ServiceRate       float64   `yaml:"service_rate"`
	FractionStart     float64   `yaml:"fraction_start"`
	FractionStop      float64   `yaml:"fraction_stop"`
	FractionSteps     int       `yaml:"fraction_steps"`
	Horizon           float64   `yaml:"horizon"`
	Warmup            float64   `yaml:"warmup"`
	Seed              int64     `yaml:"seed"`
	Replications      int       `yaml:"replications,omitempty"`       // 0 = 1 replication
	ThresholdMultiple float64   `yaml:"threshold_multiple,omitempty"` // 0 = DefaultThresholdMultiple
}

// LoadSpec reads and validates a sweep specification file.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep spec: %w", err)
	}

	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing sweep spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep spec: %w", err)
	}
	return &spec, nil
}

// Validate checks the spec's own fields; run parameters are re-checked by
// Grid and sim.Config before anything executes.
func (s *Spec) Validate() error {
	if len(s.ArrivalRates) == 0 {
		return fmt.Errorf("arrival_rates must not be empty")
	}
	if s.FractionSteps < 1 {
		return fmt.Errorf("fraction_steps must be >= 1, got %d", s.FractionSteps)
	}
	if s.FractionStart < 0 || s.FractionStart >= 1 {
		return fmt.Errorf("fraction_start must be in [0, 1), got %g", s.FractionStart)
	}
	if s.FractionStop < s.FractionStart || s.FractionStop >= 1 {
		return fmt.Errorf("fraction_stop must be in [fraction_start, 1), got %g", s.FractionStop)
	}
	if s.Replications < 0 {
		return fmt.Errorf("replications must be >= 0, got %d", s.Replications)
	}
	if s.ThresholdMultiple < 0 {
		return fmt.Errorf("threshold_multiple must be >= 0, got %g", s.ThresholdMultiple)
	}
	return nil
}

// Grid expands the spec into the concrete sweep grid.
func (s *Spec) Grid() Grid {
	replications := s.Replications
	if replications == 0 {
		replications = 1
	}
	return Grid{
		ArrivalRates: s.ArrivalRates,
		Fractions:    Linspace(s.FractionStart, s.FractionStop, s.FractionSteps),
		ServiceRate:  s.ServiceRate,
		Horizon:      s.Horizon,
		Warmup:       s.Warmup,
		Seed:         s.Seed,
		Replications: replications,
	}
}

// Policy returns the recommendation policy the spec configures.
func (s *Spec) Policy() Policy {
	return Policy{ThresholdMultiple: s.ThresholdMultiple}
}
