package sim

import "fmt"

// Config fixes all parameters of one simulation run. It is immutable once
// the run starts. Rates are customers per minute; horizon and warmup are
// simulated minutes.
type Config struct {
	ArrivalRate      float64 `yaml:"arrival_rate"`      // λ
	ServiceRate      float64 `yaml:"service_rate"`      // μ
	PriorityFraction float64 `yaml:"priority_fraction"` // f in [0, 1), Bernoulli per arrival
	Horizon          float64 `yaml:"horizon"`           // total simulated minutes
	Warmup           float64 `yaml:"warmup"`            // initial minutes excluded from statistics
	Seed             int64   `yaml:"seed"`
}

// Validate checks the configuration before any event is scheduled.
// Invalid values fail fast; nothing is silently clamped.
func (c Config) Validate() error {
	if c.ArrivalRate <= 0 {
		return fmt.Errorf("arrival_rate must be > 0, got %g", c.ArrivalRate)
	}
	if c.ServiceRate <= 0 {
		return fmt.Errorf("service_rate must be > 0, got %g", c.ServiceRate)
	}
	if c.PriorityFraction < 0 || c.PriorityFraction >= 1 {
		return fmt.Errorf("priority_fraction must be in [0, 1), got %g", c.PriorityFraction)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be > 0, got %g", c.Horizon)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must be >= 0, got %g", c.Warmup)
	}
	if c.Warmup >= c.Horizon {
		return fmt.Errorf("warmup (%g) must be less than horizon (%g)", c.Warmup, c.Horizon)
	}
	return nil
}

// Utilization returns the offered load ρ = λ/μ.
func (c Config) Utilization() float64 {
	return c.ArrivalRate / c.ServiceRate
}
