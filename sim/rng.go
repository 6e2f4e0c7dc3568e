package sim

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemArrival draws interarrival durations.
	SubsystemArrival = "arrival"

	// SubsystemService draws service durations.
	SubsystemService = "service"

	// SubsystemClass draws the per-arrival Bernoulli class trial.
	SubsystemClass = "class"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem,
// so that e.g. the class trial of one arrival never perturbs the service
// duration drawn for another customer.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. Each Simulation owns exactly one instance.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	derivedSeed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// === VariateSource ===

// VariateSource draws the exponentially distributed durations that make the
// system an M/M/1 queue, plus the Bernoulli class trial. All durations are
// strictly positive.
type VariateSource struct {
	arrival *rand.Rand
	service *rand.Rand
	class   *rand.Rand

	arrivalRate float64 // λ, customers per minute
	serviceRate float64 // μ, customers per minute
	fraction    float64 // f, probability an arrival is ClassPriority
}

// NewVariateSource creates a VariateSource backed by the given RNG.
func NewVariateSource(rng *PartitionedRNG, arrivalRate, serviceRate, fraction float64) *VariateSource {
	return &VariateSource{
		arrival:     rng.ForSubsystem(SubsystemArrival),
		service:     rng.ForSubsystem(SubsystemService),
		class:       rng.ForSubsystem(SubsystemClass),
		arrivalRate: arrivalRate,
		serviceRate: serviceRate,
		fraction:    fraction,
	}
}

// NextInterarrival returns the duration until the next arrival, in minutes.
func (v *VariateSource) NextInterarrival() float64 {
	return exponential(v.arrival, v.arrivalRate)
}

// NextServiceTime returns the service duration for one customer, in minutes.
func (v *VariateSource) NextServiceTime() float64 {
	return exponential(v.service, v.serviceRate)
}

// NextClass runs the Bernoulli trial classifying a new arrival. The
// priority fraction is realized in expectation, not as an exact ratio.
func (v *VariateSource) NextClass() Class {
	if v.class.Float64() < v.fraction {
		return ClassPriority
	}
	return ClassRegular
}

// exponential draws from Exp(rate). ExpFloat64 has mean 1; dividing by the
// rate gives mean 1/rate. The floor keeps every draw strictly positive.
func exponential(rng *rand.Rand, rate float64) float64 {
	d := rng.ExpFloat64() / rate
	if d <= 0 {
		return math.SmallestNonzeroFloat64
	}
	return d
}
