package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSpec_ParsesAndValidates(t *testing.T) {
	path := writeSpecFile(t, `
arrival_rates: [0.5, 0.95]
service_rate: 1.0
fraction_start: 0.0
fraction_stop: 0.95
fraction_steps: 20
horizon: 50000
warmup: 5000
seed: 42
replications: 3
threshold_multiple: 2.5
`)

	spec, err := LoadSpec(path)
	assert.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.95}, spec.ArrivalRates)
	assert.Equal(t, 20, spec.FractionSteps)
	assert.Equal(t, 3, spec.Replications)
}

func TestLoadSpec_MissingFile(t *testing.T) {
	_, err := LoadSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "reading sweep spec")
}

func TestLoadSpec_MalformedYAML(t *testing.T) {
	path := writeSpecFile(t, "arrival_rates: [0.5")
	_, err := LoadSpec(path)
	assert.ErrorContains(t, err, "parsing sweep spec")
}

func TestSpecValidate_Errors(t *testing.T) {
	valid := Spec{
		ArrivalRates:  []float64{0.5},
		ServiceRate:   1.0,
		FractionStop:  0.95,
		FractionSteps: 20,
		Horizon:       50000,
		Warmup:        5000,
	}
	assert.NoError(t, valid.Validate())

	s := valid
	s.ArrivalRates = nil
	assert.ErrorContains(t, s.Validate(), "arrival_rates")

	s = valid
	s.FractionSteps = 0
	assert.ErrorContains(t, s.Validate(), "fraction_steps")

	s = valid
	s.FractionStart = 1.0
	assert.ErrorContains(t, s.Validate(), "fraction_start")

	s = valid
	s.FractionStart = 0.5
	s.FractionStop = 0.2
	assert.ErrorContains(t, s.Validate(), "fraction_stop")
}

func TestSpecGrid_AppliesDefaults(t *testing.T) {
	spec := Spec{
		ArrivalRates:  []float64{0.5},
		ServiceRate:   1.0,
		FractionStop:  0.9,
		FractionSteps: 10,
		Horizon:       1000,
		Warmup:        100,
		Seed:          7,
	}

	grid := spec.Grid()
	assert.Equal(t, 1, grid.Replications, "zero replications defaults to 1")
	assert.Len(t, grid.Fractions, 10)
	assert.Equal(t, 0.0, grid.Fractions[0])
	assert.InDelta(t, 0.9, grid.Fractions[9], 1e-12)
}
