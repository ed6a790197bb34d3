package pressure_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/decolab/pressure"
)

const tol = 1e-12

func TestAmbient_KnownDepths(t *testing.T) {
	assert.Equal(t, 1.0, pressure.Ambient(0), "surface must be exactly 1 bar")
	assert.InDelta(t, 5.0, pressure.Ambient(40), tol)
	assert.InDelta(t, 2.0, pressure.Ambient(10), tol)
}

func TestAmbient_Linear(t *testing.T) {
	// equal depth increments give equal pressure increments
	for _, d := range []float64{0, 3, 9.5, 27, 60} {
		delta := pressure.Ambient(d+1) - pressure.Ambient(d)
		assert.InDelta(t, pressure.PressurePerMeter, delta, tol, "depth %v", d)
	}
}

func TestDepth_InvertsAmbient(t *testing.T) {
	for _, d := range []float64{0, 3, 6, 21.7, 40} {
		assert.InDelta(t, d, pressure.Depth(pressure.Ambient(d)), 1e-9)
	}
	assert.Equal(t, 0.0, pressure.Depth(0.8), "sub-surface pressure clamps to 0 m")
}

func TestAlveolar(t *testing.T) {
	assert.InDelta(t, (5.0-0.0627)*0.79, pressure.Alveolar(5.0, 0.79), tol)
	assert.InDelta(t, 0.0, pressure.Alveolar(3.0, 0), tol, "no inert gas, no partial pressure")
	assert.Equal(t, pressure.Alveolar(2.0, 0.79), pressure.AlveolarN2(2.0))
	assert.Equal(t, pressure.Alveolar(2.0, 0.64), pressure.AlveolarN2(2.0, 0.64))
}

func TestInitialTissue(t *testing.T) {
	assert.InDelta(t, 0.9373*0.79, pressure.InitialTissue(pressure.AirN2Fraction), tol)
}
