package walker_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decolab/pressure"
	"github.com/katalvlaran/decolab/profile"
	"github.com/katalvlaran/decolab/tissue"
	"github.com/katalvlaran/decolab/walker"
)

var tableC = tissue.MustTable(tissue.VariantC)

// referenceDive is a 40 m / 20 min air dive with staged ascent.
func referenceDive() profile.Profile {
	return profile.Profile{
		{Time: 0, Depth: 0},
		{Time: 2, Depth: 40},
		{Time: 22, Depth: 40},
		{Time: 26, Depth: 9},
		{Time: 29, Depth: 9},
		{Time: 30, Depth: 6},
		{Time: 35, Depth: 6},
		{Time: 36, Depth: 3},
		{Time: 41, Depth: 3},
		{Time: 42, Depth: 0},
	}
}

func calc(t *testing.T, p profile.Profile, si float64, opts ...walker.Option) *walker.Result {
	t.Helper()
	opts = append([]walker.Option{walker.WithTable(tableC)}, opts...)
	res, err := walker.CalculateTissueLoading(p, si, opts...)
	require.NoError(t, err)

	return res
}

func TestCalculate_InvalidProfile(t *testing.T) {
	_, err := walker.CalculateTissueLoading(nil, 0)
	assert.ErrorIs(t, err, walker.ErrInvalidProfile)

	_, err = walker.CalculateTissueLoading(profile.Profile{{Time: 0, Depth: 0}}, 10)
	assert.ErrorIs(t, err, walker.ErrInvalidProfile)

	_, err = walker.CalculateTissueLoading(profile.Profile{{Time: 0}, {Time: 3, Depth: 9}, {Time: 3, Depth: 0}}, 10)
	assert.ErrorIs(t, err, profile.ErrInvalidProfile)
}

func TestCalculate_BadSurfaceInterval(t *testing.T) {
	for _, si := range []float64{-1, math.NaN(), math.Inf(1), 1e300, profile.MaxDuration + 1} {
		_, err := walker.CalculateTissueLoading(referenceDive(), si)
		assert.ErrorIs(t, err, walker.ErrBadSurfaceInterval, "surface interval %v", si)
	}

	_, err := walker.CalculateTissueLoading(profile.Profile{{Time: 0}, {Time: 2, Depth: 10}}, profile.MaxDuration)
	assert.NoError(t, err)
}

func TestCalculate_HugeWaypointTime(t *testing.T) {
	_, err := walker.CalculateTissueLoading(profile.Profile{{Time: 0}, {Time: 1e9, Depth: 10}}, 0)
	assert.ErrorIs(t, err, walker.ErrInvalidProfile)
}

func TestCalculate_StepTooSmall(t *testing.T) {
	short := profile.Profile{{Time: 0}, {Time: 2, Depth: 10}}

	_, err := walker.CalculateTissueLoading(short, 0, walker.WithStep(1e-300))
	assert.ErrorIs(t, err, walker.ErrProfileTooLong)

	_, err = walker.CalculateTissueLoading(short, 0, walker.WithStep(math.SmallestNonzeroFloat64))
	assert.ErrorIs(t, err, walker.ErrProfileTooLong)

	_, err = walker.CalculateTissueLoading(referenceDive(), 200, walker.WithStep(1e-4))
	assert.ErrorIs(t, err, walker.ErrProfileTooLong)

	_, err = walker.CalculateTissueLoading(short, 0, walker.WithStep(1.0/60))
	assert.NoError(t, err)
}

func TestCalculate_InvalidGases(t *testing.T) {
	bad := []profile.Gas{{ID: "hyp", O2: 0.1, N2: 1.5}}
	_, err := walker.CalculateTissueLoading(referenceDive(), 0, walker.WithGases(bad))
	assert.ErrorIs(t, err, profile.ErrInvalidGas)
	assert.Contains(t, err.Error(), walker.MethodCalculate)

	dup := []profile.Gas{{ID: "a", O2: 0.21, N2: 0.79}, {ID: "a", O2: 0.32, N2: 0.68}}
	_, err = walker.CalculateTissueLoading(referenceDive(), 0, walker.WithGases(dup))
	assert.ErrorIs(t, err, profile.ErrDuplicateGas)
}

func TestCalculate_ReferenceDive(t *testing.T) {
	res := calc(t, referenceDive(), 10)

	n := res.Len()
	require.Greater(t, n, 0)
	assert.Len(t, res.DepthPoints, n)
	assert.Len(t, res.AmbientPressures, n)
	assert.Len(t, res.AlveolarN2Pressures, n)
	assert.Len(t, res.GasNames, n)
	assert.Len(t, res.Pressures, n)

	for i := 1; i < n; i++ {
		require.Greater(t, res.TimePoints[i], res.TimePoints[i-1], "index %d", i)
	}
	for _, bp := range []float64{2, 22, 26, 29, 30, 35, 36, 41, 42} {
		assert.Contains(t, res.TimePoints, bp)
	}
	assert.Equal(t, 0.0, res.TimePoints[0])
	assert.Equal(t, 52.0, res.TimePoints[n-1], "ends after the surface interval")

	// the 5-minute compartment peaks at or just after the end of the bottom
	peakT, peakP := res.PeakOf(0)
	assert.GreaterOrEqual(t, peakT, 22.0)
	assert.LessOrEqual(t, peakT, 23.0)
	assert.LessOrEqual(t, peakP, pressure.Alveolar(pressure.Ambient(40), pressure.AirN2Fraction))
	assert.Greater(t, peakP, 3.5)
}

func TestCalculate_DepthFollowsProfile(t *testing.T) {
	p := referenceDive()
	res := calc(t, p, 10)
	for i, tp := range res.TimePoints {
		assert.InDelta(t, profile.DepthAt(p, tp), res.DepthPoints[i], 1e-12)
		assert.InDelta(t, pressure.Ambient(res.DepthPoints[i]), res.AmbientPressures[i], 1e-12)
	}
}

func TestCalculate_SeedsSurfaceEquilibrium(t *testing.T) {
	res := calc(t, referenceDive(), 0)
	want := pressure.InitialTissue(pressure.AirN2Fraction)
	for _, p := range res.Pressures[0] {
		assert.Equal(t, want, p)
	}
}

func TestCalculate_UniformGridInsideSegments(t *testing.T) {
	res := calc(t, profile.Profile{{Time: 0, Depth: 0}, {Time: 1, Depth: 10}, {Time: 11, Depth: 10}, {Time: 12, Depth: 0}}, 0)
	// 6 points per minute plus the final point
	assert.Equal(t, 73, res.Len())
	for i := 1; i < res.Len(); i++ {
		assert.InDelta(t, walker.DefaultStep, res.TimePoints[i]-res.TimePoints[i-1], 1e-9)
	}
}

func TestCalculate_ShortStepAtBoundary(t *testing.T) {
	// 0.25 min waypoint spacing is not a multiple of the 10 s grid
	p := profile.Profile{{Time: 0, Depth: 0}, {Time: 0.25, Depth: 3}, {Time: 1, Depth: 3}}
	res := calc(t, p, 0)
	assert.Equal(t, []float64{0, 1.0 / 6, 0.25}, res.TimePoints[:3])
	assert.Equal(t, 1.0, res.TimePoints[res.Len()-1])
}

func TestCalculate_SurfaceIntervalAfterNonSurfaceEnd(t *testing.T) {
	p := profile.Profile{{Time: 0, Depth: 0}, {Time: 1, Depth: 10}, {Time: 10, Depth: 10}}
	res := calc(t, p, 2)
	idx := indexOf(res.TimePoints, 10)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 10.0, res.DepthPoints[idx])
	for i := idx + 1; i < res.Len(); i++ {
		assert.Equal(t, 0.0, res.DepthPoints[i])
	}
	assert.Equal(t, 12.0, res.TimePoints[res.Len()-1])
}

func TestCalculate_LevelDiveApproachesAlveolar(t *testing.T) {
	p := profile.Profile{{Time: 0, Depth: 30}, {Time: 200, Depth: 30}}
	res := calc(t, p, 0, walker.WithStep(1))
	alv := pressure.Alveolar(pressure.Ambient(30), pressure.AirN2Fraction)
	last := res.Pressures[res.Len()-1]
	// 200 min is 40 half-times of the fastest compartment
	assert.InDelta(t, alv, last[0], 1e-6)
	for i := 1; i < tissue.Count; i++ {
		assert.Less(t, last[i], last[i-1], "slower compartments lag behind")
		assert.Less(t, last[i], alv)
	}
}

func TestCalculate_FastCompartmentsChangeMore(t *testing.T) {
	res := calc(t, referenceDive(), 0)
	idx := indexOf(res.TimePoints, 22)
	require.GreaterOrEqual(t, idx, 0)
	start := res.Pressures[0]
	atBottom := res.Pressures[idx]
	for i := 1; i < tissue.Count; i++ {
		assert.Greater(t, atBottom[i-1]-start[i-1], atBottom[i]-start[i], "compartment %d", i+1)
	}
}

func TestCalculate_GasSwitches(t *testing.T) {
	gases := []profile.Gas{profile.Air(), {ID: "ean50", Name: "EAN50", O2: 0.5, N2: 0.5}}
	p := profile.Profile{
		{Time: 0, Depth: 0},
		{Time: 2, Depth: 30},
		{Time: 20, Depth: 30},
		{Time: 23, Depth: 21, GasID: "ean50"},
		{Time: 30, Depth: 0},
	}
	res := calc(t, p, 5, walker.WithGases(gases))

	require.Len(t, res.GasSwitches, 1)
	sw := res.GasSwitches[0]
	assert.Equal(t, walker.GasSwitch{Time: 23, Depth: 21, From: "Air", To: "EAN50"}, sw)

	idx := indexOf(res.TimePoints, 23)
	assert.Equal(t, "Air", res.GasNames[idx-1])
	assert.Equal(t, "EAN50", res.GasNames[idx])
	assert.InDelta(t, pressure.Alveolar(pressure.Ambient(21), 0.5), res.AlveolarN2Pressures[idx], 1e-12)
	assert.Equal(t, "EAN50", res.GasNames[res.Len()-1], "gas stays in effect at the surface")
}

func TestCalculate_UnknownGasFallsBackAndWarns(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := profile.Profile{{Time: 0, Depth: 0, GasID: "trimix"}, {Time: 2, Depth: 20}, {Time: 5, Depth: 0}}

	res := calc(t, p, 0, walker.WithLogger(logger))
	assert.Equal(t, "Air", res.GasNames[0])
	assert.Contains(t, buf.String(), "unknown gas reference")
	assert.Contains(t, buf.String(), "trimix")
}

func TestCalculate_SurfaceFractionOverride(t *testing.T) {
	gases := []profile.Gas{{ID: "ean32", Name: "EAN32", O2: 0.32, N2: 0.68}}
	p := profile.Profile{{Time: 0, Depth: 0}, {Time: 2, Depth: 20}}

	byGas := calc(t, p, 0, walker.WithGases(gases))
	assert.Equal(t, pressure.InitialTissue(0.68), byGas.Pressures[0][0])

	byAir := calc(t, p, 0, walker.WithGases(gases), walker.WithSurfaceFraction(pressure.AirN2Fraction))
	assert.Equal(t, pressure.InitialTissue(0.79), byAir.Pressures[0][0])
}

func TestCalculate_UsesActiveTableByDefault(t *testing.T) {
	res, err := walker.CalculateTissueLoading(referenceDive(), 0)
	require.NoError(t, err)
	assert.Same(t, tissue.Active(), res.Table())
	assert.Equal(t, tissue.Active().Variant().String(), res.Variant)
}

func TestResult_CeilingsAndFirstStop(t *testing.T) {
	res := calc(t, referenceDive(), 10)

	ceilings := res.Ceilings(0.3)
	require.Len(t, ceilings, res.Len())
	assert.Equal(t, 0.0, ceilings[0].Depth)

	at, worst := res.MaxCeiling(0.3)
	assert.Greater(t, worst.Depth, 0.0, "a 40 m / 20 min dive carries a deco obligation at GF 30")
	assert.Greater(t, at, 2.0)

	idx := indexOf(res.TimePoints, 22)
	fs, err := res.FirstStop(idx, 0.3, 3)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, fs.Depth, ceilings[idx].Depth)
	assert.Equal(t, 0.0, mod(fs.Depth, 3))

	ss := res.Supersaturation()
	assert.Len(t, ss, res.Len())
	assert.Less(t, ss[0].GF, 0.0)
}

func TestResult_Compartment(t *testing.T) {
	res := calc(t, referenceDive(), 0)
	col := res.Compartment(15)
	require.Len(t, col, res.Len())
	assert.Equal(t, res.Pressures[7][15], col[7])
}

func TestCalculateSetup(t *testing.T) {
	setup := &profile.DiveSetup{
		Gases: []profile.Gas{profile.Air()},
		Dives: []profile.Dive{
			{Name: "deep", Waypoints: referenceDive()},
			{Name: "shallow", Waypoints: profile.Profile{{Time: 0}, {Time: 2, Depth: 12}, {Time: 40, Depth: 12}, {Time: 42}}},
		},
		GFLow: 0.3, GFHigh: 0.85, SurfaceInterval: 30,
	}
	results, err := walker.CalculateSetup(context.Background(), setup, walker.WithTable(tableC))
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 72.0, results[0].TimePoints[results[0].Len()-1])
	assert.Equal(t, 72.0, results[1].TimePoints[results[1].Len()-1])
	assert.Same(t, results[0].Table(), results[1].Table())
	assert.Same(t, tableC, results[0].Table())
}

func TestCalculateSetup_Errors(t *testing.T) {
	_, err := walker.CalculateSetup(context.Background(), nil)
	assert.ErrorIs(t, err, walker.ErrNilSetup)

	bad := &profile.DiveSetup{Dives: []profile.Dive{{Waypoints: profile.Profile{{Time: 0}}}}}
	_, err = walker.CalculateSetup(context.Background(), bad)
	assert.ErrorIs(t, err, profile.ErrInvalidProfile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	ok := &profile.DiveSetup{Dives: []profile.Dive{{Waypoints: referenceDive()}}}
	_, err = walker.CalculateSetup(ctx, ok)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWithStep_Panics(t *testing.T) {
	assert.Panics(t, func() { walker.WithStep(0) })
	assert.Panics(t, func() { walker.WithStep(-1) })
	assert.Panics(t, func() { walker.WithSurfaceFraction(1.2) })
	assert.Panics(t, func() { walker.WithTable(nil) })
	assert.Panics(t, func() { walker.WithLogger(nil) })
	assert.NotPanics(t, func() { walker.WithStepSeconds(30) })
}

func indexOf(xs []float64, v float64) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}

	return -1
}

func mod(a, b float64) float64 {
	return a - b*float64(int(a/b))
}
