// SPDX-License-Identifier: MIT

package walker

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/decolab/perfusion"
	"github.com/katalvlaran/decolab/pressure"
	"github.com/katalvlaran/decolab/profile"
	"github.com/katalvlaran/decolab/tissue"
)

// CalculateTissueLoading integrates the tissue pressures over p followed by
// surfaceInterval minutes at the surface.
//
// Errors:
//   - ErrInvalidProfile     : fewer than two waypoints or non-increasing times.
//   - ErrBadSurfaceInterval : surfaceInterval outside [0, profile.MaxDuration].
//   - profile.ErrInvalidGas, profile.ErrDuplicateGas : bad WithGases table.
//   - ErrProfileTooLong     : more than MaxPoints grid points at the chosen step.
//
// Unknown gas ids fall back to the first gas and are logged at WARN.
func CalculateTissueLoading(p profile.Profile, surfaceInterval float64, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, walkerErrorf(MethodCalculate, err)
	}
	if surfaceInterval < 0 || surfaceInterval > profile.MaxDuration || math.IsNaN(surfaceInterval) {
		return nil, walkerErrorf(MethodCalculate, ErrBadSurfaceInterval)
	}
	cfg := gatherOptions(opts)
	if err := profile.ValidateGases(cfg.Gases); err != nil {
		return nil, walkerErrorf(MethodCalculate, err)
	}
	total := p.EndTime() + surfaceInterval
	// negated so a NaN or Inf estimate also fails; t+step stays above t
	// whenever the estimate fits
	if points := total/cfg.Step + float64(len(p)) + 1; !(points <= MaxPoints) {
		return nil, walkerErrorf(MethodCalculate, ErrProfileTooLong)
	}

	for _, id := range profile.UnknownGasIDs(p, cfg.Gases) {
		cfg.Logger.Warn("unknown gas reference, falling back to first gas",
			slog.String("gas_id", id),
			slog.String("fallback", cfg.Gases[0].ID))
	}

	w := &walk{
		profile: p,
		gases:   cfg.Gases,
		table:   cfg.Table,
		step:    cfg.Step,
		logger:  cfg.Logger,
		total:   total,
	}

	return w.run(cfg.SurfaceFraction), nil
}

// walk is the state of one calculation. It is never shared.
type walk struct {
	profile profile.Profile
	gases   []profile.Gas
	table   *tissue.Table
	step    float64
	logger  *slog.Logger
	total   float64
}

func (w *walk) run(surfaceFraction float64) *Result {
	if surfaceFraction < 0 {
		g, _ := profile.GasAt(w.profile, w.gases, 0)
		surfaceFraction = g.N2
	}
	state := tissue.Fill(pressure.InitialTissue(surfaceFraction))

	res := newResult(int(w.total/w.step)+len(w.profile)+2, w.table)
	var prev *profile.Gas
	t := 0.0
	for {
		depth := profile.DepthAt(w.profile, t)
		gas, _ := profile.GasAt(w.profile, w.gases, t)
		ambient := pressure.Ambient(depth)
		res.record(t, depth, ambient, pressure.Alveolar(ambient, gas.N2), gas.Label(), state)

		if prev != nil && *prev != gas {
			res.GasSwitches = append(res.GasSwitches, GasSwitch{
				Time:  t,
				Depth: depth,
				From:  prev.Label(),
				To:    gas.Label(),
			})
		}
		prev = &gas

		if t >= w.total {
			break
		}
		next := w.nextTime(t)
		state = w.advance(state, t, next)
		t = next
	}

	return res
}

// nextTime returns t+step clamped to the next waypoint time and to the end
// of the surface interval.
func (w *walk) nextTime(t float64) float64 {
	next := t + w.step
	if b, ok := w.profile.NextBoundary(t); ok && next > b-timeEpsilon {
		next = b
	}
	if next > w.total-timeEpsilon {
		next = w.total
	}

	return next
}

// advance integrates every compartment from t0 to t1. Compartments are
// independent, so each one is a single closed-form update.
func (w *walk) advance(s tissue.State, t0, t1 float64) tissue.State {
	dt := t1 - t0
	amb0 := pressure.Ambient(profile.DepthAt(w.profile, t0))
	amb1 := pressure.Ambient(profile.DepthAt(w.profile, t1))
	fraction := w.stepFraction(t0, t1)

	alv0 := pressure.Alveolar(amb0, fraction)
	rate := (amb1 - amb0) / dt * fraction
	for i := range s {
		s[i] = perfusion.Step(s[i], alv0, rate, dt, w.table.At(i).HalfTime)
	}

	return s
}

// stepFraction is the inert fraction breathed over (t0, t1). If a switch
// falls strictly inside the step the endpoint fractions are averaged.
// Breakpoint clamping keeps switches on step boundaries, so the averaging
// branch only runs for steps built outside nextTime.
func (w *walk) stepFraction(t0, t1 float64) float64 {
	start, _ := profile.GasAt(w.profile, w.gases, t0)
	end, _ := profile.GasBefore(w.profile, w.gases, t1)
	if start == end {
		return start.N2
	}
	w.logger.Debug("gas switch inside integration step, averaging fractions",
		slog.Float64("from_time", t0),
		slog.Float64("to_time", t1),
		slog.String("from_gas", start.ID),
		slog.String("to_gas", end.ID))

	return (start.N2 + end.N2) / 2
}
