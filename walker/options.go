// SPDX-License-Identifier: MIT

package walker

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/decolab/profile"
	"github.com/katalvlaran/decolab/tissue"
)

// DefaultStep is the grid spacing in minutes (10 seconds).
const DefaultStep = 1.0 / 6

// MaxPoints caps the grid points of one calculation (about 121 days at
// the default step).
const MaxPoints = 1 << 20

// timeEpsilon snaps a step onto a boundary it would otherwise miss by
// float accumulation alone.
const timeEpsilon = 1e-9

// Options configures a calculation.
//
// Step            : grid spacing, minutes (> 0).
// Gases           : gas table; empty means air only.
// Table           : compartment snapshot; nil means tissue.Active() at call time.
// Logger          : diagnostics sink (unknown gas ids, mid-step switches).
// SurfaceFraction : inert fraction used to seed the tissues; negative
//
//	means "the gas active at t=0".
type Options struct {
	Step            float64
	Gases           []profile.Gas
	Table           *tissue.Table
	Logger          *slog.Logger
	SurfaceFraction float64
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// DefaultOptions returns the zero-configuration options.
func DefaultOptions() Options {
	return Options{
		Step:            DefaultStep,
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		SurfaceFraction: -1,
	}
}

// WithStep sets the grid spacing in minutes.
func WithStep(minutes float64) Option {
	if !(minutes > 0) || math.IsInf(minutes, 1) {
		panic("walker: WithStep(minutes<=0)")
	}

	return func(o *Options) {
		o.Step = minutes
	}
}

// WithStepSeconds is WithStep expressed in seconds.
func WithStepSeconds(seconds float64) Option {
	return WithStep(seconds / 60)
}

// WithGases sets the gas table waypoints refer to by id.
func WithGases(gases []profile.Gas) Option {
	return func(o *Options) {
		o.Gases = gases
	}
}

// WithTable pins the compartment snapshot to integrate with.
func WithTable(t *tissue.Table) Option {
	if t == nil {
		panic("walker: WithTable(nil)")
	}

	return func(o *Options) {
		o.Table = t
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("walker: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// WithSurfaceFraction seeds the tissues at equilibrium with an inert
// fraction f in [0,1] instead of the gas active at t=0.
func WithSurfaceFraction(f float64) Option {
	if f < 0 || f > 1 || math.IsNaN(f) {
		panic("walker: WithSurfaceFraction(f outside [0,1])")
	}

	return func(o *Options) {
		o.SurfaceFraction = f
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.Gases) == 0 {
		cfg.Gases = []profile.Gas{profile.Air()}
	}
	if cfg.Table == nil {
		cfg.Table = tissue.Active()
	}

	return cfg
}
