// SPDX-License-Identifier: MIT

package profile

import (
	"math"
	"sort"
)

// MinWaypoints is the smallest profile that describes a segment.
const MinWaypoints = 2

// MaxDuration bounds waypoint times and surface intervals, in minutes
// (30 days, longer than any saturation exposure).
const MaxDuration = 30 * 24 * 60

// Waypoint is a (time, depth) vertex of the profile. A non-empty GasID
// switches to that gas at Time; otherwise the previous gas stays active.
type Waypoint struct {
	Time  float64 `json:"time" yaml:"time"`   // minutes since descent
	Depth float64 `json:"depth" yaml:"depth"` // metres
	GasID string  `json:"gasId,omitempty" yaml:"gasId,omitempty"`
}

// Profile is an ordered list of waypoints with strictly increasing times.
type Profile []Waypoint

// Validate reports ErrInvalidProfile for fewer than MinWaypoints entries,
// negative or non-finite values, times past MaxDuration, or times that do
// not strictly increase.
func (p Profile) Validate() error {
	if len(p) < MinWaypoints {
		return profileErrorf("Profile.Validate", ErrInvalidProfile, "need at least %d waypoints, got %d", MinWaypoints, len(p))
	}
	for i, w := range p {
		if !finite(w.Time) || !finite(w.Depth) || w.Time < 0 || w.Depth < 0 {
			return profileErrorf("Profile.Validate", ErrInvalidProfile, "waypoint %d: time=%v depth=%v", i, w.Time, w.Depth)
		}
		if w.Time > MaxDuration {
			return profileErrorf("Profile.Validate", ErrInvalidProfile, "waypoint %d: time %v beyond %d min", i, w.Time, MaxDuration)
		}
		if i > 0 && w.Time <= p[i-1].Time {
			return profileErrorf("Profile.Validate", ErrInvalidProfile, "waypoint %d: time %v not after %v", i, w.Time, p[i-1].Time)
		}
	}

	return nil
}

// EndTime is the time of the last waypoint (0 for an empty profile).
func (p Profile) EndTime() float64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].Time
}

// MaxDepth returns the deepest waypoint depth.
func (p Profile) MaxDepth() float64 {
	maxDepth := 0.0
	for _, w := range p {
		maxDepth = math.Max(maxDepth, w.Depth)
	}

	return maxDepth
}

// SegmentIndex returns the largest index whose waypoint time is ≤ t,
// or -1 when t precedes the first waypoint.
func (p Profile) SegmentIndex(t float64) int {
	return sort.Search(len(p), func(i int) bool { return p[i].Time > t }) - 1
}

// NextBoundary returns the first waypoint time strictly after t.
func (p Profile) NextBoundary(t float64) (float64, bool) {
	i := p.SegmentIndex(t) + 1
	if i >= len(p) {
		return 0, false
	}

	return p[i].Time, true
}

// DepthAt returns the planned depth at time t. Past the last waypoint the
// diver is at the surface. A segment without duration yields its starting
// depth instead of interpolating.
func DepthAt(p Profile, t float64) float64 {
	n := len(p)
	if n == 0 || t > p[n-1].Time {
		return 0
	}
	i := p.SegmentIndex(t)
	if i < 0 {
		return p[0].Depth
	}
	if i == n-1 {
		return p[i].Depth
	}
	a, b := p[i], p[i+1]
	dur := b.Time - a.Time
	if dur <= 0 {
		return a.Depth
	}

	return a.Depth + (b.Depth-a.Depth)*(t-a.Time)/dur
}

// GasAt returns the gas in effect at t: the last switch at a waypoint time
// ≤ t, else the first gas. An empty gas list means air. The bool is false
// when the effective switch names an id missing from gases; the first gas
// is returned in that case.
func GasAt(p Profile, gases []Gas, t float64) (Gas, bool) {
	return resolveGas(p, gases, func(wt float64) bool { return wt <= t })
}

// GasBefore is GasAt ignoring switches that happen exactly at t, i.e. the
// gas breathed in the instant just before t.
func GasBefore(p Profile, gases []Gas, t float64) (Gas, bool) {
	return resolveGas(p, gases, func(wt float64) bool { return wt < t })
}

func resolveGas(p Profile, gases []Gas, active func(float64) bool) (Gas, bool) {
	if len(gases) == 0 {
		gases = []Gas{Air()}
	}
	current, known := gases[0], true
	for _, w := range p {
		if !active(w.Time) {
			break
		}
		if w.GasID == "" {
			continue
		}
		if g, ok := findGas(gases, w.GasID); ok {
			current, known = g, true
		} else {
			current, known = gases[0], false
		}
	}

	return current, known
}

// UnknownGasIDs lists the distinct waypoint gas ids missing from gases,
// in profile order.
func UnknownGasIDs(p Profile, gases []Gas) []string {
	if len(gases) == 0 {
		gases = []Gas{Air()}
	}
	var out []string
	seen := make(map[string]struct{})
	for _, w := range p {
		if w.GasID == "" {
			continue
		}
		if _, ok := findGas(gases, w.GasID); ok {
			continue
		}
		if _, dup := seen[w.GasID]; !dup {
			seen[w.GasID] = struct{}{}
			out = append(out, w.GasID)
		}
	}

	return out
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
