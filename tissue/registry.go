// SPDX-License-Identifier: MIT

package tissue

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Registry publishes the process-wide active Table.
//
// Readers call Active() once per calculation and keep the returned snapshot;
// SetVariant swaps in a freshly built table so no reader ever sees a
// half-rebuilt set of coefficients.
type Registry struct {
	active atomic.Pointer[Table]
	mu     sync.Mutex // serialises writers so versions stay monotonic
	logger *slog.Logger
}

// NewRegistry returns a registry whose active table is built for v.
// An unknown v falls back to ConservativeVariant with a warning.
func NewRegistry(v Variant, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Registry{logger: logger}
	r.SetVariant(v)

	return r
}

// Active returns the current snapshot. The result never changes under the
// caller, even if SetVariant runs concurrently.
func (r *Registry) Active() *Table {
	return r.active.Load()
}

// SetVariant publishes a new table for v and returns it. Unknown variants
// fall back to ConservativeVariant and log a warning.
func (r *Registry) SetVariant(v Variant) *Table {
	if !v.Valid() {
		r.logger.Warn("unknown compartment variant, using conservative fallback",
			slog.Int("requested", int(v)),
			slog.String("fallback", ConservativeVariant.String()))
		v = ConservativeVariant
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var next uint64 = 1
	if cur := r.active.Load(); cur != nil {
		next = cur.version + 1
	}
	t := newTable(v, next)
	r.active.Store(t)

	return t
}

// SetVariantName parses name and publishes the matching table. Unparseable
// names fall back like SetVariant does.
func (r *Registry) SetVariantName(name string) *Table {
	v, err := ParseVariant(name)
	if err != nil {
		r.logger.Warn("unknown compartment variant, using conservative fallback",
			slog.String("requested", name),
			slog.String("fallback", ConservativeVariant.String()))
		v = ConservativeVariant
	}

	return r.SetVariant(v)
}

// Default is the process-wide registry, initialised to DefaultVariant.
var Default = NewRegistry(DefaultVariant, nil)

// Active returns Default.Active().
func Active() *Table { return Default.Active() }

// SetVariant switches the Default registry.
func SetVariant(v Variant) *Table { return Default.SetVariant(v) }

// Compartments returns the ordered compartments of the Default registry.
func Compartments() []Compartment { return Default.Active().Compartments() }
