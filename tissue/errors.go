// SPDX-License-Identifier: MIT

package tissue

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownVariant indicates a variant name or value outside A/B/C.
	ErrUnknownVariant = errors.New("tissue: unknown compartment variant")

	// ErrTableInvariant indicates a coefficient table that violates the
	// ordering invariants (half-time ↑, a ↓, b ↑, 0 < b < 1).
	ErrTableInvariant = errors.New("tissue: table invariant violated")

	// ErrCompartmentIndex indicates an index outside [0, Count).
	ErrCompartmentIndex = errors.New("tissue: compartment index out of range")
)

// tissueErrorf prefixes err with the method name, keeping err for errors.Is.
func tissueErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
