// SPDX-License-Identifier: MIT

package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile indicates fewer than two waypoints, non-increasing
	// times or negative time/depth values.
	ErrInvalidProfile = errors.New("profile: invalid profile")

	// ErrInvalidGas indicates gas fractions outside [0,1] or not summing to 1.
	ErrInvalidGas = errors.New("profile: invalid gas mix")

	// ErrDuplicateGas indicates two gases sharing the same id.
	ErrDuplicateGas = errors.New("profile: duplicate gas id")

	// ErrInvalidSetup indicates a DiveSetup with bad gradient factors,
	// surface interval or no dives.
	ErrInvalidSetup = errors.New("profile: invalid dive setup")

	// ErrUnknownFormat indicates an encoding other than yaml or json.
	ErrUnknownFormat = errors.New("profile: unknown setup format")
)

// profileErrorf prefixes err with the method name, keeping err for errors.Is.
func profileErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
