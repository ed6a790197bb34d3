// SPDX-License-Identifier: MIT

package walker

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/decolab/profile"
)

const (
	// MethodCalculate is the error prefix of CalculateTissueLoading.
	MethodCalculate = "CalculateTissueLoading"
	// MethodCalculateSetup is the error prefix of CalculateSetup.
	MethodCalculateSetup = "CalculateSetup"
)

var (
	// ErrInvalidProfile is profile.ErrInvalidProfile; no result is produced.
	ErrInvalidProfile = profile.ErrInvalidProfile

	// ErrBadSurfaceInterval indicates a surface interval outside [0, profile.MaxDuration].
	ErrBadSurfaceInterval = errors.New("walker: surface interval out of range")

	// ErrProfileTooLong indicates a calculation that would need more than
	// MaxPoints grid points for the chosen step.
	ErrProfileTooLong = errors.New("walker: profile needs too many grid points")

	// ErrNilSetup indicates CalculateSetup was called without a setup.
	ErrNilSetup = errors.New("walker: dive setup is nil")
)

// walkerErrorf prefixes err with the method name, keeping err for errors.Is.
func walkerErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
