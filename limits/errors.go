// SPDX-License-Identifier: MIT

package limits

import "errors"

// ErrBadStopIncrement indicates a stop increment that is not finite and > 0.
var ErrBadStopIncrement = errors.New("limits: stop increment must be positive")
