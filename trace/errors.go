// SPDX-License-Identifier: MIT

package trace

import "errors"

// ErrStepOutOfRange indicates a step index outside [0, StepCount()).
var ErrStepOutOfRange = errors.New("trace: step index out of range")
