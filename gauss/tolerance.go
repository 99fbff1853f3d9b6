// SPDX-License-Identifier: MIT

package gauss

import "math"

// Equal reports |a-b| < eps.
func Equal(a, b, eps float64) bool { return math.Abs(a-b) < eps }

// IsZero reports |v| < eps.
func IsZero(v, eps float64) bool { return Equal(v, 0, eps) }

// IsOne reports |v-1| < eps.
func IsOne(v, eps float64) bool { return Equal(v, 1, eps) }
