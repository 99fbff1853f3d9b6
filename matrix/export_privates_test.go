// SPDX-License-Identifier: MIT

package matrix

// Test bridge for white-box checks from package matrix_test.
// Keep everything test-only here instead of widening the production API.

var (
	// ExportedIsNonFinite exposes isNonFinite.
	ExportedIsNonFinite = isNonFinite
)

// PanicEpsilonInvalid_TestOnly exports the WithEpsilon panic message.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid

// RawData_TestOnly returns the live backing buffer of m.
func RawData_TestOnly(m *Augmented) []float64 { return m.data }
