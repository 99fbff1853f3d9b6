// SPDX-License-Identifier: MIT

// Package gauss solves square linear systems by Gaussian elimination with
// row pivoting and full back substitution, recording every elementary row
// operation into a trace.Trace.
//
// Solve mutates the given matrix in place. On success the coefficient block
// is the identity and the last column holds the solution; the trace holds one
// snapshot per operation in the order they were applied.
//
// Numeric comparisons use an absolute tolerance (|a-b| < eps, DefaultEpsilon
// unless WithEpsilon is given). When no non-zero pivot exists the default
// policy records an invalid final step; WithFailOnSingular turns that case
// into an error instead.
package gauss
