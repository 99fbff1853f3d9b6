// Package trace records the ordered steps of a Gaussian elimination.
//
// A Trace is an append-only log of (snapshot, label) pairs plus a terminal
// Invalid flag. Every snapshot is an independent deep copy of the matrix taken
// right after the operation its label describes, so later mutations of the
// solved matrix never leak into the log. Readers get clones as well.
//
// Labels use 1-based row numbers and the canonical value notation of
// matrix.FormatValue, for example:
//
//	Swap row 1 with row 2.
//	Divide row 3 by -6.0.
//	Back substitution: Multiply row 3 by 3.0 and subtract from row 2.
//
// Each trace carries a random UUID so exported traces can be correlated with
// log records of the solve that produced them.
package trace
