// Package gausstrace solves square linear systems by Gaussian elimination and
// keeps the whole story: every row operation, in order, with the matrix it
// produced.
//
// 🚀 What is in the box?
//
//	• Augmented matrices [A|b] with resize, linear indexing and row primitives
//	• Elimination with pivot search and full back substitution
//	• A read-only trace of labelled snapshots, exportable as JSON or YAML
//	• A small CLI that prints the trace for a system file
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/  Augmented type, bounds-checked access, row operations, rendering
//	gauss/   Solve, tolerance helpers, solver options
//	trace/   step log, labels, export view
//
// Quick example:
//
//	[ 1  1 -1 | 9]        [1 0 0 | -2]
//	[ 0  1  3 | 3]  ───▶  [0 1 0 |  9]
//	[-1  0 -2 | 6]        [0 0 1 | -2]
//
//	reduced in six recorded steps.
//
//	go install github.com/katalvlaran/gausstrace/cmd/gausstrace@latest
package gausstrace
