// Package matrix provides the two-dimensional accessor abstraction consumed by
// the minima and monge packages.
//
// The package offers:
//
//   - Matrix[T]: a read-only (row, col) -> value capability with no assumption
//     about backing storage.
//   - Dense[T]: a row-major, flat-slice implementation for materialized data.
//   - Func: adapts any func(i, j int) T into a Matrix, e.g. a lazily computed
//     DP cost table.
//   - Transpose: a zero-copy transposed view, so column algorithms can be
//     expressed through row algorithms and vice versa.
//
// Algorithms never copy submatrices; they pass index ranges together with the
// original accessor.
//
// Complexity: all accessors are O(1); NewDenseFrom and Clone are O(r*c).
package matrix
