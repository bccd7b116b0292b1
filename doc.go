// Package smawk finds row and column minima of totally monotone matrices,
// from brute force up to the linear-time SMAWK algorithm, and applies them
// to dynamic programs whose cost matrix is Monge.
//
// 🚀 What is in the box?
//
//	• Matrix accessors: Dense storage, function-backed and transposed views
//	• Minima: brute force O(mn), divide and conquer O(m + n log m),
//	  SMAWK O(m + n), and an online engine for lazily defined DP tables
//	• Monge verification with overflow-checked corner sums
//	• Random Monge generators for tests and benchmarks
//	• Optimal-fit line breaking built on the online engine
//
// Everything is organized under these subpackages:
//
//	matrix/    — Matrix[T] interface, Dense, Func, Transpose
//	minima/    — strategies, dispatcher (RowMinima/ColumnMinima), online engine
//	monge/     — IsMonge, Verify
//	builder/   — PrimitiveMatrix, RandomMonge, RandomMongeSet
//	linebreak/ — Breaks, Wrap, TotalCost
//
// Quick example:
//
//	m := matrix.MustDense([][]int{
//		{3, 2, 4, 5, 6},
//		{2, 1, 3, 3, 4},
//		{2, 1, 3, 3, 4},
//		{3, 2, 4, 3, 4},
//		{4, 3, 2, 1, 1},
//	})
//	cols, _ := minima.ColumnMinima[int](m) // [1 1 4 4 4]
//
// SMAWK and the online engine trust the caller: a matrix that is not
// totally monotone yields wrong indices without an error. Run monge.Verify
// first when the input is not Monge by construction.
//
//	go get github.com/katalvlaran/smawk
package smawk
