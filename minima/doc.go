// Package minima finds the left-most minimum of every row or every column of
// a matrix, with algorithms that exploit total monotonicity to run in time
// proportional to the matrix perimeter instead of its area.
//
// 🚀 What is a totally monotone matrix?
//
//	Let rm(i) be the column of the left-most minimum of row i. A matrix is
//	monotone when rm(0) ≤ rm(1) ≤ … ≤ rm(m-1), i.e. row minima move to the
//	right as you go down. It is totally monotone when every 2×2 submatrix
//	(any rows i < i', any columns j < j') is monotone:
//
//	  M[i,j] > M[i,j']  ⇒  M[i',j] > M[i',j']
//
//	Every Monge matrix (M[i,j] + M[i',j'] ≤ M[i,j'] + M[i',j]) is totally
//	monotone; package monge verifies that property.
//
// ✨ Strategies:
//
//	BruteForce — scan every lane.                          O(m·n)
//	Recursive  — divide and conquer on the middle lane.    O(m + n log m)
//	SMAWK      — reduce-and-conquer (Aggarwal et al.).     O(m + n)
//	Online     — upper-triangular column minima where      O(n) amortized
//	             entry (i,j) may depend on minima v(0..i).
//
// Brute force is correct for any input and is the reference oracle.
//
// ⚠️ Caller contract:
//
//	Recursive, SMAWK and OnlineColumnMinima REQUIRE a totally monotone
//	matrix. This is not checked: on other input they return silently wrong
//	indices. Run monge.Verify first when monotonicity is not guaranteed by
//	construction.
//
// Ties are always broken towards the smallest index.
//
// ⚙️ Usage:
//
//	m := matrix.MustDense([][]int{
//	  {3, 2, 4, 5, 6},
//	  {2, 1, 3, 3, 4},
//	  {2, 1, 3, 3, 4},
//	  {3, 2, 4, 3, 4},
//	  {4, 3, 2, 1, 1},
//	})
//	cols, err := minima.SMAWKColumnMinima[int](m) // [1 1 4 4 4]
//
// Concurrency: every call is synchronous and owns its working storage.
// Independent calls on independent matrices may run in parallel.
package minima
