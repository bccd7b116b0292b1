package monge_test

import (
	"fmt"

	"github.com/katalvlaran/smawk/matrix"
	"github.com/katalvlaran/smawk/monge"
)

// ExampleVerify shows a passing matrix and the location reported for a
// failing one.
func ExampleVerify() {
	good := matrix.MustDense([][]int{
		{0, 1, 4},
		{1, 0, 1},
		{4, 1, 0},
	})
	fmt.Println("good:", monge.Verify[int](good))

	bad := matrix.MustDense([][]int{
		{0, 1, 4},
		{1, 0, 1},
		{4, 9, 0},
	})
	fmt.Println("bad: ", monge.Verify[int](bad))
	// Output:
	// good: <nil>
	// bad:  window at (1, 0): monge: matrix is not Monge
}
