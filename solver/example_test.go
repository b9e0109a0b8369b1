package solver_test

import (
	"fmt"

	"github.com/katalvlaran/chembalance/matrix"
	"github.com/katalvlaran/chembalance/solver"
)

// ExampleSolve balances Fe + O2 --> Fe2O3 from its stoichiometric matrix
// (rows Fe, O; reactant columns negative).
func ExampleSolve() {
	m, _ := matrix.NewDenseFrom([][]int64{
		{-1, 0, 2},
		{0, -2, 3},
	})
	coeffs, err := solver.Solve(m)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(coeffs)
	// Output: [4 3 2]
}
