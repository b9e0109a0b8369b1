// SPDX-License-Identifier: MIT
// Package matrix provides the exact kernels used by the solver:
// Gauss–Jordan reduction (RREF), Rank, NullSpace and MatVec.
//
// Purpose:
//   - Keep every kernel exact: big.Rat for elimination, checked int64 for MatVec.
//   - Define operation tags for uniform error reporting.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.

package matrix

import (
	"fmt"
	"math"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opRREF      = "RREF"
	opRank      = "Rank"
	opNullSpace = "NullSpace"
	opMatVec    = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RREF reduces q in place to reduced row-echelon form and returns the pivot
// column of each non-zero row, in row order.
//
// Implementation:
//   - Stage 1: For each column, pick the first row at or below the current
//     pivot row with a non-zero entry; columns without one are free.
//   - Stage 2: Swap it into place and scale the row so the pivot is exactly 1.
//   - Stage 3: Eliminate the column from every other row (above and below).
//
// Behavior highlights:
//   - Exact: no rounding, no tolerance; a zero test is Sign() == 0.
//   - Rows past len(pivots) are all zero on return.
//
// Determinism:
//   - First-non-zero pivoting and fixed i→j loops: identical input, identical output.
//
// Complexity:
//   - Time O(r·c·min(r,c)) big.Rat operations, Space O(c) temporaries.
//
// AI-Hints:
//   - Clone first if the original matrix is still needed.
func (q *Rational) RREF() []int {
	pivots := make([]int, 0, min(q.r, q.c))
	factor := new(big.Rat)
	tmp := new(big.Rat)
	inv := new(big.Rat)

	row := 0
	for col := 0; col < q.c && row < q.r; col++ {
		// Stage 1: locate pivot.
		p := -1
		for i := row; i < q.r; i++ {
			if q.cell(i, col).Sign() != 0 {
				p = i
				break
			}
		}
		if p < 0 {
			continue // free column
		}
		q.swapRows(row, p)

		// Stage 2: normalise pivot row.
		inv.Inv(q.cell(row, col))
		for j := col; j < q.c; j++ {
			q.cell(row, j).Mul(q.cell(row, j), inv)
		}

		// Stage 3: eliminate col from all other rows.
		for i := 0; i < q.r; i++ {
			if i == row || q.cell(i, col).Sign() == 0 {
				continue
			}
			factor.Set(q.cell(i, col))
			for j := col; j < q.c; j++ {
				tmp.Mul(factor, q.cell(row, j))
				q.cell(i, j).Sub(q.cell(i, j), tmp)
			}
		}

		pivots = append(pivots, col)
		row++
	}

	return pivots
}

// Rank returns the rank of m computed exactly.
// Errors: ErrNilMatrix and allocation errors, wrapped with opRank.
// Complexity: as RREF.
func Rank(m Matrix) (int, error) {
	q, err := RationalFrom(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return len(q.RREF()), nil
}

// FreeColumns returns the columns of an RREF matrix with c columns that hold
// no pivot, in ascending order.
func FreeColumns(pivots []int, cols int) []int {
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	free := make([]int, 0, cols-len(pivots))
	for j := 0; j < cols; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	return free
}

// NullSpace returns a basis of {x : m·x = 0} over the rationals, one vector
// per free column of RREF(m), built by the standard back-substitution:
// the free variable is 1, other free variables 0, and each pivot variable is
// the negated RREF entry in the free column.
//
// Implementation:
//   - Stage 1: lift m into a Rational and reduce it with RREF.
//   - Stage 2: derive free columns.
//   - Stage 3: build one basis vector per free column.
//
// Returns:
//   - [][]*big.Rat: basis vectors of length m.Cols(); empty when m has full
//     column rank.
//
// Errors:
//   - ErrNilMatrix (ValidateNotNil) and allocation errors, wrapped with opNullSpace.
//
// Determinism:
//   - Basis order follows ascending free-column index.
//
// Complexity:
//   - Time O(r·c·min(r,c)) for RREF plus O(f·c) for f free columns.
func NullSpace(m Matrix) ([][]*big.Rat, error) {
	q, err := RationalFrom(m)
	if err != nil {
		return nil, matrixErrorf(opNullSpace, err)
	}
	pivots := q.RREF()
	free := FreeColumns(pivots, q.c)

	basis := make([][]*big.Rat, 0, len(free))
	for _, f := range free {
		v := make([]*big.Rat, q.c)
		for j := range v {
			v[j] = new(big.Rat)
		}
		v[f].SetInt64(1)
		for i, p := range pivots {
			v[p].Neg(q.cell(i, f))
		}
		basis = append(basis, v)
	}

	return basis, nil
}

// MatVec computes y = m·x with overflow-checked int64 arithmetic.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols), ErrOverflow,
//     all wrapped with opMatVec.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []int64) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]int64, rows)
	var (
		a, acc int64
		ok     bool
		err    error
	)
	for i := 0; i < rows; i++ {
		acc = 0
		for j := 0; j < cols; j++ {
			if a, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			if acc, ok = mulAdd(acc, a, x[j]); !ok {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("row %d: %w", i, ErrOverflow))
			}
		}
		y[i] = acc
	}

	return y, nil
}

// mulAdd returns acc + a*b, reporting false on int64 overflow.
func mulAdd(acc, a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return acc, true
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	s := acc + p
	if (p > 0 && s < acc) || (p < 0 && s > acc) {
		return 0, false
	}

	return s, true
}
