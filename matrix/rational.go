// SPDX-License-Identifier: MIT
// Package matrix: Rational is a row-major matrix of exact rationals
// (math/big.Rat), the workspace for Gauss–Jordan elimination.
package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is a row-major matrix of *big.Rat values.
// Every cell owns its own *big.Rat; accessors copy so callers cannot alias
// internal state.
type Rational struct {
	r, c int
	data []*big.Rat
}

// NewRational creates an r×c Rational matrix initialized to zeros.
// Complexity: O(r*c).
func NewRational(rows, cols int) (*Rational, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &Rational{r: rows, c: cols, data: data}, nil
}

// RationalFrom lifts an integer Matrix into a Rational copy.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions, or At errors from m.
// Complexity: O(r*c).
func RationalFrom(m Matrix) (*Rational, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	q, err := NewRational(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}

	// Fast-path: *Dense exposes its flat slice directly.
	if d, ok := m.(*Dense); ok {
		for k, v := range d.data {
			q.data[k].SetInt64(v)
		}
		return q, nil
	}

	var v int64
	for i := 0; i < q.r; i++ {
		for j := 0; j < q.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("RationalFrom: %w", err)
			}
			q.data[i*q.c+j].SetInt64(v)
		}
	}

	return q, nil
}

// Rows returns the number of rows.
func (q *Rational) Rows() int { return q.r }

// Cols returns the number of columns.
func (q *Rational) Cols() int { return q.c }

// At returns a copy of the element at (row, col).
func (q *Rational) At(row, col int) (*big.Rat, error) {
	if row < 0 || row >= q.r || col < 0 || col >= q.c {
		return nil, fmt.Errorf("Rational.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return new(big.Rat).Set(q.data[row*q.c+col]), nil
}

// Set stores a copy of v at (row, col).
func (q *Rational) Set(row, col int, v *big.Rat) error {
	if row < 0 || row >= q.r || col < 0 || col >= q.c {
		return fmt.Errorf("Rational.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	q.data[row*q.c+col].Set(v)

	return nil
}

// Clone returns a deep copy.
func (q *Rational) Clone() *Rational {
	data := make([]*big.Rat, len(q.data))
	for i, v := range q.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &Rational{r: q.r, c: q.c, data: data}
}

// cell returns the internal pointer at (i, j); callers must not leak it.
func (q *Rational) cell(i, j int) *big.Rat {
	return q.data[i*q.c+j]
}

// swapRows exchanges rows a and b in place.
func (q *Rational) swapRows(a, b int) {
	if a == b {
		return
	}
	ra := q.data[a*q.c : (a+1)*q.c]
	rb := q.data[b*q.c : (b+1)*q.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// String renders rows using RatString ("1/2", "-3").
func (q *Rational) String() string {
	var sb strings.Builder
	for i := 0; i < q.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < q.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(q.cell(i, j).RatString())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
