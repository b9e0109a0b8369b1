// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the exact kernels.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set paths in code under test.
type hide struct{ matrix.Matrix }

// MustDenseFrom builds a *Dense from rows or fails the test.
func MustDenseFrom(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// ratStrings renders a rational vector as RatString values for comparison.
func ratStrings(v []*big.Rat) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = x.RatString()
	}

	return out
}

// waterMatrix is H2 + O2 -> H2O with rows H, O.
func waterMatrix(t *testing.T) *matrix.Dense {
	return MustDenseFrom(t, [][]int64{
		{-2, 0, 2},
		{0, -2, 1},
	})
}
