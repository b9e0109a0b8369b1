package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/matrix"
)

func TestRREF_Table(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]int64
		want   string
		pivots []int
	}{
		{"dependent rows", [][]int64{{1, 2}, {2, 4}}, "[1, 2]\n[0, 0]\n", []int{0}},
		{"fractions", [][]int64{{-2, 0, 2}, {0, -2, 1}}, "[1, 0, -1]\n[0, 1, -1/2]\n", []int{0, 1}},
		{"zero leading column", [][]int64{{0, 1}, {0, 2}}, "[0, 1]\n[0, 0]\n", []int{1}},
		{"row swap needed", [][]int64{{0, 2}, {3, 0}}, "[1, 0]\n[0, 1]\n", []int{0, 1}},
		{"more rows than columns", [][]int64{{1}, {2}, {3}}, "[1]\n[0]\n[0]\n", []int{0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := matrix.RationalFrom(MustDenseFrom(t, tc.rows))
			require.NoError(t, err)
			pivots := q.RREF()
			assert.Equal(t, tc.pivots, pivots)
			assert.Equal(t, tc.want, q.String())
		})
	}
}

func TestRank(t *testing.T) {
	r, err := matrix.Rank(waterMatrix(t))
	require.NoError(t, err)
	assert.Equal(t, 2, r)

	r, err = matrix.Rank(hide{MustDenseFrom(t, [][]int64{{1, 2}, {2, 4}})})
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	_, err = matrix.Rank(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFreeColumns(t *testing.T) {
	assert.Equal(t, []int{1, 3}, matrix.FreeColumns([]int{0, 2}, 4))
	assert.Empty(t, matrix.FreeColumns([]int{0, 1}, 2))
}

func TestNullSpace_OneDimensional(t *testing.T) {
	basis, err := matrix.NullSpace(waterMatrix(t))
	require.NoError(t, err)
	require.Len(t, basis, 1)
	assert.Equal(t, []string{"1", "1/2", "1"}, ratStrings(basis[0]))
}

func TestNullSpace_TwoDimensional(t *testing.T) {
	basis, err := matrix.NullSpace(MustDenseFrom(t, [][]int64{{1, 1, 1}}))
	require.NoError(t, err)
	require.Len(t, basis, 2)
	assert.Equal(t, []string{"-1", "1", "0"}, ratStrings(basis[0]))
	assert.Equal(t, []string{"-1", "0", "1"}, ratStrings(basis[1]))
}

func TestNullSpace_FullRank(t *testing.T) {
	basis, err := matrix.NullSpace(MustDenseFrom(t, [][]int64{{-2, 0}, {0, 2}}))
	require.NoError(t, err)
	assert.Empty(t, basis)

	_, err = matrix.NullSpace(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNullSpace_DoesNotMutateInput(t *testing.T) {
	m := waterMatrix(t)
	_, err := matrix.NullSpace(m)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-2, 0, 2}, {0, -2, 1}}, m.ToRows())
}

func TestMatVec(t *testing.T) {
	m := waterMatrix(t)

	y, err := matrix.MatVec(m, []int64{2, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, y)

	y, err = matrix.MatVec(hide{m}, []int64{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{0, -1}, y)
}

func TestMatVec_Errors(t *testing.T) {
	m := waterMatrix(t)

	_, err := matrix.MatVec(nil, []int64{1})
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(m, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(m, []int64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MatVec(MustDenseFrom(t, [][]int64{{math.MaxInt64}}), []int64{2})
	assert.ErrorIs(t, err, matrix.ErrOverflow)
	_, err = matrix.MatVec(MustDenseFrom(t, [][]int64{{math.MaxInt64, 1}}), []int64{1, 1})
	assert.ErrorIs(t, err, matrix.ErrOverflow)
	_, err = matrix.MatVec(MustDenseFrom(t, [][]int64{{math.MinInt64}}), []int64{-1})
	assert.ErrorIs(t, err, matrix.ErrOverflow)
}
