package formula_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/formula"
)

func TestParse_Table(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want formula.ElementCount
	}{
		{"single element", "O", formula.ElementCount{"O": 1}},
		{"subscript", "O2", formula.ElementCount{"O": 2}},
		{"two letter symbol", "NaCl", formula.ElementCount{"Na": 1, "Cl": 1}},
		{"multi digit subscript", "C6H12O6", formula.ElementCount{"C": 6, "H": 12, "O": 6}},
		{"repeated element sums", "CH3COOH", formula.ElementCount{"C": 2, "H": 4, "O": 2}},
		{"group multiplier distributes", "(AB2)3", formula.ElementCount{"A": 3, "B": 6}},
		{"group without subscript", "(OH)", formula.ElementCount{"O": 1, "H": 1}},
		{"group and outer element", "Ca(OH)2", formula.ElementCount{"Ca": 1, "O": 2, "H": 2}},
		{"nested groups", "Ca3(PO4)2", formula.ElementCount{"Ca": 3, "P": 2, "O": 8}},
		{"deep nesting", "((H)2O)3", formula.ElementCount{"H": 6, "O": 3}},
		{"brackets", "K4[Fe(CN)6]", formula.ElementCount{"K": 4, "Fe": 1, "C": 6, "N": 6}},
		{"element across groups", "Al2(SO4)3(H2O)18", formula.ElementCount{"Al": 2, "S": 3, "O": 30, "H": 36}},
		{"stray characters skipped", "H2~O", formula.ElementCount{"H": 2, "O": 1}},
		{"leading coefficient skipped", "2H2O", formula.ElementCount{"H": 2, "O": 1}},
		{"stray closer skipped", "H2)O", formula.ElementCount{"H": 2, "O": 1}},
		{"hydrate middle dot", "CuSO4·5H2O", formula.ElementCount{"Cu": 1, "S": 1, "O": 9, "H": 10}},
		{"hydrate asterisk", "CuSO4*5H2O", formula.ElementCount{"Cu": 1, "S": 1, "O": 9, "H": 10}},
		{"hydrate period", "CuSO4.5H2O", formula.ElementCount{"Cu": 1, "S": 1, "O": 9, "H": 10}},
		{"hydrate without multiplier", "[Cu(H2O)4]SO4·H2O", formula.ElementCount{"Cu": 1, "S": 1, "O": 9, "H": 10}},
		{"two adduct parts", "CaSO4·2H2O·CO2", formula.ElementCount{"Ca": 1, "S": 1, "O": 8, "H": 4, "C": 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := formula.Parse(tc.src)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("Parse(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		src    string
		want   error
		offset int
	}{
		{"(OH", formula.ErrUnterminatedGroup, 0},
		{"Ca(O(H)2", formula.ErrUnterminatedGroup, 2},
		{"(OH]2", formula.ErrMismatchedGroup, 3},
		{"H0", formula.ErrZeroCount, 1},
		{"(OH)0", formula.ErrZeroCount, 4},
		{"Fe^3", formula.ErrUnsupportedNotation, 2},
		{"", formula.ErrNoElements, 0},
		{"()", formula.ErrNoElements, 0},
		{"xyz", formula.ErrNoElements, 0},
		{"H99999999999999999999999", formula.ErrCountOverflow, 1},
		{"(CuSO4·5H2O)", formula.ErrMisplacedDot, 6},
		{"CuSO4·", formula.ErrNoElements, 5},
		{"·5H2O", formula.ErrNoElements, 0},
		{"CuSO4·0H2O", formula.ErrZeroCount, 7},
	}

	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got, err := formula.Parse(tc.src)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, formula.ErrParse)

			var pe *formula.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.src, pe.Formula)
			assert.Equal(t, tc.offset, pe.Offset)
		})
	}
}

func TestParse_GroupOverflow(t *testing.T) {
	_, err := formula.Parse("(H4611686018427387904)4")
	assert.ErrorIs(t, err, formula.ErrCountOverflow)
}

func TestParseCompound_Order(t *testing.T) {
	c, err := formula.ParseCompound("K4[Fe(CN)6]")
	require.NoError(t, err)
	assert.Equal(t, "K4[Fe(CN)6]", c.Formula)
	assert.Equal(t, []string{"K", "Fe", "C", "N"}, c.Order)
	assert.Len(t, c.Counts, len(c.Order))
}

func TestParse_FreshMapPerCall(t *testing.T) {
	a, err := formula.Parse("H2O")
	require.NoError(t, err)
	a["H"] = 100

	b, err := formula.Parse("H2O")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Count("H"))
}

func TestElementCount_Helpers(t *testing.T) {
	ec := formula.MustParse("C6H12O6")

	assert.Equal(t, []string{"C", "H", "O"}, ec.Elements())
	assert.Equal(t, 12, ec.Count("H"))
	assert.Equal(t, 0, ec.Count("N"))
	assert.Equal(t, "C6H12O6", ec.String())
	assert.Equal(t, "H2O", formula.MustParse("OH2").String())

	cl := ec.Clone()
	assert.True(t, ec.Equal(cl))
	cl["C"] = 7
	assert.False(t, ec.Equal(cl))
	assert.Equal(t, 6, ec.Count("C"))
	assert.False(t, ec.Equal(formula.ElementCount{"C": 6}))
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { formula.MustParse("(H") })
}

func TestParseCompound_HydrateOrder(t *testing.T) {
	c, err := formula.ParseCompound("Na2CO3•10H2O")
	require.NoError(t, err)
	assert.Equal(t, []string{"Na", "C", "O", "H"}, c.Order)
	assert.Equal(t, formula.ElementCount{"Na": 2, "C": 1, "O": 13, "H": 20}, c.Counts)
}

func TestParseError_ClassAtReturnSite(t *testing.T) {
	// Sentinels stay independent values; only *ParseError joins the class.
	for _, sentinel := range []error{
		formula.ErrUnterminatedGroup,
		formula.ErrMismatchedGroup,
		formula.ErrZeroCount,
		formula.ErrCountOverflow,
		formula.ErrUnsupportedNotation,
		formula.ErrMisplacedDot,
		formula.ErrNoElements,
	} {
		assert.NotErrorIs(t, sentinel, formula.ErrParse, sentinel.Error())
	}

	_, err := formula.Parse("H0")
	assert.ErrorIs(t, err, formula.ErrParse)
	assert.ErrorIs(t, err, formula.ErrZeroCount)
	assert.NotErrorIs(t, err, formula.ErrNoElements)
	assert.EqualError(t, err, `formula: zero subscript (formula "H0", offset 1)`)
}
