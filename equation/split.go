// SPDX-License-Identifier: MIT

package equation

import (
	"strings"
)

// acceptedArrows is listed in the hint for an equation without any arrow.
const acceptedArrows = `-->, ->, =, →, ⟶, \to, \rightarrow, \xrightarrow{...}`

// Split normalizes raw and divides it into reactant and product formulas.
// A leading stoichiometric coefficient on a term ("2H2O") is dropped: the
// balancer computes its own.
//
// Errors (all *SplitError, matching ErrSplit, except Normalize failures):
//   - ErrSeparatorCount when Separator is missing or repeated.
//   - ErrEmptySide when either side is empty.
//   - ErrEmptyCompound when a side contains an empty term or a bare number.
//   - formula.ErrUnsupportedNotation (via Normalize) for charges/isotopes.
//
// Complexity: O(n).
func Split(raw string) (Equation, error) {
	s, err := Normalize(raw)
	if err != nil {
		return Equation{}, err
	}

	switch n := strings.Count(s, Separator); {
	case n == 0:
		return Equation{}, splitErrorf(s, "%w (found none in %q; accepted: %s)", ErrSeparatorCount, s, acceptedArrows)
	case n > 1:
		return Equation{}, splitErrorf(s, "%w (found %d in %q)", ErrSeparatorCount, n, s)
	}
	left, right, _ := strings.Cut(s, Separator)
	if left == "" {
		return Equation{}, splitErrorf(s, "%w: no reactants in %q", ErrEmptySide, s)
	}
	if right == "" {
		return Equation{}, splitErrorf(s, "%w: no products in %q", ErrEmptySide, s)
	}

	reactants, err := splitTerms(s, left)
	if err != nil {
		return Equation{}, err
	}
	products, err := splitTerms(s, right)
	if err != nil {
		return Equation{}, err
	}

	return Equation{Reactants: reactants, Products: products}, nil
}

// splitTerms splits one side on TermSeparator, strips leading coefficients
// and rejects empty terms.
func splitTerms(eq, side string) ([]string, error) {
	terms := strings.Split(side, TermSeparator)
	for i, t := range terms {
		t = strings.TrimLeft(t, "0123456789")
		if t == "" {
			return nil, splitErrorf(eq, "%w at position %d in %q", ErrEmptyCompound, i, side)
		}
		terms[i] = t
	}

	return terms, nil
}
