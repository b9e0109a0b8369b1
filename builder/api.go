// SPDX-License-Identifier: MIT
// Package: chembalance/builder
//
// api.go — System and its constructors.
//
// Design contract:
//   - Build parses; FromCompounds assembles. Both resolve options once.
//   - Determinism: same compounds and options ⇒ identical rows and matrix.
//   - Safety: never panic; return sentinel or propagated parse errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chembalance/equation"
	"github.com/katalvlaran/chembalance/formula"
	"github.com/katalvlaran/chembalance/matrix"
)

// System is the stoichiometric system of one equation.
// Invariants: Matrix has len(Elements) rows and len(Reactants)+len(Products)
// columns; row i belongs to Elements[i]; columns follow Compounds().
type System struct {
	Elements  []string
	Reactants []formula.Compound
	Products  []formula.Compound
	Matrix    *matrix.Dense
}

// Compounds returns reactants followed by products (column order).
func (s *System) Compounds() []formula.Compound {
	out := make([]formula.Compound, 0, len(s.Reactants)+len(s.Products))
	out = append(out, s.Reactants...)

	return append(out, s.Products...)
}

// ElementIndex returns the row of sym, or false when sym does not occur.
func (s *System) ElementIndex(sym string) (int, bool) {
	for i, e := range s.Elements {
		if e == sym {
			return i, true
		}
	}

	return 0, false
}

// Build parses every compound of eq and assembles its System.
//
// Errors:
//   - ErrEmptySide when eq has no reactants or no products.
//   - formula errors (matching formula.ErrParse) for malformed compounds,
//     wrapped with the compound position.
//
// Complexity: O(n) parsing over the total formula length plus FromCompounds.
func Build(eq equation.Equation, opts ...Option) (*System, error) {
	if len(eq.Reactants) == 0 || len(eq.Products) == 0 {
		return nil, builderErrorf(methodBuild, ErrEmptySide)
	}

	reactants, err := parseAll(eq.Reactants, 0)
	if err != nil {
		return nil, builderErrorf(methodBuild, err)
	}
	products, err := parseAll(eq.Products, len(eq.Reactants))
	if err != nil {
		return nil, builderErrorf(methodBuild, err)
	}

	return FromCompounds(reactants, products, opts...)
}

// parseAll parses formulas; base offsets the reported column index.
func parseAll(formulas []string, base int) ([]formula.Compound, error) {
	out := make([]formula.Compound, len(formulas))
	for i, f := range formulas {
		c, err := formula.ParseCompound(f)
		if err != nil {
			return nil, fmt.Errorf("compound %d: %w", base+i, err)
		}
		out[i] = c
	}

	return out, nil
}

// FromCompounds assembles the System of already parsed compounds.
//
// Implementation:
//   - Stage 1: discover distinct elements in the configured order.
//   - Stage 2: allocate an E×C Dense (zeros mean "absent").
//   - Stage 3: write −count for reactant columns, +count for product columns.
//
// Errors:
//   - ErrEmptySide when either list is empty.
//   - matrix allocation errors (only reachable for compounds without elements).
//
// Complexity: O(E·C).
func FromCompounds(reactants, products []formula.Compound, opts ...Option) (*System, error) {
	if len(reactants) == 0 || len(products) == 0 {
		return nil, builderErrorf(methodFromCompounds, ErrEmptySide)
	}
	cfg := newBuilderConfig(opts...)

	sys := &System{Reactants: reactants, Products: products}
	sys.Elements = discoverElements(sys.Compounds(), cfg.order)

	m, err := matrix.NewDense(len(sys.Elements), len(reactants)+len(products))
	if err != nil {
		return nil, builderErrorf(methodFromCompounds, err)
	}

	for row, sym := range sys.Elements {
		for col, c := range reactants {
			if n := c.Counts[sym]; n != 0 {
				_ = m.Set(row, col, -int64(n)) // indices are in range by construction
			}
		}
		for k, c := range products {
			if n := c.Counts[sym]; n != 0 {
				_ = m.Set(row, len(reactants)+k, int64(n))
			}
		}
	}
	sys.Matrix = m

	return sys, nil
}

// discoverElements returns every distinct symbol of compounds in the given order.
func discoverElements(compounds []formula.Compound, order ElementOrder) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range compounds {
		syms := c.Order
		if len(syms) == 0 {
			// Compounds built by hand may lack Order; fall back to sorted keys.
			syms = c.Counts.Elements()
		}
		for _, sym := range syms {
			if !seen[sym] {
				seen[sym] = true
				out = append(out, sym)
			}
		}
	}
	if order == OrderAlphabetical {
		sort.Strings(out)
	}

	return out
}
