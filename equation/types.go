// SPDX-License-Identifier: MIT

package equation

import "strings"

// Canonical tokens produced by Normalize.
const (
	// Separator divides reactants from products.
	Separator = "-->"

	// TermSeparator divides compounds on the same side.
	TermSeparator = "+"
)

// Equation is an ordered list of reactant formulas followed by product
// formulas. Invariant (enforced by Split): both sides are non-empty and no
// formula is empty or contains whitespace.
type Equation struct {
	Reactants []string
	Products  []string
}

// Compounds returns reactants followed by products. This is the column order
// of every matrix derived from the equation.
func (e Equation) Compounds() []string {
	out := make([]string, 0, len(e.Reactants)+len(e.Products))
	out = append(out, e.Reactants...)

	return append(out, e.Products...)
}

// Len returns the total number of compounds.
func (e Equation) Len() int {
	return len(e.Reactants) + len(e.Products)
}

// String renders the unbalanced equation in canonical form.
func (e Equation) String() string {
	return strings.Join(e.Reactants, TermSeparator) + Separator + strings.Join(e.Products, TermSeparator)
}
