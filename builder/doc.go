// Package builder constructs the stoichiometric system of an equation.
//
// Given the reactant and product compounds, Build discovers the set of
// distinct elements (the rows) and fills a matrix.Dense with one column per
// compound, reactants first, products second, in their original order:
//
//	entry(E, C) = −count(E in C)   for a reactant column C
//	entry(E, C) = +count(E in C)   for a product column C
//
// so that a coefficient vector x conserves every element exactly when
// A·x = 0.
//
// Row order is deterministic. The default, OrderFirstSeen, lists elements in
// order of first appearance scanning reactants then products ("H2+O2-->H2O"
// yields rows H, O); OrderAlphabetical sorts symbols lexically.
//
// Complexity: O(E·C) time and memory for E elements and C compounds, plus
// parsing cost; each compound is parsed exactly once.
package builder
