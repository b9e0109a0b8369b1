// Package equation turns raw equation text into ordered reactant and product
// formulas, and renders balanced results back into text.
//
// Input handling (Normalize):
//
//	Charge and isotope markers are rejected up front. Unicode compatibility
//	forms are folded (NFKC), so "H₂O" reads as "H2O". Every supported arrow
//	("-->", "->", "=", "→", "⟹", "↔", "\longrightarrow", "\leftrightarrow",
//	"\to", ...) becomes the canonical Separator; "\xrightarrow[..]{..}"
//	does too, dropping its condition text. LaTeX/MathLive noise ("\mathrm",
//	"_", braces, whitespace) is dropped.
//
// Splitting (Split):
//
//	The normalized text must contain Separator exactly once; each side is
//	split on TermSeparator into compound formulas. A leading coefficient on a
//	term ("2H2O") is stripped, so already balanced input balances to itself.
//	Order is preserved: it fixes the column order of the stoichiometric
//	matrix downstream.
//
// Formatting (Format):
//
//	Each compound is prefixed by its coefficient (1 is elided), same-side
//	compounds are joined by "+" and the sides by the Style's arrow.
package equation
