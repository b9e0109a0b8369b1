// Package chembalance balances chemical equations with exact arithmetic.
//
// What is chembalance?
//
//	A small, deterministic, pure-Go pipeline that turns an unbalanced
//	equation string into the minimal positive integer coefficients:
//		• Formula parsing: nested (…) and […] groups with subscripts
//		• Equation splitting: LaTeX, Unicode and ASCII arrow notations
//		• Stoichiometric matrices: elements × compounds, reactants negative
//		• Exact null space: Gauss–Jordan over math/big rationals, no floats
//		• Formatting: LaTeX, plain and Unicode renderings
//
// Under the hood, everything is organized under these subpackages:
//
//	formula/  — element symbols, subscripts, nested groups → ElementCount
//	equation/ — normalisation, splitting into sides, formatting results
//	matrix/   — integer Dense, exact Rational, RREF, null space, MatVec
//	builder/  — stoichiometric System (rows = elements, cols = compounds)
//	solver/   — null-space vector → irreducible positive integers
//	balance/  — one-call pipeline, staged errors, verification, batches
//	codec/    — text, JSON, YAML, CBOR and MessagePack report encodings
//	config/   — YAML / JSONC configuration for the command-line tool
//
// Quick example:
//
//	res, err := balance.Balance("Fe + O2 --> Fe2O3")
//	// res.Balanced == `4Fe+3O2\to2Fe2O3`
//
//	go install github.com/katalvlaran/chembalance/cmd/chembalance@latest
package chembalance
