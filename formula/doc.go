// Package formula parses chemical formulas into element counts.
//
// A formula is scanned left to right:
//
//   - An element symbol is one uppercase ASCII letter optionally followed by
//     one lowercase letter ("O", "Na"), then an optional decimal subscript
//     (default 1).
//   - "(" or "[" opens a group that is parsed recursively up to its matching
//     closer; the subscript after the closer multiplies every count inside.
//     Groups nest arbitrarily: "K4[Fe(CN)6]".
//   - At the top level a hydrate dot ("·", "⋅", "•", "∙", "*" or ".") starts
//     an adduct part whose leading number multiplies it: "CuSO4·5H2O".
//   - Anything else (stray formatting artifacts from rendered input) is
//     skipped without effect.
//
// Counts merge additively, so "CH3COOH" yields {C:2, H:4, O:2}. Zero counts
// are never stored: a key present in an ElementCount always maps to >= 1.
//
// Errors:
//
//	All failures are *ParseError values carrying the offending formula and
//	byte offset; they match ErrParse and the precise sentinel. Unterminated
//	groups, mismatched closers, zero subscripts, overflowing counts,
//	charge/isotope markers ("^"), hydrate dots inside groups and formulas
//	or adduct parts without any element are rejected.
//
// Complexity:
//
//	Parse runs in O(n + d·k) for a formula of length n, nesting depth d and
//	k distinct elements per group (each group merge touches its own keys).
package formula
