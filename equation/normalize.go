// SPDX-License-Identifier: MIT

package equation

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/katalvlaran/chembalance/formula"
)

// unsupportedMarks are charge and isotope markers. They must be rejected
// before NFKC folding, which would turn "Fe³⁺" into the misleading "Fe3+".
const unsupportedMarks = "^⁰¹²³⁴⁵⁶⁷⁸⁹⁺⁻"

// arrowReplacer maps every accepted arrow spelling to Separator.
// Comparisons run in argument order at each position, so longer spellings
// must precede their prefixes ("<=>" before "=", "-->" before "->").
var arrowReplacer = strings.NewReplacer(
	`\longleftrightarrow`, Separator,
	`\longrightarrow`, Separator,
	`\Longrightarrow`, Separator,
	`\leftrightarrow`, Separator,
	`\rightleftharpoons`, Separator,
	`\rightleftarrows`, Separator,
	`\rightarrow`, Separator,
	`\Rightarrow`, Separator,
	`\to`, Separator,
	"<=>", Separator,
	"<->", Separator,
	"==>", Separator,
	"-->", Separator,
	"->", Separator,
	"=>", Separator,
	"⟶", Separator,
	"⟹", Separator,
	"⟷", Separator,
	"→", Separator,
	"⇒", Separator,
	"↔", Separator,
	"⇌", Separator,
	"⇋", Separator,
	"⇄", Separator,
	"=", Separator,
)

// extensibleArrow matches amsmath/mhchem arrows with reaction conditions,
// such as \xrightarrow[\Delta]{H_2O}. The conditions are dropped with the arrow.
var extensibleArrow = regexp.MustCompile(
	`\\x(?:rightarrow|leftrightarrow|rightleftharpoons|Rightarrow)(?:\[[^\]]*\])?(?:\{(?:[^{}]|\{[^{}]*\})*\})?`)

// latexCommand matches leftover LaTeX/MathLive commands such as \mathrm or \ce.
var latexCommand = regexp.MustCompile(`\\[A-Za-z]+`)

// Normalize prepares raw equation text for splitting.
//
// Implementation:
//   - Stage 1: reject charge/isotope markers (formula.ErrUnsupportedNotation).
//   - Stage 2: NFKC-fold compatibility characters (subscript digits, full-width letters).
//   - Stage 3: map arrow spellings to Separator; extensible arrows lose
//     their condition text.
//   - Stage 4: drop LaTeX commands, '_', '{', '}' and all whitespace.
//
// Complexity: O(n) in the input length.
func Normalize(raw string) (string, error) {
	if i := strings.IndexAny(raw, unsupportedMarks); i >= 0 {
		return "", &formula.ParseError{Formula: raw, Offset: i, Err: formula.ErrUnsupportedNotation}
	}

	s := norm.NFKC.String(raw)
	s = extensibleArrow.ReplaceAllString(s, Separator)
	s = arrowReplacer.Replace(s)
	s = latexCommand.ReplaceAllString(s, "")

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' || r == '{' || r == '}' {
			return -1
		}
		return r
	}, s), nil
}
