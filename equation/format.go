// SPDX-License-Identifier: MIT

package equation

import (
	"fmt"
	"strconv"
	"strings"
)

// Style selects the separators used by Format.
type Style int

const (
	// StyleLaTeX renders "2H2+O2\to2H2O" (default).
	StyleLaTeX Style = iota
	// StylePlain renders "2H2+O2-->2H2O".
	StylePlain
	// StyleUnicode renders "2H2 + O2 → 2H2O".
	StyleUnicode
)

// styleNames is indexed by Style.
var styleNames = [...]string{"latex", "plain", "unicode"}

// String returns the configuration name of the style.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return "Style(" + strconv.Itoa(int(s)) + ")"
	}

	return styleNames[s]
}

// ParseStyle resolves a configuration name ("latex", "plain", "unicode").
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if strings.EqualFold(name, n) {
			return Style(i), nil
		}
	}

	return StyleLaTeX, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// separators returns the term and side separators for s.
func (s Style) separators() (term, arrow string) {
	switch s {
	case StylePlain:
		return TermSeparator, Separator
	case StyleUnicode:
		return " + ", " → "
	default:
		return TermSeparator, `\to`
	}
}

// Format renders eq with the aligned coefficients (reactants first).
// A coefficient of 1 is elided. Format performs no validation beyond the
// alignment precondition; a length mismatch is a programmer error and panics.
//
// Complexity: O(total formula length).
func Format(eq Equation, coeffs []int64, style Style) string {
	if len(coeffs) != eq.Len() {
		panic(fmt.Sprintf("equation: Format: %d coefficients for %d compounds", len(coeffs), eq.Len()))
	}
	term, arrow := style.separators()

	var sb strings.Builder
	writeSide(&sb, eq.Reactants, coeffs[:len(eq.Reactants)], term)
	sb.WriteString(arrow)
	writeSide(&sb, eq.Products, coeffs[len(eq.Reactants):], term)

	return sb.String()
}

func writeSide(sb *strings.Builder, compounds []string, coeffs []int64, term string) {
	for i, c := range compounds {
		if i > 0 {
			sb.WriteString(term)
		}
		if coeffs[i] != 1 {
			sb.WriteString(strconv.FormatInt(coeffs[i], 10))
		}
		sb.WriteString(c)
	}
}
