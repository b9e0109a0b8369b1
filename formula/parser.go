// SPDX-License-Identifier: MIT
// Package formula: recursive-descent formula scanner.
//
// Implementation:
//   - Stage 1: scan the span left to right at the current nesting level.
//   - Stage 2: on an opener, recurse into the span and receive the sub-count
//     plus the index of its closer; read the group subscript after it.
//   - Stage 3: on an element symbol, read its subscript and merge.
//   - Stage 4: at the top level, a hydrate dot ends the span; every
//     following segment is scaled by its leading multiplier and merged.
//   - Stage 5: reject any empty segment.
//
// Determinism:
//   - Compound.Order records symbols in textual order of first occurrence.

package formula

import (
	"math"
	"strconv"
	"strings"
)

// group delimiters
const (
	openParen    = '('
	closeParen   = ')'
	openBracket  = '['
	closeBracket = ']'
	chargeMarker = '^'
	noCloser     = 0 // top level: no closer expected
)

// hydrateDots separate the parts of an adduct such as "CuSO4·5H2O".
// Multi-byte spellings are matched as UTF-8 prefixes.
var hydrateDots = []string{"·", "⋅", "•", "∙", "*", "."}

// Parse returns the element counts of a single compound formula.
// The formula must not contain whitespace; callers splitting whole equations
// strip it beforehand.
//
// Errors:
//   - ErrUnterminatedGroup, ErrMismatchedGroup, ErrZeroCount,
//     ErrCountOverflow, ErrUnsupportedNotation, ErrMisplacedDot,
//     ErrNoElements (all wrapped in *ParseError and matching ErrParse).
//
// Complexity:
//   - Time O(n + d·k), Space O(d·k) for nesting depth d.
func Parse(src string) (ElementCount, error) {
	c, err := ParseCompound(src)
	if err != nil {
		return nil, err
	}

	return c.Counts, nil
}

// ParseCompound parses src and returns it as a Compound with counts and
// first-appearance element order.
//
// Hydrates and other adducts are accepted: "CuSO4·5H2O" (or "*", ".")
// yields the counts of CuSO4 plus five times those of H2O.
func ParseCompound(src string) (Compound, error) {
	p := parser{src: src, seen: make(map[string]bool)}

	// At the top level span stops only at a hydrate dot or the end of input.
	counts, end, err := p.span(0, noCloser)
	if err != nil {
		return Compound{}, err
	}
	if len(counts) == 0 {
		return Compound{}, parseErrorf(src, 0, ErrNoElements)
	}

	for end < len(src) {
		dot := end
		mult, next, err := p.subscript(dot + hydrateDotLen(src, dot))
		if err != nil {
			return Compound{}, err
		}
		var part ElementCount
		if part, end, err = p.span(next, noCloser); err != nil {
			return Compound{}, err
		}
		if len(part) == 0 {
			return Compound{}, parseErrorf(src, dot, ErrNoElements)
		}
		for sym, n := range part {
			scaled, ok := mulInt(n, mult)
			if !ok {
				return Compound{}, parseErrorf(src, next, ErrCountOverflow)
			}
			if err = counts.add(sym, scaled); err != nil {
				return Compound{}, parseErrorf(src, dot, err)
			}
		}
	}

	return Compound{Formula: src, Counts: counts, Order: p.order}, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(src string) ElementCount {
	ec, err := Parse(src)
	if err != nil {
		panic(err)
	}

	return ec
}

// parser holds the per-call scanning state; it is never shared.
type parser struct {
	src   string
	order []string
	seen  map[string]bool
}

// span scans src[i:] until the matching closer, or at the top level until a
// hydrate dot or the end of input. It returns the merged counts and the index
// where scanning stopped (len(src) when input ran out).
func (p *parser) span(i int, closer byte) (ElementCount, int, error) {
	counts := make(ElementCount)
	src := p.src

	for i < len(src) {
		ch := src[i]
		switch {
		case ch == openParen || ch == openBracket:
			want := byte(closeParen)
			if ch == openBracket {
				want = closeBracket
			}
			sub, end, err := p.span(i+1, want)
			if err != nil {
				return nil, 0, err
			}
			if end >= len(src) {
				return nil, 0, parseErrorf(src, i, ErrUnterminatedGroup)
			}
			mult, next, err := p.subscript(end + 1)
			if err != nil {
				return nil, 0, err
			}
			for sym, n := range sub {
				scaled, ok := mulInt(n, mult)
				if !ok {
					return nil, 0, parseErrorf(src, end+1, ErrCountOverflow)
				}
				if err = counts.add(sym, scaled); err != nil {
					return nil, 0, parseErrorf(src, i, err)
				}
			}
			i = next

		case ch == closeParen || ch == closeBracket:
			if ch == closer {
				return counts, i, nil
			}
			if closer != noCloser {
				return nil, 0, parseErrorf(src, i, ErrMismatchedGroup)
			}
			i++ // stray closer at top level

		case ch == chargeMarker:
			return nil, 0, parseErrorf(src, i, ErrUnsupportedNotation)

		case hydrateDotLen(src, i) > 0:
			if closer != noCloser {
				return nil, 0, parseErrorf(src, i, ErrMisplacedDot)
			}
			return counts, i, nil

		case isUpper(ch):
			start := i
			i++
			if i < len(src) && isLower(src[i]) {
				i++
			}
			sym := src[start:i]
			n, next, err := p.subscript(i)
			if err != nil {
				return nil, 0, err
			}
			if err = counts.add(sym, n); err != nil {
				return nil, 0, parseErrorf(src, start, err)
			}
			if !p.seen[sym] {
				p.seen[sym] = true
				p.order = append(p.order, sym)
			}
			i = next

		default:
			i++
		}
	}

	// Reaching the end inside a group means the closer never came.
	return counts, len(src), nil
}

// subscript reads a run of decimal digits starting at i.
// An empty run means 1; an explicit zero is rejected.
func (p *parser) subscript(i int) (int, int, error) {
	start := i
	for i < len(p.src) && isDigit(p.src[i]) {
		i++
	}
	if i == start {
		return 1, i, nil
	}
	n, err := strconv.Atoi(p.src[start:i])
	if err != nil {
		return 0, 0, parseErrorf(p.src, start, ErrCountOverflow)
	}
	if n == 0 {
		return 0, 0, parseErrorf(p.src, start, ErrZeroCount)
	}

	return n, i, nil
}

// add merges n atoms of sym, guarding against int overflow.
func (ec ElementCount) add(sym string, n int) error {
	sum, ok := addInt(ec[sym], n)
	if !ok {
		return ErrCountOverflow
	}
	ec[sym] = sum

	return nil
}

func mulInt(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}

	return a * b, true
}

func addInt(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}

	return a + b, true
}

// hydrateDotLen returns the byte length of the hydrate dot at src[i:], or 0.
func hydrateDotLen(src string, i int) int {
	for _, dot := range hydrateDots {
		if strings.HasPrefix(src[i:], dot) {
			return len(dot)
		}
	}

	return 0
}

func isUpper(ch byte) bool { return 'A' <= ch && ch <= 'Z' }
func isLower(ch byte) bool { return 'a' <= ch && ch <= 'z' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }
