// SPDX-License-Identifier: MIT

package formula

import (
	"sort"
	"strconv"
	"strings"
)

// ElementCount maps an element symbol to its atom count.
// Invariant: every stored count is >= 1; absence means zero.
// A fresh ElementCount is created per Parse call and owned by the caller.
type ElementCount map[string]int

// Count returns the number of atoms of sym (0 when absent).
// Complexity: O(1).
func (ec ElementCount) Count(sym string) int {
	return ec[sym]
}

// Elements returns the element symbols in ascending lexical order.
// Complexity: O(k log k) for k symbols.
func (ec ElementCount) Elements() []string {
	out := make([]string, 0, len(ec))
	for sym := range ec {
		out = append(out, sym)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy.
func (ec ElementCount) Clone() ElementCount {
	out := make(ElementCount, len(ec))
	for sym, n := range ec {
		out[sym] = n
	}

	return out
}

// Equal reports whether both maps hold the same symbols with the same counts.
func (ec ElementCount) Equal(other ElementCount) bool {
	if len(ec) != len(other) {
		return false
	}
	for sym, n := range ec {
		if other[sym] != n {
			return false
		}
	}

	return true
}

// String renders the counts in lexical symbol order with unit counts elided,
// e.g. {H:2, O:1} → "H2O". Intended for logs and test failure messages.
func (ec ElementCount) String() string {
	var sb strings.Builder
	for _, sym := range ec.Elements() {
		sb.WriteString(sym)
		if n := ec[sym]; n != 1 {
			sb.WriteString(strconv.Itoa(n))
		}
	}

	return sb.String()
}

// Compound is a formula string together with its parsed counts.
type Compound struct {
	// Formula is the text the compound was parsed from.
	Formula string

	// Counts holds the atom count per element.
	Counts ElementCount

	// Order lists the symbols of Counts in the order they first appear in
	// Formula, scanning groups in place. Builders use it for stable rows.
	Order []string
}
