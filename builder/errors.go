// SPDX-License-Identifier: MIT
// Package: chembalance/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Formula failures are propagated unchanged underneath the "Build" context,
//     so errors.Is(err, formula.ErrParse) keeps working.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptySide indicates that the reactant or product list is empty.
var ErrEmptySide = errors.New("builder: equation side is empty")

// ErrUnknownOrder indicates an unrecognised element-order name.
var ErrUnknownOrder = errors.New("builder: unknown element order")

// Method names used as error prefixes.
const (
	methodBuild         = "Build"
	methodFromCompounds = "FromCompounds"
)

// builderErrorf prefixes err with the method context, keeping it matchable.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
