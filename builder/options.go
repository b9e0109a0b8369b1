// SPDX-License-Identifier: MIT
// Package: chembalance/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Build itself never panics.

package builder

import (
	"fmt"
	"strings"
)

// ElementOrder selects how matrix rows are ordered.
type ElementOrder int

const (
	// OrderFirstSeen lists elements by first appearance, reactants then products.
	OrderFirstSeen ElementOrder = iota
	// OrderAlphabetical lists elements in ascending lexical order.
	OrderAlphabetical
)

var orderNames = [...]string{"first-seen", "alphabetical"}

// String returns the configuration name of the order.
func (o ElementOrder) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("ElementOrder(%d)", int(o))
	}

	return orderNames[o]
}

// ParseElementOrder resolves "first-seen" or "alphabetical".
func ParseElementOrder(name string) (ElementOrder, error) {
	for i, n := range orderNames {
		if strings.EqualFold(name, n) {
			return ElementOrder(i), nil
		}
	}

	return OrderFirstSeen, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
}

// Option customizes Build by mutating a builderConfig before construction.
type Option func(*builderConfig)

// builderConfig is the single source of truth for builder knobs.
type builderConfig struct {
	order ElementOrder
}

// newBuilderConfig applies opts over deterministic defaults, last-wins.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{order: OrderFirstSeen}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithElementOrder sets the row ordering policy.
// Panics on an unknown value (programmer error).
func WithElementOrder(o ElementOrder) Option {
	if o < OrderFirstSeen || o > OrderAlphabetical {
		panic(fmt.Sprintf("builder: WithElementOrder(%d)", int(o)))
	}

	return func(c *builderConfig) { c.order = o }
}
