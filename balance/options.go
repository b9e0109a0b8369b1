// SPDX-License-Identifier: MIT

package balance

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/chembalance/builder"
	"github.com/katalvlaran/chembalance/equation"
)

// Option customizes Balance, All and their helpers.
type Option func(*config)

type config struct {
	style  equation.Style
	build  []builder.Option
	logger *slog.Logger
}

// discard is the default logger; the library stays silent unless asked.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newConfig(opts ...Option) config {
	cfg := config{style: equation.StyleLaTeX, logger: discard}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStyle selects the output notation of Result.Balanced.
// Panics on an unknown style.
func WithStyle(s equation.Style) Option {
	if s < equation.StyleLaTeX || s > equation.StyleUnicode {
		panic("balance: WithStyle(" + s.String() + ")")
	}

	return func(c *config) { c.style = s }
}

// WithElementOrder selects the matrix row order (see builder.ElementOrder).
// Panics on an unknown order.
func WithElementOrder(o builder.ElementOrder) Option {
	opt := builder.WithElementOrder(o)

	return func(c *config) { c.build = append(c.build, opt) }
}

// WithLogger routes per-stage debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("balance: WithLogger(nil)")
	}

	return func(c *config) { c.logger = l }
}
