// SPDX-License-Identifier: MIT

package prepare

import "github.com/charmbracelet/log"

// Option configures a Backend.
type Option func(*Backend)

// WithLogger routes progress messages to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("prepare: WithLogger(nil)")
	}
	return func(b *Backend) {
		b.logger = l
	}
}
