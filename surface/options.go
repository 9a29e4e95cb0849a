// SPDX-License-Identifier: MIT

package surface

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Mesh at construction.
type Option func(*Mesh)

// WithLogger routes debug events to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("surface: WithLogger(nil)")
	}
	return func(m *Mesh) {
		m.logger = l
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
