// Package simple mints sequential, human-readable ids. Handy for tests and
// the demo driver, where stable ids matter more than uniqueness across runs.
package simple

import (
	"context"
	"fmt"
	"sync/atomic"
)

type Generator struct {
	prefix  string
	counter atomic.Int64
}

func New(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

func (g *Generator) GetID(_ context.Context) (string, error) {
	return fmt.Sprintf("%s-%03d", g.prefix, g.counter.Add(1)), nil
}
