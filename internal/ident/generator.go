package ident

import (
	"strconv"
	"sync"
	"time"
)

// Generator mints entity identifiers in the persisted data's historical form:
// the creation time in unix milliseconds, as a decimal string. Calls landing
// in the same millisecond bump monotonically so IDs stay unique.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewGenerator constructs a generator using the supplied time source. When
// now is nil, time.Now is used.
func NewGenerator(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Next returns the next unique identifier.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return strconv.FormatInt(ms, 10)
}

// Now exposes the generator's time source, so timestamps recorded next to a
// generated ID come from the same clock.
func (g *Generator) Now() time.Time {
	return g.now()
}
