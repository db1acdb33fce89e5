package testutil

import (
	"sync/atomic"

	"github.com/roach88/rfn/internal/call"
)

// ReleaseProbe counts how many times captured state was released.
// Embed it (by pointer) in test callables, or hand out Hooks for closures.
// Safe for concurrent use.
type ReleaseProbe struct {
	count atomic.Int64
}

// NewReleaseProbe returns a probe with a zero count.
func NewReleaseProbe() *ReleaseProbe {
	return &ReleaseProbe{}
}

// Release records one release. It satisfies call.Releaser.
func (p *ReleaseProbe) Release() {
	p.count.Add(1)
}

// Count returns the number of releases recorded.
func (p *ReleaseProbe) Count() int64 {
	return p.count.Load()
}

// Hook returns Release as a plain func for call.Closure.OnRelease.
func (p *ReleaseProbe) Hook() func() {
	return p.Release
}

var _ call.Releaser = (*ReleaseProbe)(nil)
