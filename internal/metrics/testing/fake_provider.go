// Package testing provides test doubles for the metrics package.
package testing

import (
	"github.com/Vazpera/supermarket/internal/metrics"
)

// FakeProvider simulates snapshot acquisition for testing.
// Each Acquire returns a copy of the configured snapshot (or the configured
// error) and records the call for assertions.
type FakeProvider struct {
	Snapshot *metrics.Snapshot
	Err      error

	// FailAfter, when > 0, makes Acquire succeed that many times and then
	// return Err on every later call.
	FailAfter int

	// Tracking for assertions
	AcquireCalls int
}

// NewFakeProvider creates a fake provider returning the given snapshot.
func NewFakeProvider(snap *metrics.Snapshot) *FakeProvider {
	return &FakeProvider{Snapshot: snap}
}

// Acquire returns a fresh copy of the configured snapshot so tests mirror
// the real provider's never-share-across-cycles behavior.
func (p *FakeProvider) Acquire() (*metrics.Snapshot, error) {
	p.AcquireCalls++

	if p.Err != nil && (p.FailAfter <= 0 || p.AcquireCalls > p.FailAfter) {
		return nil, p.Err
	}

	snap := *p.Snapshot
	snap.Processes = make([]metrics.ProcessInfo, len(p.Snapshot.Processes))
	copy(snap.Processes, p.Snapshot.Processes)
	return &snap, nil
}
