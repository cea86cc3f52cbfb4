// Package harness negotiates the clocks shared between a generated design
// and its simulation test harness. Consumers request named clocks at fixed
// frequencies during the elaboration request phase; a source strategy then
// wires every requested clock from the one external reference bundle.
package harness

import (
	"github.com/chiplab/harnessclock/signal"
	"github.com/chiplab/harnessclock/timing"
)

// ClockRequest is one entry of the clock registry: a named frequency and the
// bundle handed to every consumer that requested it.
type ClockRequest struct {
	Name   string
	Freq   timing.Freq
	Bundle *signal.Bundle
}

// ClockRegistry owns the name -> (frequency, bundle) table built during the
// request phase. Entries are appended in request order, never removed, and
// never change frequency. The registry belongs to one elaboration run.
type ClockRegistry struct {
	order   []string
	entries map[string]*ClockRequest
	sealed  bool
}

// NewClockRegistry creates an empty, unsealed registry.
func NewClockRegistry() *ClockRegistry {
	return &ClockRegistry{
		entries: make(map[string]*ClockRequest),
	}
}

// Request returns the bundle for the named clock, creating a new undriven
// bundle on first request. Repeated requests at the same frequency return
// the same bundle, so independent consumers share one physical clock line.
// A repeated request at a different frequency fails with
// *ConfigurationMismatchError.
func (r *ClockRegistry) Request(
	name string,
	freq timing.Freq,
) (*signal.Bundle, error) {
	if name == "" {
		return nil, ErrEmptyClockName
	}
	if !freq.IsValid() {
		return nil, ErrNonPositiveFrequency
	}
	if r.sealed {
		return nil, ErrRegistrySealed
	}

	if entry, exists := r.entries[name]; exists {
		if entry.Freq != freq {
			return nil, &ConfigurationMismatchError{
				Name:       name,
				Registered: entry.Freq,
				Requested:  freq,
			}
		}
		return entry.Bundle, nil
	}

	entry := &ClockRequest{
		Name:   name,
		Freq:   freq,
		Bundle: signal.NewBundle(name),
	}
	r.order = append(r.order, name)
	r.entries[name] = entry

	return entry.Bundle, nil
}

// Seal ends the request phase. Further Request calls fail with
// ErrRegistrySealed. Sealing twice is a no-op.
func (r *ClockRegistry) Seal() {
	r.sealed = true
}

// Sealed returns true once the request phase has ended.
func (r *ClockRegistry) Sealed() bool {
	return r.sealed
}

// Len returns the number of distinct clocks requested so far.
func (r *ClockRegistry) Len() int {
	return len(r.order)
}

// Requests returns the registered clocks in request order.
func (r *ClockRegistry) Requests() []ClockRequest {
	requests := make([]ClockRequest, 0, len(r.order))
	for _, name := range r.order {
		requests = append(requests, *r.entries[name])
	}

	return requests
}
