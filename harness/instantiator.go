package harness

import (
	"fmt"

	"github.com/chiplab/harnessclock/signal"
	"github.com/chiplab/harnessclock/timing"
)

// Instantiator owns one clock registry and the source strategy for one
// elaboration run. The strategy is injected at construction time and is
// immutable for the run.
//
// Call order: any number of RequestClockBundle calls, then exactly one
// InstantiateHarnessClocks call. The phase boundary is checked: requests
// after instantiation fail with ErrRegistrySealed, and a second
// instantiation fails with ErrAlreadyInstantiated.
type Instantiator struct {
	registry     *ClockRegistry
	strategy     Strategy
	instantiated bool
}

// New creates an instantiator that wires clocks with the given strategy.
func New(strategy Strategy) *Instantiator {
	if strategy == nil {
		panic("instantiator requires a strategy")
	}

	return &Instantiator{
		registry: NewClockRegistry(),
		strategy: strategy,
	}
}

// RequestClockBundle returns the undriven bundle for the named clock,
// registering it on first request. See ClockRegistry.Request.
func (h *Instantiator) RequestClockBundle(
	name string,
	freq timing.Freq,
) (*signal.Bundle, error) {
	return h.registry.Request(name, freq)
}

// InstantiateHarnessClocks seals the registry and lets the strategy drive
// every registered bundle from the reference bundle. It must be called
// exactly once, after all requests for the run have been issued.
func (h *Instantiator) InstantiateHarnessClocks(ref *signal.Bundle) error {
	if h.instantiated {
		return ErrAlreadyInstantiated
	}
	if ref == nil || !ref.Driven() {
		return ErrUndrivenReference
	}

	h.registry.Seal()

	if err := h.strategy.Instantiate(ref, h.registry.Requests()); err != nil {
		return fmt.Errorf("instantiating harness clocks with strategy %q: %w",
			h.strategy.Name(), err)
	}

	h.instantiated = true

	return nil
}

// Registry exposes the clock registry, e.g. for reporting.
func (h *Instantiator) Registry() *ClockRegistry {
	return h.registry
}

// Strategy returns the injected source strategy.
func (h *Instantiator) Strategy() Strategy {
	return h.strategy
}

// Instantiated returns true once the wiring step has completed.
func (h *Instantiator) Instantiated() bool {
	return h.instantiated
}
