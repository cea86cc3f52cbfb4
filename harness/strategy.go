package harness

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chiplab/harnessclock/signal"
)

// A Strategy decides how every registered clock and reset line is driven
// from the one external reference bundle. Instantiate is called exactly once
// per elaboration, after the request phase has ended. Either every requested
// bundle comes out driven or the call fails and elaboration aborts; there is
// no partial-success state.
type Strategy interface {
	// Name returns the configuration name the strategy is registered under.
	Name() string

	// Instantiate drives the clock and reset of every request from the
	// reference bundle.
	Instantiate(ref *signal.Bundle, requests []ClockRequest) error
}

// A StrategyFactory builds a fresh strategy instance for one elaboration
// run.
type StrategyFactory func() Strategy

var (
	strategyMu        sync.Mutex
	strategyFactories = make(map[string]StrategyFactory)
)

// RegisterStrategy makes a strategy available under a configuration name.
// Registering the same name again overrides the previous factory, so layered
// configurations can replace built-in strategies.
func RegisterStrategy(name string, factory StrategyFactory) {
	if name == "" {
		panic("strategy name must not be empty")
	}
	if factory == nil {
		panic("strategy factory must not be nil")
	}

	strategyMu.Lock()
	defer strategyMu.Unlock()

	strategyFactories[name] = factory
}

// NewStrategy builds the strategy registered under name.
func NewStrategy(name string) (Strategy, error) {
	strategyMu.Lock()
	factory, exists := strategyFactories[name]
	strategyMu.Unlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q (known: %v)",
			ErrUnknownStrategy, name, StrategyNames())
	}

	return factory(), nil
}

// StrategyNames lists the registered strategy names in sorted order.
func StrategyNames() []string {
	strategyMu.Lock()
	defer strategyMu.Unlock()

	names := make([]string, 0, len(strategyFactories))
	for name := range strategyFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
