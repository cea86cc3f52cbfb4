package harness

import (
	"errors"
	"fmt"

	"github.com/chiplab/harnessclock/timing"
)

var (
	// ErrEmptyClockName indicates that a clock was requested without a name.
	ErrEmptyClockName = errors.New("harness: clock name must not be empty")

	// ErrNonPositiveFrequency indicates that a clock was requested at a
	// zero, negative, or non-finite frequency, which is not meaningful.
	ErrNonPositiveFrequency = errors.New(
		"harness: frequency must be a positive, finite value")

	// ErrRegistrySealed indicates that a clock was requested after the
	// request phase ended. All requests must happen before the harness
	// clocks are instantiated.
	ErrRegistrySealed = errors.New("harness: clock registry is sealed")

	// ErrAlreadyInstantiated indicates a second call to
	// InstantiateHarnessClocks. The wiring step runs exactly once per
	// elaboration.
	ErrAlreadyInstantiated = errors.New(
		"harness: harness clocks are already instantiated")

	// ErrUndrivenReference indicates that the reference bundle handed to the
	// wiring step does not have both of its lines driven.
	ErrUndrivenReference = errors.New(
		"harness: reference clock bundle must be fully driven")

	// ErrUnknownStrategy indicates that no factory is registered under the
	// requested strategy name.
	ErrUnknownStrategy = errors.New("harness: unknown clock source strategy")
)

// ConfigurationMismatchError reports a re-request of an existing clock name
// at a different frequency. It indicates a bug in the calling graph
// construction and aborts elaboration.
type ConfigurationMismatchError struct {
	Name       string
	Registered timing.Freq
	Requested  timing.Freq
}

func (e *ConfigurationMismatchError) Error() string {
	return fmt.Sprintf(
		"harness: clock %q requested at %s but already registered at %s",
		e.Name, e.Requested, e.Registered)
}

// FrequencyMismatchError reports a registered frequency that differs from
// the first registered frequency under the single-source strategy.
type FrequencyMismatchError struct {
	Name string
	Got  timing.Freq
	Want timing.Freq
}

func (e *FrequencyMismatchError) Error() string {
	return fmt.Sprintf(
		"harness: clock %q runs at %s, expected %s to match the first registered clock",
		e.Name, e.Got, e.Want)
}
