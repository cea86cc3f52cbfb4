// Package signal models the boolean-valued clock and reset lines negotiated
// between a generated design and its test harness. A signal starts undriven;
// wiring installs exactly one driver, after which the signal can be sampled
// at any virtual time.
package signal

import (
	"github.com/rs/xid"

	"github.com/chiplab/harnessclock/timing"
)

// A Waveform determines the value of a driven signal over virtual time.
type Waveform interface {
	ValueAt(t timing.VTimeInSec) bool
}

// Signal is a single boolean line. It is created undriven; consumers may
// hold a reference before wiring, but sampling an undriven signal is a
// wiring bug and panics.
type Signal struct {
	id     string
	name   string
	driver Waveform
}

// NewSignal creates an undriven signal with the given name.
func NewSignal(name string) *Signal {
	return &Signal{
		id:   xid.New().String(),
		name: name,
	}
}

// Name returns the name of the signal.
func (s *Signal) Name() string {
	return s.name
}

// ID returns the unique ID of the signal.
func (s *Signal) ID() string {
	return s.id
}

// Driven returns true once a driver has been installed.
func (s *Signal) Driven() bool {
	return s.driver != nil
}

// Drive installs the one driver of the signal. Driving a signal twice, or
// with a nil waveform, panics.
func (s *Signal) Drive(w Waveform) {
	if w == nil {
		panic("cannot drive signal " + s.name + " with a nil waveform")
	}

	if s.driver != nil {
		panic("signal " + s.name + " already has a driver")
	}

	s.driver = w
}

// ValueAt samples the signal at virtual time t.
func (s *Signal) ValueAt(t timing.VTimeInSec) bool {
	if s.driver == nil {
		panic("signal " + s.name + " sampled while undriven")
	}

	return s.driver.ValueAt(t)
}
