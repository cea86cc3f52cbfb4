package harness

import (
	"fmt"
	"strings"

	"github.com/chiplab/harnessclock/signal"
)

// OscillatorModel is the simulation-only timing-model fragment emitted for
// one registered clock by the absolute-frequency strategy. The fragment is
// an opaque payload to the rest of the generator: it promises a module with
// `power` and `gate` inputs and a `clk` output that toggles every
// HalfPeriodNs nanoseconds while powered and ungated. It is never re-parsed
// by this component.
type OscillatorModel struct {
	Clock        string
	Module       string
	HalfPeriodNs float64
}

// Render produces the Verilog source of the oscillator model. The clock
// register initializes low and rises at the first half-period boundary.
func (m OscillatorModel) Render() string {
	return fmt.Sprintf(`// Ideal oscillator for clock "%s". Simulation only.
module %s (
    input power,
    input gate,
    output clk
);
  timeunit 1ns;
  timeprecision 1ps;
  reg clk_i = 1'b0;
  always #%g clk_i = ~clk_i & (power & ~gate);
  assign clk = clk_i;
endmodule
`, m.Clock, m.Module, m.HalfPeriodNs)
}

// AbsoluteFreqStrategy drives every registered clock from its own ideal
// oscillator running at exactly the requested frequency. Only the reference
// bundle's reset is consumed; the reference clock's frequency is ignored
// entirely.
//
// The oscillators are continuous-time models. This strategy is only valid
// under event-driven simulation that can place edges between discrete steps;
// it cannot be used with fixed-step cycle simulators, and its emitted
// fragments must not be fed to a synthesis backend.
type AbsoluteFreqStrategy struct {
	artifacts []OscillatorModel
}

var _ Strategy = (*AbsoluteFreqStrategy)(nil)

// NewAbsoluteFreqStrategy creates the strategy with no artifacts emitted
// yet.
func NewAbsoluteFreqStrategy() *AbsoluteFreqStrategy {
	return &AbsoluteFreqStrategy{}
}

// Name returns "absolute_freq".
func (s *AbsoluteFreqStrategy) Name() string {
	return "absolute_freq"
}

// Instantiate creates one oscillator per request. Each clock line gets an
// independent square wave at the requested frequency; each reset line is
// wired through from the reference reset.
func (s *AbsoluteFreqStrategy) Instantiate(
	ref *signal.Bundle,
	requests []ClockRequest,
) error {
	s.artifacts = nil

	usedModules := make(map[string]bool)
	for _, req := range requests {
		req.Bundle.Clock.Drive(signal.SquareWave{Freq: req.Freq})
		req.Bundle.Reset.Drive(signal.Alias{Of: ref.Reset})

		// Sanitization can map distinct clock names to the same identifier;
		// suffix until the module name is unique.
		module := oscillatorModuleName(req.Name)
		for n := 2; usedModules[module]; n++ {
			module = fmt.Sprintf("%s_%d", oscillatorModuleName(req.Name), n)
		}
		usedModules[module] = true

		s.artifacts = append(s.artifacts, OscillatorModel{
			Clock:        req.Name,
			Module:       module,
			HalfPeriodNs: 1e9 / (2 * float64(req.Freq)),
		})
	}

	return nil
}

// Artifacts returns the oscillator fragments emitted by the last
// Instantiate call, one per registered clock, in registry order.
func (s *AbsoluteFreqStrategy) Artifacts() []OscillatorModel {
	return s.artifacts
}

// oscillatorModuleName derives a Verilog identifier from a clock name.
func oscillatorModuleName(clock string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '_':
			return r
		default:
			return '_'
		}
	}, clock)

	return "ClockSource_" + sanitized
}

func init() {
	RegisterStrategy("absolute_freq", func() Strategy {
		return NewAbsoluteFreqStrategy()
	})
}
