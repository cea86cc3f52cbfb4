package signal

import (
	"math"

	"github.com/chiplab/harnessclock/timing"
)

// SquareWave is an ideal oscillator output. It starts low at time zero and
// toggles every half period, independent of any other signal. The timing is
// continuous: edges are not aligned to any discrete simulation step.
type SquareWave struct {
	Freq timing.Freq
}

// ValueAt returns the oscillator level at time t.
func (w SquareWave) ValueAt(t timing.VTimeInSec) bool {
	if t < 0 {
		return false
	}

	halfPeriods := math.Floor(float64(t) / float64(w.Freq.HalfPeriod()))
	return math.Mod(halfPeriods, 2) == 1
}

// Alias mirrors another signal with zero skew and zero delay. It is the
// combinational passthrough used when a registered clock is sourced directly
// from the harness reference.
type Alias struct {
	Of *Signal
}

// ValueAt returns the aliased signal's value at time t.
func (w Alias) ValueAt(t timing.VTimeInSec) bool {
	return w.Of.ValueAt(t)
}

// Level holds a signal at a constant value.
type Level bool

// ValueAt returns the constant level.
func (w Level) ValueAt(timing.VTimeInSec) bool {
	return bool(w)
}
