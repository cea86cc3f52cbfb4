// Package timing defines the frequency and virtual-time types shared by the
// clock registry, the source strategies, and the signal model.
package timing

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
)

// Freq defines the type of frequency, in hertz.
type Freq float64

// Defines the unit of frequency
const (
	Hz  Freq = 1
	KHz Freq = 1e3
	MHz Freq = 1e6
	GHz Freq = 1e9
)

// VTimeInSec defines the virtual time in seconds.
type VTimeInSec float64

// ErrBadFrequency indicates that a frequency literal could not be parsed or
// is not a positive value.
var ErrBadFrequency = errors.New("timing: frequency must be a positive value")

// Period returns the time between two consecutive rising edges.
func (f Freq) Period() VTimeInSec {
	if f <= 0 {
		log.Panic("frequency must be positive")
	}
	return VTimeInSec(1.0 / f)
}

// HalfPeriod returns the time between two consecutive edges. An ideal
// oscillator running at f toggles its output every half period.
func (f Freq) HalfPeriod() VTimeInSec {
	return f.Period() / 2
}

// String renders the frequency with the largest unit that keeps the mantissa
// at or above one, e.g. "1GHz", "500MHz", "3.5KHz".
func (f Freq) String() string {
	switch {
	case f >= GHz:
		return trimZeros(float64(f/GHz)) + "GHz"
	case f >= MHz:
		return trimZeros(float64(f/MHz)) + "MHz"
	case f >= KHz:
		return trimZeros(float64(f/KHz)) + "KHz"
	default:
		return trimZeros(float64(f)) + "Hz"
	}
}

func trimZeros(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFreq parses a frequency literal such as "1GHz", "500 MHz", "32khz",
// or a bare number interpreted as hertz. The result must be positive.
func ParseFreq(s string) (Freq, error) {
	text := strings.TrimSpace(s)

	unit := Hz
	lower := strings.ToLower(text)
	switch {
	case strings.HasSuffix(lower, "ghz"):
		unit = GHz
		text = text[:len(text)-3]
	case strings.HasSuffix(lower, "mhz"):
		unit = MHz
		text = text[:len(text)-3]
	case strings.HasSuffix(lower, "khz"):
		unit = KHz
		text = text[:len(text)-3]
	case strings.HasSuffix(lower, "hz"):
		text = text[:len(text)-2]
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadFrequency, s)
	}

	freq := Freq(value) * unit
	if !freq.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrBadFrequency, s)
	}

	return freq, nil
}

// IsValid returns true if the frequency is a positive, finite value.
// ParseFloat happily produces NaN and infinities, neither of which is a
// meaningful clock rate.
func (f Freq) IsValid() bool {
	return f > 0 && !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}
