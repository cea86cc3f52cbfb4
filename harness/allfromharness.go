package harness

import (
	"github.com/chiplab/harnessclock/signal"
)

// AllFromHarnessStrategy drives every registered clock directly from the one
// reference clock. It is used when the surrounding toolchain cannot support
// independent clock domains at arbitrary frequencies, so every registered
// frequency must equal the first registered frequency.
type AllFromHarnessStrategy struct{}

var _ Strategy = AllFromHarnessStrategy{}

// Name returns "all_from_harness".
func (AllFromHarnessStrategy) Name() string {
	return "all_from_harness"
}

// Instantiate checks that all requested frequencies agree, then wires every
// bundle's clock and reset as zero-skew aliases of the reference clock and
// reset. The frequency check runs before any wiring, so a mismatch leaves
// every bundle undriven.
func (AllFromHarnessStrategy) Instantiate(
	ref *signal.Bundle,
	requests []ClockRequest,
) error {
	if len(requests) == 0 {
		return nil
	}

	want := requests[0].Freq
	for _, req := range requests[1:] {
		if req.Freq != want {
			return &FrequencyMismatchError{
				Name: req.Name,
				Got:  req.Freq,
				Want: want,
			}
		}
	}

	for _, req := range requests {
		req.Bundle.Clock.Drive(signal.Alias{Of: ref.Clock})
		req.Bundle.Reset.Drive(signal.Alias{Of: ref.Reset})
	}

	return nil
}

func init() {
	RegisterStrategy("all_from_harness", func() Strategy {
		return AllFromHarnessStrategy{}
	})
}
