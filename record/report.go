package record

import (
	"github.com/rs/xid"

	"github.com/chiplab/harnessclock/harness"
)

// ClockEntry is one row of the harness_clocks table.
type ClockEntry struct {
	ID       string
	Name     string
	FreqHz   float64
	Strategy string
	Driven   bool
}

// OscillatorEntry is one row of the oscillators table, present only when the
// absolute-frequency strategy ran.
type OscillatorEntry struct {
	ID           string
	Clock        string
	Module       string
	HalfPeriodNs float64
}

// WriteElaboration records the state of an elaborated instantiator: one row
// per registered clock, plus one row per emitted oscillator artifact when
// the strategy produced any.
func WriteElaboration(rec Recorder, inst *harness.Instantiator) {
	strategy := inst.Strategy()

	rec.CreateTable("harness_clocks", ClockEntry{})
	for _, req := range inst.Registry().Requests() {
		rec.InsertData("harness_clocks", ClockEntry{
			ID:       xid.New().String(),
			Name:     req.Name,
			FreqHz:   float64(req.Freq),
			Strategy: strategy.Name(),
			Driven:   req.Bundle.Driven(),
		})
	}

	if osc, ok := strategy.(*harness.AbsoluteFreqStrategy); ok {
		rec.CreateTable("oscillators", OscillatorEntry{})
		for _, artifact := range osc.Artifacts() {
			rec.InsertData("oscillators", OscillatorEntry{
				ID:           xid.New().String(),
				Clock:        artifact.Clock,
				Module:       artifact.Module,
				HalfPeriodNs: artifact.HalfPeriodNs,
			})
		}
	}

	rec.Flush()
}
