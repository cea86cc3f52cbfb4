package signal

// Bundle is a paired clock and reset treated as one logical unit. The harness
// hands bundles to consumers before wiring; both lines stay undriven until a
// source strategy drives them.
type Bundle struct {
	name string

	Clock *Signal
	Reset *Signal
}

// NewBundle creates a bundle with undriven clock and reset lines.
func NewBundle(name string) *Bundle {
	return &Bundle{
		name:  name,
		Clock: NewSignal(name + ".clock"),
		Reset: NewSignal(name + ".reset"),
	}
}

// Name returns the name of the bundle.
func (b *Bundle) Name() string {
	return b.name
}

// Driven returns true once both the clock and the reset have drivers.
func (b *Bundle) Driven() bool {
	return b.Clock.Driven() && b.Reset.Driven()
}
