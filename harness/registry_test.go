package harness

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/chiplab/harnessclock/timing"
)

var _ = Describe("ClockRegistry", func() {
	var registry *ClockRegistry

	BeforeEach(func() {
		registry = NewClockRegistry()
	})

	It("should create an undriven bundle on first request", func() {
		bundle, err := registry.Request("core", 1*timing.GHz)

		Expect(err).ToNot(HaveOccurred())
		Expect(bundle).ToNot(BeNil())
		Expect(bundle.Name()).To(Equal("core"))
		Expect(bundle.Driven()).To(BeFalse())
		Expect(registry.Len()).To(Equal(1))
	})

	It("should return the same bundle for repeated requests", func() {
		bundle1, err := registry.Request("core", 1*timing.GHz)
		Expect(err).ToNot(HaveOccurred())

		bundle2, err := registry.Request("core", 1*timing.GHz)
		Expect(err).ToNot(HaveOccurred())

		Expect(bundle2).To(BeIdenticalTo(bundle1))
		Expect(registry.Len()).To(Equal(1))
	})

	It("should report conflicting re-requests", func() {
		_, err := registry.Request("core", 1*timing.GHz)
		Expect(err).ToNot(HaveOccurred())

		_, err = registry.Request("core", 500*timing.MHz)

		var mismatch *ConfigurationMismatchError
		Expect(err).To(BeAssignableToTypeOf(mismatch))
		mismatch = err.(*ConfigurationMismatchError)
		Expect(mismatch.Name).To(Equal("core"))
		Expect(mismatch.Registered).To(Equal(1 * timing.GHz))
		Expect(mismatch.Requested).To(Equal(500 * timing.MHz))
		Expect(registry.Len()).To(Equal(1))
	})

	It("should reject empty names", func() {
		_, err := registry.Request("", 1*timing.GHz)
		Expect(err).To(MatchError(ErrEmptyClockName))
	})

	It("should reject non-positive frequencies", func() {
		_, err := registry.Request("core", 0)
		Expect(err).To(MatchError(ErrNonPositiveFrequency))

		_, err = registry.Request("core", -1*timing.MHz)
		Expect(err).To(MatchError(ErrNonPositiveFrequency))
	})

	It("should reject non-finite frequencies", func() {
		// A NaN frequency would register a clock whose oscillator never
		// toggles, with no diagnostic anywhere downstream.
		_, err := registry.Request("core", timing.Freq(math.NaN()))
		Expect(err).To(MatchError(ErrNonPositiveFrequency))

		_, err = registry.Request("core", timing.Freq(math.Inf(1)))
		Expect(err).To(MatchError(ErrNonPositiveFrequency))

		Expect(registry.Len()).To(Equal(0))
	})

	It("should reject requests after sealing", func() {
		_, err := registry.Request("core", 1*timing.GHz)
		Expect(err).ToNot(HaveOccurred())

		registry.Seal()
		Expect(registry.Sealed()).To(BeTrue())

		_, err = registry.Request("io", 1*timing.GHz)
		Expect(err).To(MatchError(ErrRegistrySealed))
		Expect(registry.Len()).To(Equal(1))
	})

	It("should keep requests in request order", func() {
		_, _ = registry.Request("core", 1*timing.GHz)
		_, _ = registry.Request("io", 500*timing.MHz)
		_, _ = registry.Request("uncore", 2*timing.GHz)
		_, _ = registry.Request("io", 500*timing.MHz)

		requests := registry.Requests()
		Expect(requests).To(HaveLen(3))
		Expect(requests[0].Name).To(Equal("core"))
		Expect(requests[1].Name).To(Equal("io"))
		Expect(requests[2].Name).To(Equal("uncore"))
	})
})
