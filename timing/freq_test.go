package timing

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Freq", func() {
	It("should get period", func() {
		var f = 1 * GHz
		Expect(f.Period()).To(BeNumerically("==", 1e-9))
	})

	It("should get half period", func() {
		var f = 500 * MHz
		Expect(f.HalfPeriod()).To(BeNumerically("~", 1e-9, 1e-21))
	})

	It("should render with the largest fitting unit", func() {
		Expect((1 * GHz).String()).To(Equal("1GHz"))
		Expect((500 * MHz).String()).To(Equal("500MHz"))
		Expect((2500 * MHz).String()).To(Equal("2.5GHz"))
		Expect((32 * KHz).String()).To(Equal("32KHz"))
		Expect((60 * Hz).String()).To(Equal("60Hz"))
	})
})

var _ = Describe("ParseFreq", func() {
	It("should parse unit suffixes", func() {
		Expect(ParseFreq("1GHz")).To(Equal(1 * GHz))
		Expect(ParseFreq("500MHz")).To(Equal(500 * MHz))
		Expect(ParseFreq("32khz")).To(Equal(32 * KHz))
		Expect(ParseFreq("60Hz")).To(Equal(60 * Hz))
	})

	It("should allow spaces between value and unit", func() {
		Expect(ParseFreq(" 2.5 GHz ")).To(Equal(Freq(2.5) * GHz))
	})

	It("should treat bare numbers as hertz", func() {
		Expect(ParseFreq("3.2e9")).To(Equal(Freq(3.2e9)))
	})

	It("should reject malformed literals", func() {
		_, err := ParseFreq("fast")
		Expect(err).To(MatchError(ErrBadFrequency))
	})

	It("should reject non-positive frequencies", func() {
		_, err := ParseFreq("0Hz")
		Expect(err).To(MatchError(ErrBadFrequency))

		_, err = ParseFreq("-1GHz")
		Expect(err).To(MatchError(ErrBadFrequency))
	})

	It("should reject non-finite frequencies", func() {
		// ParseFloat accepts these; a clock rate must not.
		for _, text := range []string{"NaN", "Inf", "+Inf", "-Inf", "1e999"} {
			_, err := ParseFreq(text)
			Expect(err).To(MatchError(ErrBadFrequency), text)
		}
	})
})
