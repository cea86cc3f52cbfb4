package harness

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	gomock "go.uber.org/mock/gomock"

	"github.com/chiplab/harnessclock/signal"
	"github.com/chiplab/harnessclock/timing"
)

func drivenReference(freq timing.Freq) *signal.Bundle {
	ref := signal.NewBundle("harness")
	ref.Clock.Drive(signal.SquareWave{Freq: freq})
	ref.Reset.Drive(signal.Level(false))
	return ref
}

var _ = Describe("Instantiator", func() {
	var (
		mockController *gomock.Controller
		strategy       *MockStrategy
		instantiator   *Instantiator
	)

	BeforeEach(func() {
		mockController = gomock.NewController(GinkgoT())
		strategy = NewMockStrategy(mockController)
		instantiator = New(strategy)
	})

	It("should hand out bundles from its registry", func() {
		bundle, err := instantiator.RequestClockBundle("core", 1*timing.GHz)

		Expect(err).ToNot(HaveOccurred())
		Expect(bundle).ToNot(BeNil())
		Expect(instantiator.Registry().Len()).To(Equal(1))
	})

	It("should invoke the strategy once with all requests in order", func() {
		_, _ = instantiator.RequestClockBundle("core", 1*timing.GHz)
		_, _ = instantiator.RequestClockBundle("io", 500*timing.MHz)

		ref := drivenReference(100 * timing.MHz)
		strategy.EXPECT().
			Instantiate(ref, gomock.Len(2)).
			Return(nil)

		Expect(instantiator.InstantiateHarnessClocks(ref)).To(Succeed())
		Expect(instantiator.Instantiated()).To(BeTrue())
		Expect(instantiator.Registry().Sealed()).To(BeTrue())
	})

	It("should refuse a second instantiation", func() {
		ref := drivenReference(100 * timing.MHz)
		strategy.EXPECT().Instantiate(ref, gomock.Any()).Return(nil)

		Expect(instantiator.InstantiateHarnessClocks(ref)).To(Succeed())

		err := instantiator.InstantiateHarnessClocks(ref)
		Expect(err).To(MatchError(ErrAlreadyInstantiated))
	})

	It("should refuse an undriven reference", func() {
		err := instantiator.InstantiateHarnessClocks(signal.NewBundle("harness"))
		Expect(err).To(MatchError(ErrUndrivenReference))

		err = instantiator.InstantiateHarnessClocks(nil)
		Expect(err).To(MatchError(ErrUndrivenReference))
	})

	It("should seal the registry even when the strategy fails", func() {
		wireErr := errors.New("wiring failed")
		ref := drivenReference(100 * timing.MHz)
		strategy.EXPECT().Instantiate(ref, gomock.Any()).Return(wireErr)
		strategy.EXPECT().Name().Return("mock").AnyTimes()

		err := instantiator.InstantiateHarnessClocks(ref)
		Expect(err).To(MatchError(wireErr))
		Expect(instantiator.Instantiated()).To(BeFalse())

		_, err = instantiator.RequestClockBundle("late", 1*timing.GHz)
		Expect(err).To(MatchError(ErrRegistrySealed))
	})

	It("should panic when constructed without a strategy", func() {
		Expect(func() { New(nil) }).To(Panic())
	})
})
