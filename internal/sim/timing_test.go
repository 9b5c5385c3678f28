package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/sim"
)

var _ = Describe("Timing", func() {
	var tm sim.Timing

	BeforeEach(func() {
		tm = sim.Timing{}
	})

	It("is not started before the first frame", func() {
		Expect(tm.Started()).To(BeFalse())
		Expect(tm.SinceStart()).To(BeZero())
	})

	It("reports the absolute timestamp as the first elapsed value", func() {
		tm.Update(1500)

		Expect(tm.Started()).To(BeTrue())
		Expect(tm.StartingTime).To(Equal(1500.0))
		Expect(tm.ElapsedSinceLastLoop).To(Equal(1500.0))
		Expect(tm.LastTime).To(Equal(1500.0))
	})

	It("reports frame deltas after the first frame", func() {
		tm.Update(1500)
		tm.Update(1516)
		tm.Update(1540)

		Expect(tm.ElapsedSinceLastLoop).To(Equal(24.0))
		Expect(tm.StartingTime).To(Equal(1500.0))
		Expect(tm.SinceStart()).To(Equal(40.0))
	})

	It("latches a zero first timestamp only once", func() {
		tm.Update(0)
		Expect(tm.ElapsedSinceLastLoop).To(BeZero())

		tm.Update(16)
		Expect(tm.StartingTime).To(BeZero())
		Expect(tm.ElapsedSinceLastLoop).To(Equal(16.0))
	})
})
