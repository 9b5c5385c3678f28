package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
)

var _ = Describe("Script", func() {
	It("rejects events outside the run", func() {
		sc := sim.NewScript(10)
		Expect(sc.Add(10, sim.PointerReleased{})).To(MatchError(sim.ErrEventOutOfRange))
		Expect(sc.Add(-1, sim.PointerReleased{})).To(MatchError(sim.ErrEventOutOfRange))
		Expect(sc.Len()).To(BeZero())
	})

	It("posts events right before their frame", func() {
		s, err := sim.NewSession(physics.Viewport{Width: 800, Height: 600})
		Expect(err).NotTo(HaveOccurred())

		sc := sim.NewScript(5)
		Expect(sc.Add(2, sim.PointerPressed{X: 400, Y: 303})).To(Succeed())
		Expect(sc.Add(0, sim.PointerMoved{X: 1, Y: 1})).To(Succeed())

		var fed []int
		for i := 0; i < 5; i++ {
			fed = append(fed, sc.Feed(s))
			s.Frame(render.Discard{}, float64(i*16))
		}

		Expect(fed).To(Equal([]int{1, 0, 1, 0, 0}))
		Expect(s.Body.Drag).To(BeTrue())
	})
})

var _ = DescribeTable("ParseEvent",
	func(kind string, want sim.Event, wantErr error) {
		ev, err := sim.ParseEvent(kind, 3, 4)
		if wantErr != nil {
			Expect(err).To(MatchError(wantErr))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(ev).To(Equal(want))
	},
	Entry("move", "move", sim.PointerMoved{X: 3, Y: 4}, nil),
	Entry("press", "press", sim.PointerPressed{X: 3, Y: 4}, nil),
	Entry("release", "release", sim.PointerReleased{}, nil),
	Entry("unknown", "scroll", nil, sim.ErrUnknownEvent),
)
