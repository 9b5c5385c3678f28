package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/sim"
)

var _ = Describe("Pointer handlers", func() {
	var s *sim.Session

	BeforeEach(func() {
		var err error
		s, err = sim.NewSession(physics.Viewport{Width: 800, Height: 600})
		Expect(err).NotTo(HaveOccurred())
		s.Body.Vel = physics.Vec2{X: 4, Y: -2}
	})

	Describe("press", func() {
		It("starts a drag inside the ball", func() {
			s.PointerPress(420, 310)

			Expect(s.Mouse.IsDown).To(BeTrue())
			Expect(s.Body.Drag).To(BeTrue())
			Expect(s.Mouse.LastDown).To(Equal(physics.Vec2{X: 20, Y: 10}))
			Expect(s.Mouse.Down).To(Equal(physics.Vec2{X: 420, Y: 310}))
			Expect(s.Body.Vel).To(Equal(physics.Vec2{}))
		})

		DescribeTable("ignores presses at or beyond the radius",
			func(x, y float64) {
				s.PointerPress(x, y)

				Expect(s.Mouse.IsDown).To(BeFalse())
				Expect(s.Body.Drag).To(BeFalse())
				Expect(s.Body.Vel).To(Equal(physics.Vec2{X: 4, Y: -2}))
			},
			Entry("on the rim", 460.0, 300.0),
			Entry("outside", 10.0, 10.0),
			Entry("just past the rim", 400.0, 360.5),
		)
	})

	Describe("move", func() {
		BeforeEach(func() {
			s.Timing.Update(1000)
			s.Timing.Update(1016)
		})

		It("records the pointer position without a drag", func() {
			s.PointerMove(50, 60)

			Expect(s.Mouse.StartPosition).To(Equal(physics.Vec2{X: 50, Y: 60}))
			Expect(s.Mouse.EndPosition).To(Equal(physics.Vec2{X: 50, Y: 60}))
			Expect(s.Body.Coor).To(Equal(physics.Vec2{X: 400, Y: 300}))
		})

		It("derives velocity from displacement over the frame time", func() {
			s.PointerMove(100, 100)
			s.PointerMove(132, 84)

			Expect(s.Mouse.Vel).To(Equal(physics.Vec2{X: 20, Y: -10}))
		})

		It("floors fractional velocities", func() {
			s.PointerMove(100, 100)
			s.PointerMove(101, 99)

			Expect(s.Mouse.Vel).To(Equal(physics.Vec2{X: 0, Y: -1}))
		})

		It("keeps the grab offset while dragging", func() {
			s.PointerPress(410, 290)
			s.PointerMove(500, 200)

			Expect(s.Body.Coor).To(Equal(physics.Vec2{X: 490, Y: 210}))
		})

		It("keeps the previous velocity when no frame time has elapsed", func() {
			s.PointerMove(100, 100)
			s.PointerMove(132, 84)
			s.Timing = sim.Timing{}
			s.PointerMove(500, 500)

			Expect(s.Mouse.Vel).To(Equal(physics.Vec2{X: 20, Y: -10}))
			Expect(s.Mouse.EndPosition).To(Equal(physics.Vec2{X: 500, Y: 500}))
		})
	})

	Describe("release", func() {
		It("throws a dragged ball with the pointer velocity", func() {
			s.Body.Drag = true
			s.Mouse.IsDown = true
			s.Mouse.Vel = physics.Vec2{X: 3, Y: -5}

			s.PointerRelease()

			Expect(s.Body.Vel).To(Equal(physics.Vec2{X: 3, Y: -5}))
			Expect(s.Body.Drag).To(BeFalse())
			Expect(s.Mouse.IsDown).To(BeFalse())
		})

		It("leaves a free ball alone", func() {
			s.Mouse.Vel = physics.Vec2{X: 3, Y: -5}

			s.PointerRelease()

			Expect(s.Body.Vel).To(Equal(physics.Vec2{X: 4, Y: -2}))
			Expect(s.Mouse.IsDown).To(BeFalse())
		})
	})
})
