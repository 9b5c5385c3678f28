package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/physics"
	"github.com/san-kum/bounce/internal/render"
	"github.com/san-kum/bounce/internal/sim"
)

type frameLog struct {
	frames []sim.Frame
}

func (l *frameLog) OnFrame(f sim.Frame) { l.frames = append(l.frames, f) }

var _ = Describe("Session", func() {
	var (
		s   *sim.Session
		rec *render.Recorder
	)

	BeforeEach(func() {
		var err error
		s, err = sim.NewSession(physics.Viewport{Width: 800, Height: 600})
		Expect(err).NotTo(HaveOccurred())
		rec = &render.Recorder{}
	})

	It("rejects a viewport smaller than the ball", func() {
		_, err := sim.NewSession(physics.Viewport{Width: 100, Height: 600})
		Expect(err).To(MatchError(sim.ErrInvalidViewport))
	})

	It("starts with a resting ball in the center", func() {
		Expect(s.Body.Coor).To(Equal(physics.Vec2{X: 400, Y: 300}))
		Expect(s.Body.Rad).To(Equal(60.0))
		Expect(s.World).To(Equal(physics.World{Gravity: 0.7, Restitution: 0.6}))
		Expect(s.Frames()).To(BeZero())
	})

	It("clears, then draws the pre-step position, then steps", func() {
		f := s.Frame(rec, 16)

		Expect(rec.Calls).To(HaveLen(7))
		Expect(rec.Calls[0]).To(Equal("clear 0 0 800 600"))
		Expect(rec.Calls[4]).To(Equal("arc 400 300 60 0.0000 6.2832"))
		Expect(f.Coor.Y).To(BeNumerically("~", 300.7, 1e-9))
		Expect(f.Vel.Y).To(BeNumerically("~", 0.7, 1e-9))
		Expect(f.Index).To(BeZero())
		Expect(f.Elapsed).To(Equal(16.0))
		Expect(s.Frames()).To(Equal(1))
	})

	It("never moves a dragged ball during a frame", func() {
		s.PointerPress(400, 300)
		before := s.Body.Coor

		for i := 0; i < 10; i++ {
			s.Frame(render.Discard{}, float64(i*16))
		}

		Expect(s.Body.Coor).To(Equal(before))
		Expect(s.Body.Vel).To(Equal(physics.Vec2{}))
	})

	It("keeps the ball inside the viewport", func() {
		s.Body.Vel = physics.Vec2{X: 37, Y: -55}
		for i := 0; i < 600; i++ {
			f := s.Frame(render.Discard{}, float64(i)*1000/60)
			Expect(f.Coor.X).To(BeNumerically(">=", 60))
			Expect(f.Coor.X).To(BeNumerically("<=", 740))
			Expect(f.Coor.Y).To(BeNumerically(">=", 60))
			Expect(f.Coor.Y).To(BeNumerically("<=", 540))
		}
	})

	Describe("event queue", func() {
		It("defers posted events to the next frame", func() {
			s.Post(sim.PointerPressed{X: 400, Y: 300})
			Expect(s.Pending()).To(Equal(1))
			Expect(s.Body.Drag).To(BeFalse())

			s.Frame(rec, 0)

			Expect(s.Pending()).To(BeZero())
			Expect(s.Body.Drag).To(BeTrue())
		})

		It("applies events in arrival order before the step", func() {
			s.Frame(rec, 1000)
			s.Frame(rec, 1016)
			grabY := s.Body.Coor.Y

			s.Post(sim.PointerMoved{X: 400, Y: 300})
			s.Post(sim.PointerPressed{X: 400, Y: 300})
			s.Post(sim.PointerMoved{X: 432, Y: 284})
			s.Post(sim.PointerReleased{})
			f := s.Frame(rec, 1032)

			Expect(f.Drag).To(BeFalse())
			Expect(f.Vel.X).To(Equal(20.0))
			Expect(f.Vel.Y).To(BeNumerically("~", -9.3, 1e-9))
			Expect(f.Coor.X).To(Equal(452.0))
			Expect(f.Coor.Y).To(BeNumerically("~", 284+(grabY-300)-9.3, 1e-9))
		})

		It("reports how many events were drained", func() {
			s.Post(sim.PointerMoved{X: 1, Y: 1})
			s.Post(sim.PointerReleased{})
			Expect(s.Drain()).To(Equal(2))
			Expect(s.Drain()).To(BeZero())
		})
	})

	It("notifies observers once per frame", func() {
		log := &frameLog{}
		s.AddObserver(log)

		for i := 0; i < 3; i++ {
			s.Frame(render.Discard{}, float64(i*16))
		}

		Expect(log.frames).To(HaveLen(3))
		Expect(log.frames[2].Index).To(Equal(2))
		Expect(log.frames[2].Timestamp).To(Equal(32.0))
	})

	It("reports floor contacts", func() {
		s.Body.Coor.Y = 539
		s.Body.Vel.Y = 5

		f := s.Frame(render.Discard{}, 0)

		Expect(f.Contact.Has(physics.Floor)).To(BeTrue())
		Expect(f.Coor.Y).To(Equal(540.0))
	})
})

var _ = Describe("Session reset", func() {
	It("restores the initial ball and drops pending input", func() {
		s, err := sim.NewSession(physics.Viewport{Width: 640, Height: 480})
		Expect(err).NotTo(HaveOccurred())

		s.PointerPress(320, 240)
		s.Post(sim.PointerReleased{})
		s.Body.Coor = physics.Vec2{X: 100, Y: 100}
		s.Frame(render.Discard{}, 16)
		s.Post(sim.PointerMoved{X: 5, Y: 5})

		s.Reset()

		Expect(s.Body).To(Equal(physics.NewBody(s.View)))
		Expect(s.Mouse).To(Equal(sim.Mouse{}))
		Expect(s.Pending()).To(BeZero())
		Expect(s.Frames()).To(Equal(1))
	})
})
