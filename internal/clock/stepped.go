package clock

import "context"

// Stepped runs frames back to back with synthetic timestamps
// Start + i*Step, without sleeping. It is the scheduler for headless runs.
type Stepped struct {
	Start  float64
	Step   float64
	Frames int // zero means run until ctx is done
}

func NewStepped(frames int) *Stepped {
	return &Stepped{Step: millis(Interval), Frames: frames}
}

func (s *Stepped) Run(ctx context.Context, frame FrameFunc) error {
	for i := 0; s.Frames <= 0 || i < s.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame(s.Start + float64(i)*s.Step)
	}
	return nil
}
