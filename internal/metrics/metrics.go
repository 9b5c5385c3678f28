package metrics

import "github.com/san-kum/bounce/internal/sim"

// Metric is a frame observer that folds the run into one number.
type Metric interface {
	sim.Observer
	Name() string
	Value() float64
	Reset()
}

// Standard returns the metrics reported by headless runs.
func Standard(s *sim.Session) []Metric {
	return []Metric{
		NewEnergy(s.World, s.View),
		NewBounces(),
		NewPeakSpeed(),
	}
}

// Attach registers every metric as an observer of s.
func Attach(s *sim.Session, ms []Metric) {
	for _, m := range ms {
		s.AddObserver(m)
	}
}

func Collect(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
