package sim

import (
	"github.com/driftdev/logodrift/internal/motion"
)

// Metric accumulates a scalar over a run.
type Metric interface {
	Name() string
	Observe(s motion.State, ev motion.Events, t float64)
	Value() float64
	Reset()
}

// Observer receives every step of a run.
type Observer interface {
	OnStep(s motion.State, ev motion.Events, t float64)
}

type Config struct {
	Dt       float64
	Duration float64
}

func DefaultConfig() Config {
	return Config{Dt: 1.0 / 60, Duration: 30}
}

type Result struct {
	States  []motion.State
	Events  []motion.Events
	Times   []float64
	Metrics map[string]float64
	Steps   int
}
