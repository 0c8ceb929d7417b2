package sim

import (
	"context"
	"fmt"

	"github.com/driftdev/logodrift/internal/motion"
)

// Runner drives motion.Step at a fixed timestep against one bounding
// region. The frame renderers use RunWithCallback; the CLI commands use
// Run and read the recorded Result.
type Runner struct {
	bounds    motion.Bounds
	metrics   []Metric
	observers []Observer
}

func New(bounds motion.Bounds) *Runner {
	return &Runner{
		bounds:    bounds,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run advances s0 for cfg.Duration seconds and records every state. The
// initial state is clamped into the bounds so containment holds from the
// first sample.
func (r *Runner) Run(ctx context.Context, s0 motion.State, cfg Config) (*Result, error) {
	if err := r.validate(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		States:  make([]motion.State, 0, steps+1),
		Events:  make([]motion.Events, 0, steps),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	s := r.bounds.Clamp(s0)
	t := 0.0
	result.States = append(result.States, s)
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		var ev motion.Events
		s, ev = motion.Step(s, r.bounds, cfg.Dt)
		t += cfg.Dt
		result.Steps++

		for _, m := range r.metrics {
			m.Observe(s, ev, t)
		}
		for _, obs := range r.observers {
			obs.OnStep(s, ev, t)
		}

		result.States = append(result.States, s)
		result.Events = append(result.Events, ev)
		result.Times = append(result.Times, t)
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback steps until the callback returns false or the duration
// elapses. Nothing is recorded.
func (r *Runner) RunWithCallback(ctx context.Context, s0 motion.State, cfg Config, callback func(motion.State, motion.Events, float64) bool) error {
	if err := r.validate(cfg); err != nil {
		return err
	}

	s := r.bounds.Clamp(s0)
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var ev motion.Events
		s, ev = motion.Step(s, r.bounds, cfg.Dt)
		t += cfg.Dt

		if !callback(s, ev, t) {
			return nil
		}
	}

	return nil
}

func (r *Runner) validate(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	if !r.bounds.Valid() {
		return fmt.Errorf("degenerate bounds: sprite larger than container")
	}
	return nil
}
