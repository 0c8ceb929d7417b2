package sim

import (
	"context"
	"testing"

	"github.com/driftdev/logodrift/internal/motion"
)

var testBounds = motion.Bounds{Left: 0, Right: 100, Top: 0, Bottom: 50}

func TestRunnerRun(t *testing.T) {
	r := New(testBounds)

	cfg := Config{Dt: 0.1, Duration: 1.0}
	s0 := motion.State{X: 50, Y: 25, VX: 10, VY: 0}

	result, err := r.Run(context.Background(), s0, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if result.Steps != 10 {
		t.Errorf("expected 10 steps, got %d", result.Steps)
	}

	final := result.States[len(result.States)-1]
	if final.X < 59.9 || final.X > 60.1 {
		t.Errorf("expected final x ~60, got %f", final.X)
	}
}

func TestRunnerRun_Containment(t *testing.T) {
	r := New(testBounds)

	cfg := Config{Dt: 0.05, Duration: 20.0}
	s0 := motion.State{X: 10, Y: 10, VX: 33, VY: -21}

	result, err := r.Run(context.Background(), s0, cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, s := range result.States {
		if s.X < testBounds.Left || s.X > testBounds.Right ||
			s.Y < testBounds.Top || s.Y > testBounds.Bottom {
			t.Fatalf("state %d out of bounds: %+v", i, s)
		}
	}
}

func TestRunnerRun_ClampsInitialState(t *testing.T) {
	r := New(testBounds)

	s0 := motion.State{X: -50, Y: 200, VX: 1, VY: 1}
	result, err := r.Run(context.Background(), s0, Config{Dt: 0.1, Duration: 0.1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	first := result.States[0]
	if first.X != 0 || first.Y != 50 {
		t.Errorf("initial state not clamped: %+v", first)
	}
}

func TestRunnerRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		bounds motion.Bounds
		cfg    Config
	}{
		{"zero dt", testBounds, Config{Dt: 0, Duration: 1}},
		{"negative dt", testBounds, Config{Dt: -0.1, Duration: 1}},
		{"zero duration", testBounds, Config{Dt: 0.1, Duration: 0}},
		{"degenerate bounds", motion.Bounds{Left: 10, Right: 0, Top: 0, Bottom: 10}, Config{Dt: 0.1, Duration: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.bounds)
			_, err := r.Run(context.Background(), motion.State{X: 5, Y: 5}, tt.cfg)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRunnerRun_Canceled(t *testing.T) {
	r := New(testBounds)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Run(ctx, motion.State{X: 50, Y: 25, VX: 1, VY: 1}, Config{Dt: 0.1, Duration: 10})
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type countMetric struct {
	count int
}

func (c *countMetric) Name() string                                    { return "count" }
func (c *countMetric) Observe(s motion.State, ev motion.Events, t float64) { c.count++ }
func (c *countMetric) Value() float64                                  { return float64(c.count) }
func (c *countMetric) Reset()                                          { c.count = 0 }

func TestRunnerMetrics(t *testing.T) {
	r := New(testBounds)
	metric := &countMetric{}
	r.AddMetric(metric)

	_, err := r.Run(context.Background(), motion.State{X: 50, Y: 25, VX: 1, VY: 1}, Config{Dt: 0.1, Duration: 1})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if metric.count != 10 {
		t.Errorf("expected 10 observations, got %d", metric.count)
	}
}

func TestRunWithCallback_StopsEarly(t *testing.T) {
	r := New(testBounds)

	calls := 0
	err := r.RunWithCallback(context.Background(), motion.State{X: 50, Y: 25, VX: 1, VY: 1},
		Config{Dt: 0.1, Duration: 100},
		func(s motion.State, ev motion.Events, t float64) bool {
			calls++
			return calls < 5
		})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("expected 5 calls, got %d", calls)
	}
}
