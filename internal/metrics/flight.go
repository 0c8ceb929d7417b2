package metrics

import (
	"math"

	"github.com/driftdev/logodrift/internal/motion"
)

// FlightTime measures the mean time between wall contacts.
type FlightTime struct {
	name      string
	lastHit   float64
	hasHit    bool
	intervals int
	total     float64
}

func NewFlightTime() *FlightTime {
	return &FlightTime{name: "flight_time"}
}

func (f *FlightTime) Name() string { return f.name }

func (f *FlightTime) Observe(s motion.State, ev motion.Events, t float64) {
	if ev.Empty() {
		return
	}
	if f.hasHit {
		f.total += t - f.lastHit
		f.intervals++
	}
	f.lastHit = t
	f.hasHit = true
}

func (f *FlightTime) Value() float64 {
	if f.intervals == 0 {
		return 0
	}
	return f.total / float64(f.intervals)
}

func (f *FlightTime) Reset() {
	f.lastHit = 0
	f.hasHit = false
	f.intervals = 0
	f.total = 0
}

// Distance accumulates the path length travelled.
type Distance struct {
	name    string
	last    motion.State
	hasLast bool
	total   float64
}

func NewDistance() *Distance {
	return &Distance{name: "distance"}
}

func (d *Distance) Name() string { return d.name }

func (d *Distance) Observe(s motion.State, ev motion.Events, t float64) {
	if d.hasLast {
		d.total += math.Hypot(s.X-d.last.X, s.Y-d.last.Y)
	}
	d.last = s
	d.hasLast = true
}

func (d *Distance) Value() float64 { return d.total }

func (d *Distance) Reset() {
	d.last = motion.State{}
	d.hasLast = false
	d.total = 0
}
