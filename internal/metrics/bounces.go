package metrics

import (
	"math/bits"

	"github.com/driftdev/logodrift/internal/motion"
)

// Bounces counts wall contacts. A corner contributes one count per edge.
type Bounces struct {
	name  string
	count int
}

func NewBounces() *Bounces {
	return &Bounces{name: "bounces"}
}

func (b *Bounces) Name() string { return b.name }

func (b *Bounces) Observe(s motion.State, ev motion.Events, t float64) {
	b.count += bits.OnesCount8(uint8(ev))
}

func (b *Bounces) Value() float64 { return float64(b.count) }
func (b *Bounces) Reset()         { b.count = 0 }

// Corners counts same-step hits on both axes.
type Corners struct {
	name  string
	count int
}

func NewCorners() *Corners {
	return &Corners{name: "corners"}
}

func (c *Corners) Name() string { return c.name }

func (c *Corners) Observe(s motion.State, ev motion.Events, t float64) {
	if ev.Corner() {
		c.count++
	}
}

func (c *Corners) Value() float64 { return float64(c.count) }
func (c *Corners) Reset()         { c.count = 0 }
