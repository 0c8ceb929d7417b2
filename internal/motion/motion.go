package motion

import "math"

// State is the sprite's reference point and velocity. Velocity is in
// units per second; the coordinate frame is whatever the caller renders in.
type State struct {
	X, Y   float64
	VX, VY float64
}

// Bounds limits the sprite's reference point, already shrunk by the
// sprite's half-extents. Recomputed by callers on resize, immutable
// between steps.
type Bounds struct {
	Left, Right float64
	Top, Bottom float64
}

// BoundsFor derives the reference-point bounds for a sprite of size
// (w, h) centered on its reference point inside a (cw, ch) container.
func BoundsFor(cw, ch, w, h float64) Bounds {
	return Bounds{
		Left:   w / 2,
		Right:  cw - w/2,
		Top:    h / 2,
		Bottom: ch - h/2,
	}
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// Valid reports whether the region has non-negative extent on both axes.
func (b Bounds) Valid() bool {
	return b.Left <= b.Right && b.Top <= b.Bottom
}

// Clamp forces the state's position into the region without touching
// velocity. A degenerate axis collapses to its midpoint.
func (b Bounds) Clamp(s State) State {
	s.X, _ = clampAxis(s.X, b.Left, b.Right)
	s.Y, _ = clampAxis(s.Y, b.Top, b.Bottom)
	return s
}

// Step advances s by dt seconds and reflects velocity off any bound the
// candidate position exceeds. Each axis is handled independently: the
// candidate is clamped to the bound and that axis's velocity component is
// negated, mirror-style, with no energy loss. The returned Events names
// the edges hit; Events.Corner reports a same-step hit on both axes.
//
// Step is pure and never fails. For any dt >= 0 the result lies inside b,
// even when a stalled caller hands over a very large dt. dt = 0 returns
// s unchanged with no events.
func Step(s State, b Bounds, dt float64) (State, Events) {
	var ev Events

	s.X += s.VX * dt
	s.Y += s.VY * dt

	var hit edgeHit
	s.X, hit = clampAxis(s.X, b.Left, b.Right)
	switch hit {
	case hitLow:
		s.VX = -s.VX
		ev |= HitLeft
	case hitHigh:
		s.VX = -s.VX
		ev |= HitRight
	}

	s.Y, hit = clampAxis(s.Y, b.Top, b.Bottom)
	switch hit {
	case hitLow:
		s.VY = -s.VY
		ev |= HitTop
	case hitHigh:
		s.VY = -s.VY
		ev |= HitBottom
	}

	return s, ev
}

type edgeHit uint8

const (
	hitNone edgeHit = iota
	hitLow
	hitHigh
)

func clampAxis(p, lo, hi float64) (float64, edgeHit) {
	if lo > hi {
		// Degenerate axis: sprite larger than container. Park at the
		// midpoint so the caller still gets a stable position.
		return (lo + hi) / 2, hitNone
	}
	if p < lo {
		return lo, hitLow
	}
	if p > hi {
		return hi, hitHigh
	}
	return p, hitNone
}

// FromPolar builds a velocity vector from a heading in radians
// (measured from +x, y growing downward) and a speed.
func FromPolar(angle, speed float64) (vx, vy float64) {
	return speed * math.Cos(angle), speed * math.Sin(angle)
}

// Heading returns the velocity direction in radians.
func (s State) Heading() float64 { return math.Atan2(s.VY, s.VX) }

// Speed returns the velocity magnitude.
func (s State) Speed() float64 { return math.Hypot(s.VX, s.VY) }
