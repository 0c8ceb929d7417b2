// Package motion implements the bounce kinematics for a single sprite
// moving inside an axis-aligned region.
//
// The only operation is [Step]: advance a [State] by dt, clamp the
// candidate position to the [Bounds], and mirror-reflect the velocity on
// any axis whose bound was exceeded. Reflection is a plain per-axis sign
// flip — angle of incidence equals angle of reflection, no energy loss.
//
//	s, ev := motion.Step(s, bounds, dt)
//	if ev.Corner() {
//	    // both axes hit in the same step
//	}
//
// Step is pure and re-entrant; the renderers call it once per frame from
// a single goroutine. All side effects (styling, glow, drawing) belong to
// the callers.
package motion
