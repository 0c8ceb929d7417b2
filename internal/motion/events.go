package motion

import "strings"

// Events is the set of edges hit during a single Step.
type Events uint8

const (
	HitLeft Events = 1 << iota
	HitRight
	HitTop
	HitBottom
)

// Has reports whether every edge in e is present in ev.
func (ev Events) Has(e Events) bool { return ev&e == e }

// Empty reports whether no edge was hit.
func (ev Events) Empty() bool { return ev == 0 }

// Corner reports a simultaneous hit on both axes. Callers use this to
// trigger the glow effect instead of ordinary edge feedback.
func (ev Events) Corner() bool {
	return ev&(HitLeft|HitRight) != 0 && ev&(HitTop|HitBottom) != 0
}

func (ev Events) String() string {
	if ev == 0 {
		return "none"
	}
	var parts []string
	for _, e := range []struct {
		bit  Events
		name string
	}{
		{HitLeft, "left"},
		{HitRight, "right"},
		{HitTop, "top"},
		{HitBottom, "bottom"},
	} {
		if ev&e.bit != 0 {
			parts = append(parts, e.name)
		}
	}
	if ev.Corner() {
		parts = append(parts, "corner")
	}
	return strings.Join(parts, "+")
}
