package motion_test

import (
	"math"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/driftdev/logodrift/internal/motion"
)

var _ = Describe("Step", func() {
	bounds := motion.Bounds{Left: 0, Right: 100, Top: 0, Bottom: 100}

	It("moves freely away from the walls", func() {
		s := motion.State{X: 50, Y: 50, VX: 10, VY: -5}
		out, ev := motion.Step(s, bounds, 1.0)

		Expect(out.X).To(BeNumerically("~", 60, 1e-12))
		Expect(out.Y).To(BeNumerically("~", 45, 1e-12))
		Expect(out.VX).To(Equal(10.0))
		Expect(out.VY).To(Equal(-5.0))
		Expect(ev.Empty()).To(BeTrue())
	})

	It("clamps and reflects on the right wall", func() {
		s := motion.State{X: 95, Y: 50, VX: 10, VY: 0}
		out, ev := motion.Step(s, bounds, 1.0)

		Expect(out.X).To(Equal(100.0))
		Expect(out.VX).To(Equal(-10.0))
		Expect(out.VY).To(Equal(0.0))
		Expect(ev.Has(motion.HitRight)).To(BeTrue())
		Expect(ev.Corner()).To(BeFalse())
	})

	It("reports a corner when both axes clamp in one step", func() {
		s := motion.State{X: 98, Y: 98, VX: 10, VY: 10}
		out, ev := motion.Step(s, bounds, 1.0)

		Expect(out.X).To(Equal(100.0))
		Expect(out.Y).To(Equal(100.0))
		Expect(out.VX).To(Equal(-10.0))
		Expect(out.VY).To(Equal(-10.0))
		Expect(ev.Has(motion.HitRight | motion.HitBottom)).To(BeTrue())
		Expect(ev.Corner()).To(BeTrue())
	})

	It("is the identity for dt = 0", func() {
		s := motion.State{X: 3, Y: 7, VX: -2, VY: 4}
		out, ev := motion.Step(s, bounds, 0)

		Expect(out).To(Equal(s))
		Expect(ev.Empty()).To(BeTrue())
	})

	It("does not fire events when resting exactly on a bound", func() {
		s := motion.State{X: 100, Y: 50, VX: 0, VY: 0}
		_, ev := motion.Step(s, bounds, 1.0)
		Expect(ev.Empty()).To(BeTrue())
	})

	It("stays in bounds even after a huge dt", func() {
		s := motion.State{X: 50, Y: 50, VX: 40, VY: -25}
		out, _ := motion.Step(s, bounds, 1e6)

		Expect(out.X).To(BeNumerically(">=", bounds.Left))
		Expect(out.X).To(BeNumerically("<=", bounds.Right))
		Expect(out.Y).To(BeNumerically(">=", bounds.Top))
		Expect(out.Y).To(BeNumerically("<=", bounds.Bottom))
	})

	It("collapses a degenerate axis to its midpoint", func() {
		bad := motion.Bounds{Left: 60, Right: 40, Top: 0, Bottom: 100}
		s := motion.State{X: 10, Y: 50, VX: 5, VY: 0}
		out, ev := motion.Step(s, bad, 1.0)

		Expect(out.X).To(Equal(50.0))
		Expect(ev.Empty()).To(BeTrue())
	})

	Describe("properties", func() {
		rng := rand.New(rand.NewSource(42))

		It("keeps any in-bounds state in bounds for any dt", func() {
			for i := 0; i < 2000; i++ {
				s := motion.State{
					X:  bounds.Left + rng.Float64()*bounds.Width(),
					Y:  bounds.Top + rng.Float64()*bounds.Height(),
					VX: (rng.Float64() - 0.5) * 200,
					VY: (rng.Float64() - 0.5) * 200,
				}
				dt := rng.Float64() * 10
				out, _ := motion.Step(s, bounds, dt)

				Expect(out.X).To(BeNumerically(">=", bounds.Left))
				Expect(out.X).To(BeNumerically("<=", bounds.Right))
				Expect(out.Y).To(BeNumerically(">=", bounds.Top))
				Expect(out.Y).To(BeNumerically("<=", bounds.Bottom))
			}
		})

		It("preserves speed across reflections", func() {
			for i := 0; i < 2000; i++ {
				s := motion.State{
					X:  bounds.Left + rng.Float64()*bounds.Width(),
					Y:  bounds.Top + rng.Float64()*bounds.Height(),
					VX: (rng.Float64() - 0.5) * 200,
					VY: (rng.Float64() - 0.5) * 200,
				}
				out, _ := motion.Step(s, bounds, rng.Float64()*5)
				Expect(out.Speed()).To(BeNumerically("~", s.Speed(), 1e-9))
			}
		})

		It("flips exactly the hit axis, equal magnitude", func() {
			for i := 0; i < 2000; i++ {
				s := motion.State{
					X:  bounds.Left + rng.Float64()*bounds.Width(),
					Y:  bounds.Top + rng.Float64()*bounds.Height(),
					VX: (rng.Float64() - 0.5) * 200,
					VY: (rng.Float64() - 0.5) * 200,
				}
				out, ev := motion.Step(s, bounds, rng.Float64()*5)

				if ev&(motion.HitLeft|motion.HitRight) != 0 {
					Expect(out.VX).To(Equal(-s.VX))
				} else {
					Expect(out.VX).To(Equal(s.VX))
				}
				if ev&(motion.HitTop|motion.HitBottom) != 0 {
					Expect(out.VY).To(Equal(-s.VY))
				} else {
					Expect(out.VY).To(Equal(s.VY))
				}
			}
		})

		It("fires corner exactly when both axes hit", func() {
			for i := 0; i < 2000; i++ {
				s := motion.State{
					X:  bounds.Left + rng.Float64()*bounds.Width(),
					Y:  bounds.Top + rng.Float64()*bounds.Height(),
					VX: (rng.Float64() - 0.5) * 400,
					VY: (rng.Float64() - 0.5) * 400,
				}
				_, ev := motion.Step(s, bounds, rng.Float64()*5)

				both := ev&(motion.HitLeft|motion.HitRight) != 0 &&
					ev&(motion.HitTop|motion.HitBottom) != 0
				Expect(ev.Corner()).To(Equal(both))
			}
		})
	})
})

var _ = Describe("FromPolar", func() {
	It("round-trips through Heading and Speed", func() {
		for _, angle := range []float64{0, math.Pi / 6, math.Pi / 4, -math.Pi / 3, 2.9} {
			vx, vy := motion.FromPolar(angle, 12.5)
			s := motion.State{VX: vx, VY: vy}

			Expect(s.Speed()).To(BeNumerically("~", 12.5, 1e-9))
			Expect(s.Heading()).To(BeNumerically("~", angle, 1e-9))
		}
	})

	It("points along +x for a zero heading", func() {
		vx, vy := motion.FromPolar(0, 3)
		Expect(vx).To(Equal(3.0))
		Expect(vy).To(BeNumerically("~", 0, 1e-12))
	})
})
