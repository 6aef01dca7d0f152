package runner

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/run-for-love/internal/core"
)

// Pickup burst tuning, per reference frame.
const (
	burstSpreadX  = 7.0
	burstLiftMin  = 3.0
	burstLiftRand = 5.0
	burstGravity  = 0.18
	burstDecay    = 0.012
)

// Particle is pickup feedback. Life starts at 1 and decays to 0.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
}

// spawnBurst appends n particles exploding from (x, y).
func spawnBurst(dst []Particle, rng *rand.Rand, n int, x, y float64) []Particle {
	for i := 0; i < n; i++ {
		dst = append(dst, Particle{
			X:    x,
			Y:    y,
			VX:   (rng.Float64() - 0.5) * burstSpreadX,
			VY:   -burstLiftMin - rng.Float64()*burstLiftRand,
			Life: 1,
		})
	}
	return dst
}

// updateParticles integrates particles scaled to the reference frame and
// drops the expired ones.
func updateParticles(ps []Particle, scale float64) []Particle {
	live := ps[:0]
	for _, p := range ps {
		p.X += p.VX * scale
		p.Y += p.VY * scale
		p.VY += burstGravity * scale
		p.Life -= burstDecay * scale
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	return live
}

// Spark is one firework fragment.
type Spark struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  core.Color
	Age    time.Duration
	MaxAge time.Duration
}

var sparkColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorOrange,
	core.ColorMagenta,
}

// spawnFirework appends one radial burst of n sparks at (x, y).
func spawnFirework(dst []Spark, rng *rand.Rand, n int, x, y float64) []Spark {
	color := sparkColors[rng.Intn(len(sparkColors))]
	for i := 0; i < n; i++ {
		angle := float64(i)/float64(n)*2*math.Pi + rng.Float64()
		speed := 2 + rng.Float64()*3
		dst = append(dst, Spark{
			X:      x,
			Y:      y,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle)*speed - 1,
			Size:   2 + rng.Float64()*2,
			Color:  color,
			MaxAge: time.Duration(600+rng.Float64()*400) * time.Millisecond,
		})
	}
	return dst
}

func updateSparks(ss []Spark, dt time.Duration, scale float64) []Spark {
	live := ss[:0]
	for _, s := range ss {
		s.X += s.VX * scale
		s.Y += s.VY * scale
		s.VY += 0.08 * scale
		s.Age += dt
		if s.Age < s.MaxAge {
			live = append(live, s)
		}
	}
	return live
}

// Heart is a floating heart. The win animation moves hearts per reference
// frame until they leave the top; the intro moves them per millisecond
// until they age out.
type Heart struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Age    time.Duration
	MaxAge time.Duration
}

// Alpha returns the fade-out factor of an aging heart, 1 when it has no
// maximum age.
func (h Heart) Alpha() float64 {
	if h.MaxAge <= 0 {
		return 1
	}
	return 1 - float64(h.Age)/float64(h.MaxAge)
}
