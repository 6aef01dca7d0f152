// Package audio synthesizes the game's sound cues with beep.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate is the output rate of every generator.
const SampleRate = beep.SampleRate(48000)

// floor is the level an exponential decay ends at.
const floor = 0.01

// tone is a sine note whose gain falls exponentially, reaching floor
// after n samples. It streams forever; newTone cuts it with beep.Take.
type tone struct {
	rate beep.SampleRate
	freq float64
	gain float64
	n    int
	pos  int
}

func newTone(rate beep.SampleRate, freq, gain float64, d time.Duration) beep.Streamer {
	n := rate.N(d)
	return beep.Take(n, &tone{rate: rate, freq: freq, gain: gain, n: n})
}

func (g *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		env := g.gain * math.Pow(floor/g.gain, float64(g.pos)/float64(g.n))
		v := env * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

const rustleDuration = 150 * time.Millisecond

// rustle is decaying noise, like paper unfolding.
type rustle struct {
	rng  *rand.Rand
	gain float64
	n    int
	pos  int
}

func newRustle(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	n := rate.N(rustleDuration)
	return beep.Take(n, &rustle{rng: rng, gain: 0.08, n: n})
}

func (g *rustle) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		decay := math.Exp(-float64(g.pos) / (float64(g.n) * 0.3))
		v := g.gain * (g.rng.Float64()*2 - 1) * decay
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *rustle) Err() error { return nil }

// applause is crowd noise with a soft clap rhythm, faded in and out over
// applauseDuration. Channels get independent noise.
type applause struct {
	rate beep.SampleRate
	rng  *rand.Rand
	gain float64
	pos  int
}

const applauseDuration = 3500 * time.Millisecond

func newApplause(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return beep.Take(rate.N(applauseDuration), &applause{rate: rate, rng: rng, gain: 0.25})
}

func (g *applause) Stream(samples [][2]float64) (int, bool) {
	total := applauseDuration.Seconds()
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		env := math.Max(0, math.Min(1, t/0.3)*math.Min(1, (total-t)/0.5))
		clap := math.Sin(t*8) * math.Sin(t*12) * math.Sin(t*15) * 0.4
		for ch := range 2 {
			noise := (g.rng.Float64()*2 - 1) * 0.3
			samples[i][ch] = g.gain * (noise + clap) * env
		}
		g.pos++
	}
	return len(samples), true
}

func (g *applause) Err() error { return nil }

// melodyNotes is the background loop, C major around middle C.
var melodyNotes = []float64{261.63, 293.66, 329.63, 261.63, 349.23, 329.63}

const (
	melodyStep    = 280 * time.Millisecond
	melodyNoteLen = 250 * time.Millisecond
	melodyRelease = 20 * time.Millisecond
	melodyGain    = 0.12
)

// note is one melody note: a sine that sounds for length samples with a
// short release, then stays silent.
type note struct {
	rate    beep.SampleRate
	freq    float64
	length  int
	release int
	pos     int
}

func (g *note) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := 0.0
		if g.pos < g.length {
			t := float64(g.pos) / float64(g.rate)
			env := math.Min(1, float64(g.length-g.pos)/float64(g.release))
			v = melodyGain * env * math.Sin(2*math.Pi*g.freq*t)
		}
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *note) Err() error { return nil }

// melody cycles through melodyNotes, one note per step.
type melody struct {
	rate    beep.SampleRate
	step    int
	length  int
	release int
	index   int
}

func newMelody(rate beep.SampleRate) *melody {
	return &melody{
		rate:    rate,
		step:    rate.N(melodyStep),
		length:  rate.N(melodyNoteLen),
		release: rate.N(melodyRelease),
	}
}

// nextFreq returns the next note of the loop.
func (m *melody) nextFreq() float64 {
	f := melodyNotes[m.index%len(melodyNotes)]
	m.index++
	return f
}

func (m *melody) nextNote() beep.Streamer {
	return beep.Take(m.step, &note{rate: m.rate, freq: m.nextFreq(), length: m.length, release: m.release})
}

// Streamer plays the melody forever.
func (m *melody) Streamer() beep.Streamer {
	return beep.Iterate(m.nextNote)
}
