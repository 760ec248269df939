package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
)

const sampleRate = beep.SampleRate(44100)

// Waveform shapes
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveNoise
)

// floatBuffer is mono samples at unity gain.
type floatBuffer []float64

// oscillator renders d of a waveform sweeping linearly from f0 to f1 Hz.
func oscillator(wave int, f0, f1 float64, d time.Duration, rng *rand.Rand) floatBuffer {
	n := sampleRate.N(d)
	buf := make(floatBuffer, n)
	phase := 0.0
	for i := range buf {
		switch wave {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case waveSaw:
			buf[i] = 2 * (phase - 0.5)
		case waveNoise:
			buf[i] = rng.Float64()*2 - 1
		}
		freq := f0 + (f1-f0)*float64(i)/float64(n)
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)
	}
	return buf
}

// envelope applies a linear attack and a quadratic release in place.
func envelope(buf floatBuffer, attack, release time.Duration) floatBuffer {
	total := len(buf)
	att := sampleRate.N(attack)
	rel := sampleRate.N(release)
	relStart := max(total-rel, att)
	for i := range buf {
		vol := 1.0
		switch {
		case i < att && att > 0:
			vol = float64(i) / float64(att)
		case i >= relStart && rel > 0:
			vol = float64(total-i) / float64(rel)
			vol *= vol
		}
		buf[i] *= vol
	}
	return buf
}

// mix adds b scaled into a, growing a when b is longer.
func mix(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		grown := make(floatBuffer, len(b))
		copy(grown, a)
		a = grown
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

func concat(parts ...floatBuffer) floatBuffer {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make(floatBuffer, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func normalize(buf floatBuffer, peak float64) floatBuffer {
	m := 0.0
	for _, v := range buf {
		m = math.Max(m, math.Abs(v))
	}
	if m == 0 {
		return buf
	}
	for i := range buf {
		buf[i] *= peak / m
	}
	return buf
}

// synthesize renders a cue. Noise uses a fixed stream so cues sound the
// same on every run.
func synthesize(c Cue) floatBuffer {
	rng := rand.New(rand.NewPCG(uint64(c), 0x5b))
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	switch c {
	case CueShot:
		buf := oscillator(waveSquare, 1400, 700, ms(45), rng)
		return normalize(envelope(buf, ms(2), ms(30)), 0.25)
	case CueHit:
		buf := oscillator(waveSaw, 180, 90, ms(160), rng)
		buf = mix(buf, oscillator(waveNoise, 0, 0, ms(120), rng), 0.4)
		return normalize(envelope(buf, ms(3), ms(120)), 0.6)
	case CueExplosion:
		buf := oscillator(waveNoise, 0, 0, ms(220), rng)
		buf = mix(buf, oscillator(waveSine, 120, 40, ms(220), rng), 0.6)
		return normalize(envelope(buf, ms(2), ms(200)), 0.5)
	case CueDetonation:
		buf := oscillator(waveNoise, 0, 0, ms(420), rng)
		buf = mix(buf, oscillator(waveSine, 90, 30, ms(420), rng), 0.8)
		return normalize(envelope(buf, ms(4), ms(380)), 0.7)
	case CueLevelUp:
		return normalize(concat(
			envelope(oscillator(waveSquare, 523.25, 523.25, ms(90), rng), ms(5), ms(30)),
			envelope(oscillator(waveSquare, 659.25, 659.25, ms(90), rng), ms(5), ms(30)),
			envelope(oscillator(waveSquare, 783.99, 783.99, ms(160), rng), ms(5), ms(90)),
		), 0.35)
	case CueBoss:
		buf := oscillator(waveSaw, 55, 55, ms(900), rng)
		buf = mix(buf, oscillator(waveSaw, 82.4, 82.4, ms(900), rng), 0.7)
		return normalize(envelope(buf, ms(200), ms(400)), 0.6)
	case CueGameOver:
		return normalize(concat(
			envelope(oscillator(waveSaw, 392, 392, ms(200), rng), ms(5), ms(60)),
			envelope(oscillator(waveSaw, 311.13, 311.13, ms(200), rng), ms(5), ms(60)),
			envelope(oscillator(waveSaw, 261.63, 196, ms(500), rng), ms(5), ms(350)),
		), 0.5)
	case CueVictory:
		return normalize(concat(
			envelope(oscillator(waveSquare, 523.25, 523.25, ms(120), rng), ms(5), ms(40)),
			envelope(oscillator(waveSquare, 783.99, 783.99, ms(120), rng), ms(5), ms(40)),
			envelope(oscillator(waveSquare, 1046.5, 1046.5, ms(400), rng), ms(5), ms(250)),
		), 0.4)
	default:
		return nil
	}
}

// bufferStreamer plays a floatBuffer once on both channels.
type bufferStreamer struct {
	buf floatBuffer
	pos int
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for i := range samples {
		if s.pos >= len(s.buf) {
			return i, true
		}
		v := s.buf[s.pos]
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *bufferStreamer) Err() error { return nil }

var _ beep.Streamer = (*bufferStreamer)(nil)
