// Package audio synthesizes short sound effects for game events and plays
// them through the system speaker.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// Effect names a sound played in response to a game event.
type Effect int

const (
	EffectLock Effect = iota
	EffectClear
	EffectTetris
	EffectLevelUp
	EffectGameOver
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectLock:
		return "lock"
	case EffectClear:
		return "clear"
	case EffectTetris:
		return "tetris"
	case EffectLevelUp:
		return "level_up"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing a fixed-frequency tone for the
// given duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a stream out linearly over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if d.position < d.total {
			vol = float64(d.total-d.position) / float64(d.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type note struct {
	freq float64
	dur  time.Duration
	wave WaveType
}

func sequence(rate beep.SampleRate, notes ...note) beep.Streamer {
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = newDecay(NewOscillator(n.freq, n.dur, n.wave, rate), n.dur, rate)
	}
	return beep.Seq(parts...)
}

// notes returns the melody for an effect.
func notes(e Effect) []note {
	switch e {
	case EffectLock:
		return []note{{110, 40 * time.Millisecond, WaveSquare}}
	case EffectClear:
		return []note{
			{523.25, 60 * time.Millisecond, WaveTriangle},
			{659.25, 90 * time.Millisecond, WaveTriangle},
		}
	case EffectTetris:
		return []note{
			{523.25, 60 * time.Millisecond, WaveSquare},
			{659.25, 60 * time.Millisecond, WaveSquare},
			{783.99, 60 * time.Millisecond, WaveSquare},
			{1046.5, 160 * time.Millisecond, WaveSquare},
		}
	case EffectLevelUp:
		return []note{
			{440, 80 * time.Millisecond, WaveSine},
			{880, 140 * time.Millisecond, WaveSine},
		}
	case EffectGameOver:
		return []note{
			{392, 150 * time.Millisecond, WaveTriangle},
			{311.13, 150 * time.Millisecond, WaveTriangle},
			{261.63, 350 * time.Millisecond, WaveTriangle},
		}
	default:
		return nil
	}
}

// Duration returns the total play time of an effect.
func Duration(e Effect) time.Duration {
	var d time.Duration
	for _, n := range notes(e) {
		d += n.dur
	}
	return d
}

// NewEffect builds the streamer for an effect at the given volume (0..1).
// Unknown effects return nil.
func NewEffect(e Effect, volume float64) beep.Streamer {
	ns := notes(e)
	if len(ns) == 0 {
		return nil
	}
	return newVolume(sequence(sampleRate, ns...), volume)
}
