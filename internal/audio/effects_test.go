package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// drain streams s to exhaustion and returns the number of samples.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("stream never ended")
	return 0
}

func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 64)
	n, ok := osc.Stream(samples)
	if !ok || n != 64 {
		t.Fatalf("Stream() = %d, %v", n, ok)
	}
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("square sample %d = %f", i, v)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Err() = %v", osc.Err())
	}
}

func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 20*time.Millisecond, wave, rate)
		samples := make([][2]float64, 256)
		n, _ := osc.Stream(samples)
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
				t.Fatalf("wave %d sample %d = %v", wave, i, samples[i])
			}
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	if got, want := drain(t, osc), rate.N(100*time.Millisecond); got != want {
		t.Errorf("streamed %d samples, expected %d", got, want)
	}
}

func TestEffectsHaveExpectedLength(t *testing.T) {
	effects := []Effect{EffectLock, EffectClear, EffectTetris, EffectLevelUp, EffectGameOver}

	for _, e := range effects {
		t.Run(e.String(), func(t *testing.T) {
			s := NewEffect(e, 0.5)
			if s == nil {
				t.Fatal("NewEffect returned nil")
			}
			got := drain(t, s)
			want := sampleRate.N(Duration(e))
			// Each note rounds to whole samples.
			if diff := got - want; diff < -4 || diff > 4 {
				t.Errorf("streamed %d samples, expected about %d", got, want)
			}
		})
	}
}

func TestTetrisLongerThanClear(t *testing.T) {
	if Duration(EffectTetris) <= Duration(EffectClear) {
		t.Error("a four-row clear should sound longer than a single clear")
	}
}

func TestUnknownEffect(t *testing.T) {
	if NewEffect(Effect(99), 1) != nil {
		t.Error("unknown effect should have no streamer")
	}
	if Effect(99).String() != "unknown" {
		t.Error("unknown effect name")
	}
}

func TestDecayFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newDecay(NewOscillator(250, 100*time.Millisecond, WaveSquare, rate), 100*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := s.Stream(samples)
	if n != 100 {
		t.Fatalf("streamed %d samples", n)
	}
	if abs(samples[0][0]) != 1 {
		t.Errorf("first sample = %f, expected full volume", samples[0][0])
	}
	if abs(samples[99][0]) > 0.02 {
		t.Errorf("last sample = %f, expected near silence", samples[99][0])
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
