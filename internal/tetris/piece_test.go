package tetris

import (
	"math/rand"
	"testing"
)

func TestRotateRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			p := NewPiece(k)

			if got := p.RotateClockwise().RotateCounterClockwise(); got != p {
				t.Errorf("cw then ccw = %v, expected %v", got.Cells(), p.Cells())
			}
			if got := p.RotateCounterClockwise().RotateClockwise(); got != p {
				t.Errorf("ccw then cw = %v, expected %v", got.Cells(), p.Cells())
			}

			full := p.RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise()
			if full != p {
				t.Errorf("four clockwise turns = %v, expected %v", full.Cells(), p.Cells())
			}
		})
	}
}

func TestORotationIsNoop(t *testing.T) {
	o := NewPiece(KindO)

	tests := []struct {
		name string
		got  Piece
	}{
		{"clockwise", o.RotateClockwise()},
		{"counter-clockwise", o.RotateCounterClockwise()},
		{"clockwise twice", o.RotateClockwise().RotateClockwise()},
		{"counter-clockwise twice", o.RotateCounterClockwise().RotateCounterClockwise()},
		{"clockwise then counter-clockwise", o.RotateClockwise().RotateCounterClockwise()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got.Cells() != o.Cells() {
				t.Errorf("offsets = %v, expected %v", tc.got.Cells(), o.Cells())
			}
			if tc.got.Kind() != KindO {
				t.Errorf("kind = %v, expected O", tc.got.Kind())
			}
		})
	}
}

func TestRotateClockwiseTransform(t *testing.T) {
	// T: (-1,0) (0,0) (1,0) (0,1) -> (x,y) becomes (-y,x)
	got := NewPiece(KindT).RotateClockwise().Cells()
	want := [4]Offset{{0, -1}, {0, 0}, {0, 1}, {-1, 0}}
	if got != want {
		t.Errorf("RotateClockwise(T) = %v, expected %v", got, want)
	}

	// (x,y) becomes (y,-x)
	got = NewPiece(KindT).RotateCounterClockwise().Cells()
	want = [4]Offset{{0, 1}, {0, 0}, {0, -1}, {1, 0}}
	if got != want {
		t.Errorf("RotateCounterClockwise(T) = %v, expected %v", got, want)
	}
}

func TestRotateDoesNotMutateSource(t *testing.T) {
	p := NewPiece(KindL)
	before := p.Cells()

	_ = p.RotateClockwise()
	_ = p.RotateCounterClockwise()

	if p.Cells() != before {
		t.Errorf("source piece changed from %v to %v", before, p.Cells())
	}
}

func TestTemplatesAreCopied(t *testing.T) {
	cells := NewPiece(KindT).Cells()
	cells[0].X = 99

	if NewPiece(KindT).Cells()[0].X != -1 {
		t.Error("modifying returned offsets must not change the catalog")
	}
	if TemplateFor(KindT).Offsets[0].X != -1 {
		t.Error("catalog template changed")
	}
}

func TestMinY(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindZ, -1},
		{KindS, -1},
		{KindI, -1},
		{KindT, 0},
		{KindO, 0},
		{KindL, -1},
		{KindJ, -1},
	}

	for _, tc := range tests {
		if got := NewPiece(tc.kind).MinY(); got != tc.expected {
			t.Errorf("MinY(%v) = %d, expected %d", tc.kind, got, tc.expected)
		}
	}

	if got := NewPiece(KindI).RotateClockwise().MinY(); got != 0 {
		t.Errorf("MinY(rotated I) = %d, expected 0", got)
	}
}

func TestAbsoluteInvertsY(t *testing.T) {
	got := NewPiece(KindI).Absolute(5, 10)
	want := [4]Offset{{5, 11}, {5, 10}, {5, 9}, {5, 8}}
	if got != want {
		t.Errorf("Absolute(I, 5, 10) = %v, expected %v", got, want)
	}
}

func TestRandomKindNeverEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[Kind]int)

	for i := 0; i < 7000; i++ {
		k := RandomKind(rng)
		if k == Empty || !k.Valid() {
			t.Fatalf("RandomKind returned %v", k)
		}
		seen[k]++
	}

	for _, k := range Kinds {
		if seen[k] < 700 {
			t.Errorf("kind %v drawn %d times out of 7000, distribution looks skewed", k, seen[k])
		}
	}
}

func TestTemplateForEmpty(t *testing.T) {
	if tmpl := TemplateFor(Empty); tmpl.Kind != Empty {
		t.Errorf("TemplateFor(Empty).Kind = %v", tmpl.Kind)
	}
	if tmpl := TemplateFor(Kind(42)); tmpl.Kind != Empty {
		t.Errorf("TemplateFor(42).Kind = %v, expected Empty", tmpl.Kind)
	}
}
