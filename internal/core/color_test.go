package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightCyan, "14"},
		{ColorOrange, "208"},
		{ColorDarkGray, "238"},
		{Color(200), ""},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tc.c, got, tc.want)
		}
	}
}

func TestColorsCoversPalette(t *testing.T) {
	colors := Colors()
	if len(colors) != int(colorCount) {
		t.Fatalf("len(Colors()) = %d, want %d", len(colors), colorCount)
	}
	for i, c := range colors {
		if int(c) != i {
			t.Errorf("Colors()[%d] = %d", i, c)
		}
		if c != ColorDefault && c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
}
