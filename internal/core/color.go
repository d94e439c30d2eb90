package core

// Color is the foreground color of a screen cell.
type Color uint8

// Palette. Piece kinds use the bright variants, chrome uses the grays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray

	colorCount
)

// ansiCodes holds the ANSI 256-color code of each palette entry.
var ansiCodes = [colorCount]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorDarkGray:      "238",
}

// ANSI returns the ANSI 256-color code for c, or "" for the terminal's
// default foreground. Unknown values map to the default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansiCodes[c]
}

// Colors returns every palette entry in order.
func Colors() []Color {
	out := make([]Color, 0, colorCount)
	for c := Color(0); c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
