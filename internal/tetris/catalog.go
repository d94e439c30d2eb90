package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Offset is a cell position relative to a piece pivot. Y increases upward.
type Offset struct {
	X, Y int
}

// Template is the canonical definition of a kind.
type Template struct {
	Kind    Kind
	Offsets [4]Offset
	Color   core.Color
}

var templates = [...]Template{
	Empty: {Kind: Empty, Color: core.ColorDefault},
	KindZ: {Kind: KindZ, Offsets: [4]Offset{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}}, Color: core.ColorRed},
	KindS: {Kind: KindS, Offsets: [4]Offset{{0, -1}, {0, 0}, {1, 0}, {1, 1}}, Color: core.ColorGreen},
	KindI: {Kind: KindI, Offsets: [4]Offset{{0, -1}, {0, 0}, {0, 1}, {0, 2}}, Color: core.ColorBlue},
	KindT: {Kind: KindT, Offsets: [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {0, 1}}, Color: core.ColorYellow},
	KindO: {Kind: KindO, Offsets: [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Color: core.ColorMagenta},
	KindL: {Kind: KindL, Offsets: [4]Offset{{-1, -1}, {0, -1}, {0, 0}, {0, 1}}, Color: core.ColorCyan},
	KindJ: {Kind: KindJ, Offsets: [4]Offset{{1, -1}, {0, -1}, {0, 0}, {0, 1}}, Color: core.ColorOrange},
}

// TemplateFor returns the canonical offsets and color for a kind.
// Unknown kinds yield the Empty template.
func TemplateFor(k Kind) Template {
	if !k.Valid() {
		return templates[Empty]
	}
	return templates[k]
}

// Rand is the random source used to draw pieces. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// RandomKind returns a uniformly chosen spawnable kind. Empty is never drawn.
func RandomKind(rng Rand) Kind {
	return Kinds[rng.Intn(KindCount)]
}
