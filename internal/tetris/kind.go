// Package tetris implements the falling-block game engine: pieces, the
// settled-cell grid, and the spawn/fall/lock/clear cycle with scoring and
// level progression. It performs no I/O and owns no timers; the platform
// drives it through Tick and the control methods.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Kind identifies the content of a grid cell or the shape of a piece.
type Kind uint8

const (
	Empty Kind = iota
	KindZ
	KindS
	KindI
	KindT
	KindO
	KindL
	KindJ
)

// KindCount is the number of spawnable kinds.
const KindCount = 7

// Kinds lists every spawnable kind in catalog order.
var Kinds = [KindCount]Kind{KindZ, KindS, KindI, KindT, KindO, KindL, KindJ}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "Empty"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindI:
		return "I"
	case KindT:
		return "T"
	case KindO:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	default:
		return "Unknown"
	}
}

// Valid reports whether k is Empty or one of the seven tetromino kinds.
func (k Kind) Valid() bool {
	return k <= KindJ
}

// Color returns the display color associated with the kind.
func (k Kind) Color() core.Color {
	return TemplateFor(k).Color
}
