package tetris

// Piece is one tetromino: a kind and its four cell offsets. Pieces are
// values; every transform returns a new Piece and leaves the receiver alone.
type Piece struct {
	kind  Kind
	cells [4]Offset
}

// NewPiece returns a piece of the given kind in its canonical orientation.
func NewPiece(k Kind) Piece {
	t := TemplateFor(k)
	return Piece{kind: t.Kind, cells: t.Offsets}
}

// Kind returns the piece kind.
func (p Piece) Kind() Kind {
	return p.kind
}

// Cells returns a copy of the four offsets.
func (p Piece) Cells() [4]Offset {
	return p.cells
}

// MinY returns the smallest y offset across the four cells.
func (p Piece) MinY() int {
	m := p.cells[0].Y
	for _, c := range p.cells[1:] {
		if c.Y < m {
			m = c.Y
		}
	}
	return m
}

// RotateClockwise maps every offset (x, y) to (-y, x).
// The O piece comes back unchanged.
func (p Piece) RotateClockwise() Piece {
	if p.kind == KindO {
		return p
	}
	r := Piece{kind: p.kind}
	for i, c := range p.cells {
		r.cells[i] = Offset{X: -c.Y, Y: c.X}
	}
	return r
}

// RotateCounterClockwise maps every offset (x, y) to (y, -x).
// The O piece comes back unchanged.
func (p Piece) RotateCounterClockwise() Piece {
	if p.kind == KindO {
		return p
	}
	r := Piece{kind: p.kind}
	for i, c := range p.cells {
		r.cells[i] = Offset{X: c.Y, Y: -c.X}
	}
	return r
}

// Absolute returns the grid cells covered when the pivot sits at (x, y).
// Grid rows grow upward from row 0 while piece offsets are applied as y
// subtracted from the pivot row.
func (p Piece) Absolute(x, y int) [4]Offset {
	var out [4]Offset
	for i, c := range p.cells {
		out[i] = Offset{X: x + c.X, Y: y - c.Y}
	}
	return out
}
