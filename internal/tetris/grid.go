package tetris

import "fmt"

// Grid is the matrix of settled cells. Columns run left to right from 0,
// rows run bottom to top from 0. Every cell always holds a valid Kind.
type Grid struct {
	width  int
	height int
	cells  []Kind // row-major, row 0 first
}

// NewGrid allocates an empty grid. Dimensions must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Kind, width*height),
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (col, row) lies inside the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

func (g *Grid) index(col, row int) int {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("tetris: cell (%d, %d) outside %dx%d grid", col, row, g.width, g.height))
	}
	return row*g.width + col
}

// At returns the kind stored at (col, row). The caller guarantees bounds.
func (g *Grid) At(col, row int) Kind {
	return g.cells[g.index(col, row)]
}

// IsEmpty reports whether the cell at (col, row) is Empty.
// The caller guarantees bounds.
func (g *Grid) IsEmpty(col, row int) bool {
	return g.At(col, row) == Empty
}

// Set writes kind into (col, row) unconditionally.
func (g *Grid) Set(col, row int, k Kind) {
	if !k.Valid() {
		panic(fmt.Sprintf("tetris: invalid kind %d", k))
	}
	g.cells[g.index(col, row)] = k
}

// Reset fills every cell with Empty.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
}

// CanPlace reports whether the piece fits with its pivot at (x, y): all
// four cells inside the grid and on Empty cells. It never mutates the grid
// and is the only legality check used by the engine.
func (g *Grid) CanPlace(p Piece, x, y int) bool {
	for _, c := range p.Absolute(x, y) {
		if !g.InBounds(c.X, c.Y) {
			return false
		}
		if g.cells[c.Y*g.width+c.X] != Empty {
			return false
		}
	}
	return true
}

// Commit writes the piece kind into its four cells. Committing a placement
// that CanPlace rejects is a programming error and panics.
func (g *Grid) Commit(p Piece, x, y int) {
	if !g.CanPlace(p, x, y) {
		panic(fmt.Sprintf("tetris: commit of %s at (%d, %d) overlaps or leaves the grid", p.Kind(), x, y))
	}
	for _, c := range p.Absolute(x, y) {
		g.cells[c.Y*g.width+c.X] = p.Kind()
	}
}

// RowFull reports whether every column of row is occupied.
func (g *Grid) RowFull(row int) bool {
	start := row * g.width
	for _, k := range g.cells[start : start+g.width] {
		if k == Empty {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row, shifting the rows above it down by
// one and emptying the top row. Rows are scanned bottom to top and the same
// index is examined again after a shift. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	cleared := 0
	for row := 0; row < g.height; {
		if !g.RowFull(row) {
			row++
			continue
		}
		cleared++
		copy(g.cells[row*g.width:], g.cells[(row+1)*g.width:])
		top := (g.height - 1) * g.width
		for i := top; i < top+g.width; i++ {
			g.cells[i] = Empty
		}
	}
	return cleared
}

// Occupied returns the number of non-Empty cells.
func (g *Grid) Occupied() int {
	n := 0
	for _, k := range g.cells {
		if k != Empty {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows, index 0 being the bottom row.
func (g *Grid) Rows() [][]Kind {
	rows := make([][]Kind, g.height)
	for r := range rows {
		rows[r] = make([]Kind, g.width)
		copy(rows[r], g.cells[r*g.width:(r+1)*g.width])
	}
	return rows
}
